package util

import "time"

// MonthRange returns the half-open interval [start, end) covering the
// calendar month that contains now, in now's location.
func MonthRange(now time.Time) (start, end time.Time) {
	y, m, _ := now.Date()
	start = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}

func MonthYear(now time.Time) (month, year int) {
	y, m, _ := now.Date()
	return int(m), y
}
