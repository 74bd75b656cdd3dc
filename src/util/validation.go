package util

// Field pairs a request body key with whether the client sent it.
type Field struct {
	Name    string
	Present bool
}

func Required(name string, present bool) Field {
	return Field{Name: name, Present: present}
}

// MissingFields returns the names of the fields that were not sent, in the
// order given.
func MissingFields(fields ...Field) []string {
	var missing []string
	for _, f := range fields {
		if !f.Present {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

func ValidateTransactionType(typ string) bool {
	switch typ {
	case "income", "expense":
		return true
	default:
		return false
	}
}
