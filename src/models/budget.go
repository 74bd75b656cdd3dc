package models

import "github.com/shopspring/decimal"

// BudgetSummary is a category's limit for the current month next to what has
// been spent in it. ID is omitted on the dashboard, where rows come from
// categories rather than budgets.
type BudgetSummary struct {
	ID          *int64          `json:"id,omitempty"`
	Category    string          `json:"category"`
	Icon        string          `json:"icon"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	Spent       decimal.Decimal `json:"spent"`
}
