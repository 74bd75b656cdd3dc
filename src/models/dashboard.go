package models

type Dashboard struct {
	Accounts     []Account       `json:"accounts"`
	Transactions []Transaction   `json:"transactions"`
	Goals        []Goal          `json:"goals"`
	Budgets      []BudgetSummary `json:"budgets"`
}
