package models

import "github.com/shopspring/decimal"

// Request bodies. Pointer fields are optional or must be checked for
// presence before use.

type AddTransactionRequest struct {
	Type            *string          `json:"type"`
	Amount          *decimal.Decimal `json:"amount"`
	CategoryID      *int64           `json:"category_id"`
	AccountID       *int64           `json:"account_id"`
	Description     *string          `json:"description"`
	TransactionDate *Date            `json:"transaction_date"`
}

type AddAccountRequest struct {
	Name    *string          `json:"name"`
	Balance *decimal.Decimal `json:"balance"`
	Type    *string          `json:"type"`
}

type AddGoalRequest struct {
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	Icon          *string          `json:"icon"`
}

type AddBudgetRequest struct {
	CategoryID  *int64           `json:"category_id"`
	LimitAmount *decimal.Decimal `json:"limit_amount"`
	Month       *int             `json:"month"`
	Year        *int             `json:"year"`
}

type UpdateGoalRequest struct {
	ID            *int64           `json:"id"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
}

type UpdateBudgetRequest struct {
	ID          *int64           `json:"id"`
	LimitAmount *decimal.Decimal `json:"limit_amount"`
}
