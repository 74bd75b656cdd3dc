package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a stored transaction with the category and account display
// fields joined in. The joined fields are nil when the referenced row is gone.
type Transaction struct {
	ID              int64           `json:"id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      *int64          `json:"category_id"`
	CategoryName    *string         `json:"category_name"`
	CategoryIcon    *string         `json:"category_icon"`
	Description     string          `json:"description"`
	TransactionDate Date            `json:"transaction_date"`
	AccountID       *int64          `json:"account_id"`
	AccountName     *string         `json:"account_name"`
	CreatedAt       time.Time       `json:"created_at"`
}
