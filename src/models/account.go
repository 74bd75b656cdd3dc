package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}
