package db

import (
	"context"

	"github.com/shopspring/decimal"

	"finance-api/src/models"
)

const listAccountsSQL = `
	SELECT id, name, balance, type, created_at
	FROM accounts
	ORDER BY id
`

func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.q.Query(ctx, listAccountsSQL)
	if err != nil {
		return nil, wrap("get_accounts", err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Balance, &a.Type, &a.CreatedAt); err != nil {
			return nil, wrap("get_accounts", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get_accounts", err)
	}
	return accounts, nil
}

func (s *Store) AddAccount(ctx context.Context, req models.AddAccountRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}

	query := `
		INSERT INTO accounts (name, balance, type)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := s.q.QueryRow(ctx, query, *req.Name, balance, *req.Type).Scan(&id); err != nil {
		return 0, wrap("add_account", err)
	}
	return id, nil
}
