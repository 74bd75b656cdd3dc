package db

import (
	"context"

	"finance-api/src/errs"
	"finance-api/src/models"
)

const listTransactionsSQL = `
	SELECT t.id, t.type, t.amount, t.category_id, c.name, c.icon,
		COALESCE(t.description, ''), t.transaction_date, t.account_id, a.name, t.created_at
	FROM transactions t
	LEFT JOIN categories c ON t.category_id = c.id
	LEFT JOIN accounts a ON t.account_id = a.id
	ORDER BY t.transaction_date DESC, t.created_at DESC
	LIMIT $1
`

func scanTransaction(row scanner) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.Type, &t.Amount, &t.CategoryID, &t.CategoryName, &t.CategoryIcon,
		&t.Description, &t.TransactionDate, &t.AccountID, &t.AccountName, &t.CreatedAt)
	return t, err
}

// ListTransactions returns the newest limit transactions by date, then by
// insertion time.
func (s *Store) ListTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.q.Query(ctx, listTransactionsSQL, limit)
	if err != nil {
		return nil, wrap("get_transactions", err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, limit)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, wrap("get_transactions", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get_transactions", err)
	}
	return transactions, nil
}

// AddTransaction records a transaction and moves the account balance by its
// amount in the same database transaction.
func (s *Store) AddTransaction(ctx context.Context, req models.AddTransactionRequest) (id int64, err error) {
	const op = "add_transaction"
	if err := req.Validate(); err != nil {
		return 0, err
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	date := models.NewDate(s.now())
	if req.TransactionDate != nil && !req.TransactionDate.IsZero() {
		date = *req.TransactionDate
	}
	delta := *req.Amount
	if *req.Type == models.TypeExpense {
		delta = delta.Neg()
	}

	tx, err := s.q.Begin(ctx)
	if err != nil {
		return 0, wrap(op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	insert := `
		INSERT INTO transactions (type, amount, category_id, description, transaction_date, account_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = tx.QueryRow(ctx, insert,
		*req.Type, *req.Amount, *req.CategoryID, description, date.Time, *req.AccountID,
	).Scan(&id)
	if err != nil {
		return 0, wrap(op, err)
	}

	tag, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance + $1 WHERE id = $2`, delta, *req.AccountID)
	if err != nil {
		return 0, wrap(op, err)
	}
	if tag.RowsAffected() == 0 {
		err = notFound(op, "account", *req.AccountID)
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, errs.E(errs.Persistence, op, err)
	}
	return id, nil
}
