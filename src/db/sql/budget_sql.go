package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"finance-api/src/models"
	"finance-api/src/util"
)

// Spent counts expense transactions dated inside [$1, $2), the calendar month
// of the store's clock.
const listBudgetsSQL = `
	SELECT b.id, c.name, COALESCE(c.icon, ''), b.limit_amount, COALESCE(SUM(t.amount), 0)
	FROM budgets b
	JOIN categories c ON b.category_id = c.id
	LEFT JOIN transactions t ON c.id = t.category_id
		AND t.type = 'expense'
		AND t.transaction_date >= $1
		AND t.transaction_date < $2
	WHERE b.month = $3 AND b.year = $4
	GROUP BY b.id, c.name, c.icon, b.limit_amount
	ORDER BY c.name
`

// Every expense category is listed with its limit, then categories without a
// positive limit are dropped.
const categoryBudgetsSQL = `
	SELECT c.name, COALESCE(c.icon, ''), COALESCE(b.limit_amount, 0), COALESCE(SUM(t.amount), 0)
	FROM categories c
	LEFT JOIN budgets b ON c.id = b.category_id
		AND b.month = $1 AND b.year = $2
	LEFT JOIN transactions t ON c.id = t.category_id
		AND t.type = 'expense'
		AND t.transaction_date >= $3
		AND t.transaction_date < $4
	WHERE c.type = 'expense'
	GROUP BY c.id, c.name, c.icon, b.limit_amount
	HAVING COALESCE(b.limit_amount, 0) > 0
	ORDER BY c.name
`

func (s *Store) ListBudgets(ctx context.Context) ([]models.BudgetSummary, error) {
	now := s.now()
	start, end := util.MonthRange(now)
	month, year := util.MonthYear(now)

	rows, err := s.q.Query(ctx, listBudgetsSQL, start, end, month, year)
	if err != nil {
		return nil, wrap("get_budgets", err)
	}
	defer rows.Close()

	budgets := make([]models.BudgetSummary, 0)
	for rows.Next() {
		var (
			id int64
			b  models.BudgetSummary
		)
		if err := rows.Scan(&id, &b.Category, &b.Icon, &b.LimitAmount, &b.Spent); err != nil {
			return nil, wrap("get_budgets", err)
		}
		b.ID = &id
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get_budgets", err)
	}
	return budgets, nil
}

func (s *Store) listCategoryBudgets(ctx context.Context) ([]models.BudgetSummary, error) {
	now := s.now()
	start, end := util.MonthRange(now)
	month, year := util.MonthYear(now)

	rows, err := s.q.Query(ctx, categoryBudgetsSQL, month, year, start, end)
	if err != nil {
		return nil, wrap("get_dashboard_data", err)
	}
	defer rows.Close()

	budgets := make([]models.BudgetSummary, 0)
	for rows.Next() {
		var b models.BudgetSummary
		if err := rows.Scan(&b.Category, &b.Icon, &b.LimitAmount, &b.Spent); err != nil {
			return nil, wrap("get_dashboard_data", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get_dashboard_data", err)
	}
	return budgets, nil
}

// AddBudget creates the category's limit for a month, or replaces the limit
// when one already exists for that month.
func (s *Store) AddBudget(ctx context.Context, req models.AddBudgetRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	month, year := util.MonthYear(s.now())
	if req.Month != nil {
		month = *req.Month
	}
	if req.Year != nil {
		year = *req.Year
	}

	query := `
		INSERT INTO budgets (category_id, limit_amount, month, year)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category_id, month, year)
		DO UPDATE SET limit_amount = EXCLUDED.limit_amount
		RETURNING id
	`
	var id int64
	if err := s.q.QueryRow(ctx, query, *req.CategoryID, *req.LimitAmount, month, year).Scan(&id); err != nil {
		return 0, wrap("add_budget", err)
	}
	return id, nil
}

func (s *Store) UpdateBudget(ctx context.Context, req models.UpdateBudgetRequest) error {
	const op = "update_budget"
	if err := req.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE budgets
		SET limit_amount = $1
		WHERE id = $2
		RETURNING id
	`
	var id int64
	err := s.q.QueryRow(ctx, query, *req.LimitAmount, *req.ID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound(op, "budget", *req.ID)
	}
	if err != nil {
		return wrap(op, err)
	}
	return nil
}
