package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"finance-api/src/models"
)

const listOpenGoalsSQL = `
	SELECT id, name, target_amount, current_amount, icon, created_at, completed_at
	FROM goals
	WHERE completed_at IS NULL
	ORDER BY id
`

func (s *Store) ListGoals(ctx context.Context) ([]models.Goal, error) {
	rows, err := s.q.Query(ctx, listOpenGoalsSQL)
	if err != nil {
		return nil, wrap("get_goals", err)
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	for rows.Next() {
		var g models.Goal
		err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Icon, &g.CreatedAt, &g.CompletedAt)
		if err != nil {
			return nil, wrap("get_goals", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get_goals", err)
	}
	return goals, nil
}

func (s *Store) AddGoal(ctx context.Context, req models.AddGoalRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	current := decimal.Zero
	if req.CurrentAmount != nil {
		current = *req.CurrentAmount
	}

	query := `
		INSERT INTO goals (name, target_amount, current_amount, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	if err := s.q.QueryRow(ctx, query, *req.Name, *req.TargetAmount, current, *req.Icon).Scan(&id); err != nil {
		return 0, wrap("add_goal", err)
	}
	return id, nil
}

// UpdateGoal stores the new progress and reports whether the goal is now
// complete. Completion is decided against the stored target in the same
// statement.
func (s *Store) UpdateGoal(ctx context.Context, req models.UpdateGoalRequest) (bool, error) {
	const op = "update_goal"
	if err := req.Validate(); err != nil {
		return false, err
	}

	query := `
		UPDATE goals
		SET current_amount = $1,
			completed_at = CASE WHEN $1 >= target_amount THEN $2::timestamptz ELSE NULL END
		WHERE id = $3
		RETURNING completed_at IS NOT NULL
	`
	var completed bool
	err := s.q.QueryRow(ctx, query, *req.CurrentAmount, s.now(), *req.ID).Scan(&completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, notFound(op, "goal", *req.ID)
	}
	if err != nil {
		return false, wrap(op, err)
	}
	return completed, nil
}
