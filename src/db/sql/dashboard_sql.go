package db

import (
	"context"

	"finance-api/src/models"
)

// GetDashboard gathers accounts, the recent transactions, open goals and the
// current month's budgets. The four reads are independent.
func (s *Store) GetDashboard(ctx context.Context, recent int) (*models.Dashboard, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.ListTransactions(ctx, recent)
	if err != nil {
		return nil, err
	}
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := s.listCategoryBudgets(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Accounts:     accounts,
		Transactions: transactions,
		Goals:        goals,
		Budgets:      budgets,
	}, nil
}
