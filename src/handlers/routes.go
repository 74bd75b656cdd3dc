package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	store "finance-api/src/db/sql"
	"finance-api/src/errs"
	"finance-api/src/models"
)

type route struct {
	method string
	action string
}

type handlerFunc func(ctx context.Context, d *Dispatcher, s *store.Store, body []byte) (any, error)

var routes = map[route]handlerFunc{
	{http.MethodGet, "dashboard"}:    getDashboard,
	{http.MethodGet, "accounts"}:     getAccounts,
	{http.MethodGet, "transactions"}: getTransactions,
	{http.MethodGet, "budgets"}:      getBudgets,
	{http.MethodGet, "goals"}:        getGoals,
	{http.MethodGet, "categories"}:   getCategories,

	{http.MethodPost, "transaction"}: addTransaction,
	{http.MethodPost, "account"}:     addAccount,
	{http.MethodPost, "goal"}:        addGoal,
	{http.MethodPost, "budget"}:      addBudget,

	{http.MethodPut, "goal"}:   updateGoal,
	{http.MethodPut, "budget"}: updateBudget,
}

// decode reads a JSON object body. An empty body is treated as {} so the
// missing fields are reported by validation.
func decode[T any](op string, body []byte) (T, error) {
	var v T
	if len(body) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, errs.E(errs.Validation, op, err)
	}
	return v, nil
}

func getDashboard(ctx context.Context, d *Dispatcher, s *store.Store, _ []byte) (any, error) {
	return s.GetDashboard(ctx, d.recentLimit)
}

func getAccounts(ctx context.Context, _ *Dispatcher, s *store.Store, _ []byte) (any, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"accounts": accounts}, nil
}

func getTransactions(ctx context.Context, d *Dispatcher, s *store.Store, _ []byte) (any, error) {
	transactions, err := s.ListTransactions(ctx, d.listLimit)
	if err != nil {
		return nil, err
	}
	return map[string]any{"transactions": transactions}, nil
}

func getBudgets(ctx context.Context, _ *Dispatcher, s *store.Store, _ []byte) (any, error) {
	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"budgets": budgets}, nil
}

func getGoals(ctx context.Context, _ *Dispatcher, s *store.Store, _ []byte) (any, error) {
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"goals": goals}, nil
}

func getCategories(ctx context.Context, _ *Dispatcher, s *store.Store, _ []byte) (any, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"categories": categories}, nil
}

func addTransaction(ctx context.Context, _ *Dispatcher, s *store.Store, body []byte) (any, error) {
	req, err := decode[models.AddTransactionRequest]("add_transaction", body)
	if err != nil {
		return nil, err
	}
	id, err := s.AddTransaction(ctx, req)
	if err != nil {
		return nil, err
	}
	return map[string]any{"success": true, "transaction_id": id}, nil
}

func addAccount(ctx context.Context, _ *Dispatcher, s *store.Store, body []byte) (any, error) {
	req, err := decode[models.AddAccountRequest]("add_account", body)
	if err != nil {
		return nil, err
	}
	id, err := s.AddAccount(ctx, req)
	if err != nil {
		return nil, err
	}
	return map[string]any{"success": true, "account_id": id}, nil
}

func addGoal(ctx context.Context, _ *Dispatcher, s *store.Store, body []byte) (any, error) {
	req, err := decode[models.AddGoalRequest]("add_goal", body)
	if err != nil {
		return nil, err
	}
	id, err := s.AddGoal(ctx, req)
	if err != nil {
		return nil, err
	}
	return map[string]any{"success": true, "goal_id": id}, nil
}

func addBudget(ctx context.Context, _ *Dispatcher, s *store.Store, body []byte) (any, error) {
	req, err := decode[models.AddBudgetRequest]("add_budget", body)
	if err != nil {
		return nil, err
	}
	id, err := s.AddBudget(ctx, req)
	if err != nil {
		return nil, err
	}
	return map[string]any{"success": true, "budget_id": id}, nil
}

func updateGoal(ctx context.Context, _ *Dispatcher, s *store.Store, body []byte) (any, error) {
	req, err := decode[models.UpdateGoalRequest]("update_goal", body)
	if err != nil {
		return nil, err
	}
	completed, err := s.UpdateGoal(ctx, req)
	if err != nil {
		return nil, err
	}
	return map[string]any{"success": true, "completed": completed}, nil
}

func updateBudget(ctx context.Context, _ *Dispatcher, s *store.Store, body []byte) (any, error) {
	req, err := decode[models.UpdateBudgetRequest]("update_budget", body)
	if err != nil {
		return nil, err
	}
	if err := s.UpdateBudget(ctx, req); err != nil {
		return nil, err
	}
	return map[string]any{"success": true}, nil
}
