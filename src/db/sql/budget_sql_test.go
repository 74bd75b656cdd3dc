package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"finance-api/src/errs"
	"finance-api/src/models"
)

var (
	januaryStart  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	februaryStart = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
)

const upsertBudgetRe = `ON CONFLICT \(category_id, month, year\)\s+DO UPDATE SET limit_amount = EXCLUDED.limit_amount`

func TestListBudgetsUsesCalendarMonth(t *testing.T) {
	store, mock := newMockStore(t)

	rows := pgxmock.NewRows([]string{"id", "category", "icon", "limit_amount", "spent"}).
		AddRow(int64(4), "Food", "🍔", dec("500"), dec("120.50")).
		AddRow(int64(5), "Transport", "🚌", dec("100"), dec("0"))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.month = $3 AND b.year = $4")).
		WithArgs(januaryStart, februaryStart, 1, 2024).
		WillReturnRows(rows)

	got, err := store.ListBudgets(context.Background())
	if err != nil {
		t.Fatalf("ListBudgets() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].ID == nil || *got[0].ID != 4 {
		t.Errorf("id = %v", got[0].ID)
	}
	if !got[0].Spent.Equal(dec("120.5")) {
		t.Errorf("spent = %s", got[0].Spent)
	}
	expectMet(t, mock)
}

func TestDashboardBudgetsFilterZeroLimits(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("HAVING COALESCE(b.limit_amount, 0) > 0")).
		WithArgs(1, 2024, januaryStart, februaryStart).
		WillReturnRows(pgxmock.NewRows([]string{"category", "icon", "limit_amount", "spent"}).
			AddRow("Food", "🍔", dec("500"), dec("75")))

	got, err := store.listCategoryBudgets(context.Background())
	if err != nil {
		t.Fatalf("listCategoryBudgets() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != nil {
		t.Errorf("unexpected budgets %+v", got)
	}
	expectMet(t, mock)
}

func TestAddBudgetUpsert(t *testing.T) {
	store, mock := newMockStore(t)
	req := models.AddBudgetRequest{
		CategoryID:  ptr(int64(3)),
		LimitAmount: ptr(dec("300")),
		Month:       ptr(2),
		Year:        ptr(2024),
	}

	// The second call hits the conflict branch and returns the same row.
	for range 2 {
		mock.ExpectQuery(upsertBudgetRe).
			WithArgs(int64(3), dec("300"), 2, 2024).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	}

	for i := 0; i < 2; i++ {
		id, err := store.AddBudget(context.Background(), req)
		if err != nil {
			t.Fatalf("AddBudget() call %d error = %v", i, err)
		}
		if id != 11 {
			t.Errorf("call %d id = %d, want 11", i, id)
		}
	}
	expectMet(t, mock)
}

func TestAddBudgetDefaultsToCurrentMonth(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(upsertBudgetRe).
		WithArgs(int64(3), dec("300"), 1, 2024).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	_, err := store.AddBudget(context.Background(), models.AddBudgetRequest{
		CategoryID:  ptr(int64(3)),
		LimitAmount: ptr(dec("300")),
	})
	if err != nil {
		t.Fatalf("AddBudget() error = %v", err)
	}
	expectMet(t, mock)
}

func TestUpdateBudget(t *testing.T) {
	tests := []struct {
		name     string
		queryErr error
		wantKind errs.Kind
		wantErr  bool
	}{
		{"updated", nil, 0, false},
		{"missing row", pgx.ErrNoRows, errs.NotFound, true},
		{"database down", errors.New("dial tcp: connection refused"), errs.Persistence, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			exp := mock.ExpectQuery(`UPDATE budgets`).WithArgs(dec("250"), int64(4))
			if tt.queryErr != nil {
				exp.WillReturnError(tt.queryErr)
			} else {
				exp.WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))
			}

			err := store.UpdateBudget(context.Background(), models.UpdateBudgetRequest{
				ID:          ptr(int64(4)),
				LimitAmount: ptr(dec("250")),
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateBudget() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && errs.KindOf(err) != tt.wantKind {
				t.Errorf("kind = %v, want %v", errs.KindOf(err), tt.wantKind)
			}
			expectMet(t, mock)
		})
	}
}
