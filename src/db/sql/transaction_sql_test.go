package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"

	"finance-api/src/errs"
	"finance-api/src/models"
)

const (
	insertTransactionRe = `INSERT INTO transactions`
	adjustBalanceRe     = `UPDATE accounts SET balance = balance \+ \$1 WHERE id = \$2`
)

func TestAddTransactionAdjustsBalance(t *testing.T) {
	tests := []struct {
		name      string
		typ       string
		amount    string
		wantDelta string
	}{
		{"expense subtracts", "expense", "50", "-50"},
		{"income adds", "income", "1200.75", "1200.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			date := models.NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
			req := models.AddTransactionRequest{
				Type:            ptr(tt.typ),
				Amount:          ptr(dec(tt.amount)),
				CategoryID:      ptr(int64(3)),
				AccountID:       ptr(int64(1)),
				TransactionDate: &date,
			}

			mock.ExpectBegin()
			mock.ExpectQuery(insertTransactionRe).
				WithArgs(tt.typ, dec(tt.amount), int64(3), "", date.Time, int64(1)).
				WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
			mock.ExpectExec(adjustBalanceRe).
				WithArgs(dec(tt.wantDelta), int64(1)).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			mock.ExpectCommit()

			id, err := store.AddTransaction(context.Background(), req)
			if err != nil {
				t.Fatalf("AddTransaction() error = %v", err)
			}
			if id != 42 {
				t.Errorf("id = %d, want 42", id)
			}
			expectMet(t, mock)
		})
	}
}

func TestAddTransactionDefaultsDateAndDescription(t *testing.T) {
	store, mock := newMockStore(t)
	req := models.AddTransactionRequest{
		Type:       ptr("income"),
		Amount:     ptr(dec("10")),
		CategoryID: ptr(int64(1)),
		AccountID:  ptr(int64(2)),
	}
	today := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(insertTransactionRe).
		WithArgs("income", dec("10"), int64(1), "", today, int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(adjustBalanceRe).
		WithArgs(dec("10"), int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if _, err := store.AddTransaction(context.Background(), req); err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	expectMet(t, mock)
}

func TestAddTransactionRollsBackWhenBalanceUpdateFails(t *testing.T) {
	store, mock := newMockStore(t)
	req := models.AddTransactionRequest{
		Type:        ptr("expense"),
		Amount:      ptr(dec("5")),
		CategoryID:  ptr(int64(1)),
		AccountID:   ptr(int64(9)),
		Description: ptr("coffee"),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(insertTransactionRe).
		WithArgs("expense", dec("5"), int64(1), "coffee", pgxmock.AnyArg(), int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectExec(adjustBalanceRe).
		WithArgs(dec("-5"), int64(9)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := store.AddTransaction(context.Background(), req)
	if err == nil {
		t.Fatal("expected error")
	}
	if errs.KindOf(err) != errs.Persistence {
		t.Errorf("kind = %v, want persistence", errs.KindOf(err))
	}
	expectMet(t, mock)
}

func TestAddTransactionUnknownAccountRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	req := models.AddTransactionRequest{
		Type:       ptr("expense"),
		Amount:     ptr(dec("5")),
		CategoryID: ptr(int64(1)),
		AccountID:  ptr(int64(404)),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(insertTransactionRe).
		WithArgs("expense", dec("5"), int64(1), "", pgxmock.AnyArg(), int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectExec(adjustBalanceRe).
		WithArgs(dec("-5"), int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	_, err := store.AddTransaction(context.Background(), req)
	if errs.KindOf(err) != errs.NotFound {
		t.Fatalf("err = %v, want not found", err)
	}
	expectMet(t, mock)
}

func TestAddTransactionValidatesBeforeQuerying(t *testing.T) {
	store, mock := newMockStore(t)

	_, err := store.AddTransaction(context.Background(), models.AddTransactionRequest{Type: ptr("expense")})
	if errs.KindOf(err) != errs.Validation {
		t.Fatalf("err = %v, want validation", err)
	}
	expectMet(t, mock)
}

func TestListTransactions(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	date := models.NewDate(created)

	rows := pgxmock.NewRows([]string{
		"id", "type", "amount", "category_id", "name", "icon",
		"description", "transaction_date", "account_id", "name", "created_at",
	}).
		AddRow(int64(1), "expense", dec("50"), ptr(int64(3)), ptr("Food"), ptr("🍔"),
			"lunch", date, ptr(int64(1)), ptr("Card"), created).
		AddRow(int64(2), "income", dec("900"), (*int64)(nil), (*string)(nil), (*string)(nil),
			"", date, ptr(int64(1)), ptr("Card"), created)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY t.transaction_date DESC, t.created_at DESC")).
		WithArgs(50).
		WillReturnRows(rows)

	got, err := store.ListTransactions(context.Background(), 50)
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].CategoryName == nil || *got[0].CategoryName != "Food" {
		t.Errorf("category name = %v", got[0].CategoryName)
	}
	if got[0].TransactionDate.String() != "2024-01-15" {
		t.Errorf("date = %s", got[0].TransactionDate)
	}
	if got[1].CategoryID != nil || got[1].CategoryName != nil {
		t.Errorf("expected nil category on second row, got %+v", got[1])
	}
	expectMet(t, mock)
}

func TestListTransactionsDefaultsLimit(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`FROM transactions t`).
		WithArgs(50).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	got, err := store.ListTransactions(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
	expectMet(t, mock)
}
