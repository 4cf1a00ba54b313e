package service

import (
	"context"
	"errors"
	"testing"

	"github.com/splitledger/splitledger/internal/models"
)

func TestCreateEqualSplitExpense(t *testing.T) {
	l := newLedger(t)
	expenses := NewExpenseService(l.store)

	expense, err := expenses.CreateEqualSplitExpense(asUser(l.alice), l.group.ID, "Dinner", 30.00, "Food")
	if err != nil {
		t.Fatalf("CreateEqualSplitExpense failed: %v", err)
	}

	if expense.Amount != 30.00 {
		t.Errorf("Amount mismatch: got %.2f, want 30.00", expense.Amount)
	}
	if expense.CreatedBy != l.alice.ID {
		t.Errorf("CreatedBy mismatch: got %s, want %s", expense.CreatedBy, l.alice.ID)
	}
	if len(expense.Splits) != 3 {
		t.Fatalf("Expected 3 splits, got %d", len(expense.Splits))
	}
	for _, s := range expense.Splits {
		if s.Share != 10.00 {
			t.Errorf("Expected 10.00 share, got %.2f", s.Share)
		}
	}
}

func TestCreateEqualSplitExpenseDistributesRemainder(t *testing.T) {
	l := newLedger(t)
	expenses := NewExpenseService(l.store)

	expense, err := expenses.CreateEqualSplitExpense(asUser(l.alice), l.group.ID, "Fuel", 100.00, "")
	if err != nil {
		t.Fatalf("CreateEqualSplitExpense failed: %v", err)
	}

	var sum float64
	for _, s := range expense.Splits {
		sum += s.Share
	}
	if sum != 100.00 {
		t.Errorf("Expected shares to sum to 100.00, got %.2f", sum)
	}
	// 100/3: the extra cent lands on the first member.
	if expense.Splits[0].Share != 33.34 {
		t.Errorf("Expected first share 33.34, got %.2f", expense.Splits[0].Share)
	}
	if expense.Splits[1].Share != 33.33 || expense.Splits[2].Share != 33.33 {
		t.Errorf("Expected remaining shares 33.33, got %.2f, %.2f",
			expense.Splits[1].Share, expense.Splits[2].Share)
	}
}

func TestCreateEqualSplitExpenseValidation(t *testing.T) {
	l := newLedger(t)
	expenses := NewExpenseService(l.store)

	if _, err := expenses.CreateEqualSplitExpense(context.Background(), l.group.ID, "Dinner", 30.00, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated, got %v", err)
	}
	if _, err := expenses.CreateEqualSplitExpense(asUser(l.alice), l.group.ID, "  ", 30.00, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for blank description, got %v", err)
	}
	if _, err := expenses.CreateEqualSplitExpense(asUser(l.alice), l.group.ID, "Dinner", 0, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount for zero total, got %v", err)
	}
	if _, err := expenses.CreateEqualSplitExpense(asUser(l.alice), l.group.ID, "Dinner", -10.00, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount for negative total, got %v", err)
	}
	if _, err := expenses.CreateEqualSplitExpense(asUser(l.alice), "nonexistent-id", "Dinner", 30.00, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown group, got %v", err)
	}
}

func TestCreateCustomSplitExpense(t *testing.T) {
	l := newLedger(t)
	expenses := NewExpenseService(l.store)

	expense, err := expenses.CreateCustomSplitExpense(asUser(l.alice), l.group.ID, "Taxi", []models.ShareInput{
		{ContactID: l.bobContact.ID, Share: 12.50},
		{ContactID: l.carolContact.ID, Share: 7.50},
	}, "Travel")
	if err != nil {
		t.Fatalf("CreateCustomSplitExpense failed: %v", err)
	}

	if expense.Amount != 20.00 {
		t.Errorf("Amount mismatch: got %.2f, want 20.00", expense.Amount)
	}
	if len(expense.Splits) != 2 {
		t.Fatalf("Expected 2 splits, got %d", len(expense.Splits))
	}
	if expense.Splits[0].Share != 12.50 || expense.Splits[1].Share != 7.50 {
		t.Errorf("Share mismatch: got %.2f, %.2f", expense.Splits[0].Share, expense.Splits[1].Share)
	}
}

func TestCreateCustomSplitExpenseValidation(t *testing.T) {
	l := newLedger(t)
	expenses := NewExpenseService(l.store)
	ctx := asUser(l.alice)

	tests := []struct {
		name    string
		shares  []models.ShareInput
		wantErr error
	}{
		{
			name:    "no shares",
			shares:  nil,
			wantErr: ErrInvalidInput,
		},
		{
			name: "negative share",
			shares: []models.ShareInput{
				{ContactID: l.bobContact.ID, Share: -1.00},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "duplicate contact",
			shares: []models.ShareInput{
				{ContactID: l.bobContact.ID, Share: 5.00},
				{ContactID: l.bobContact.ID, Share: 5.00},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "all zero shares",
			shares: []models.ShareInput{
				{ContactID: l.bobContact.ID, Share: 0},
				{ContactID: l.carolContact.ID, Share: 0},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown contact",
			shares: []models.ShareInput{
				{ContactID: "nonexistent-id", Share: 10.00},
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expenses.CreateCustomSplitExpense(ctx, l.group.ID, "Taxi", tt.shares, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRecentExpensesDefaultLimit(t *testing.T) {
	l := newLedger(t)
	expenses := NewExpenseService(l.store)
	ctx := asUser(l.alice)

	for _, desc := range []string{"One", "Two", "Three", "Four", "Five", "Six"} {
		if _, err := expenses.CreateEqualSplitExpense(ctx, l.group.ID, desc, 9.00, ""); err != nil {
			t.Fatalf("CreateEqualSplitExpense failed: %v", err)
		}
	}

	got, err := expenses.RecentExpenses(ctx, l.group.ID, 0)
	if err != nil {
		t.Fatalf("RecentExpenses failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Expected default limit of 5, got %d", len(got))
	}

	all, err := expenses.ListExpenses(ctx, l.group.ID)
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 expenses in full listing, got %d", len(all))
	}
}

func TestCategoryTotalsService(t *testing.T) {
	l := newLedger(t)
	expenses := NewExpenseService(l.store)
	ctx := asUser(l.alice)

	if _, err := expenses.CreateEqualSplitExpense(ctx, l.group.ID, "Dinner", 30.00, "Food"); err != nil {
		t.Fatalf("CreateEqualSplitExpense failed: %v", err)
	}
	if _, err := expenses.CreateEqualSplitExpense(ctx, l.group.ID, "Snacks", 6.00, "Food"); err != nil {
		t.Fatalf("CreateEqualSplitExpense failed: %v", err)
	}
	if _, err := expenses.CreateEqualSplitExpense(ctx, l.group.ID, "Misc", 9.00, ""); err != nil {
		t.Fatalf("CreateEqualSplitExpense failed: %v", err)
	}

	totals, err := expenses.CategoryTotals(ctx, l.group.ID)
	if err != nil {
		t.Fatalf("CategoryTotals failed: %v", err)
	}

	byCategory := make(map[string]float64, len(totals))
	for _, ct := range totals {
		byCategory[ct.Category] = ct.Total
	}
	if byCategory["Food"] != 36.00 {
		t.Errorf("Food total mismatch: got %.2f, want 36.00", byCategory["Food"])
	}
	if byCategory["Other"] != 9.00 {
		t.Errorf("Other total mismatch: got %.2f, want 9.00", byCategory["Other"])
	}
}
