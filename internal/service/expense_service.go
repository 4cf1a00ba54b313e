package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/splitledger/splitledger/internal/middleware"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/money"
	"github.com/splitledger/splitledger/internal/storage"
)

// ExpenseService creates and lists expenses. It is the producer of the split
// rows the balance calculator consumes.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates an ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateEqualSplitExpense logs an expense split evenly across every current
// group member. The caller is recorded as the payer. Shares are 2dp amounts
// that sum exactly to the rounded total, leftover cents going to the first
// members in name order.
func (s *ExpenseService) CreateEqualSplitExpense(ctx context.Context, groupID, description string, total float64, category string) (*models.Expense, error) {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if total <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}
	members, err := s.store.ListGroupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: group has no members to split between", ErrInvalidInput)
	}

	shares := money.EqualShares(total, len(members))
	expense := &models.Expense{
		GroupID:     groupID,
		CreatedBy:   callerID,
		Description: description,
		Amount:      money.Round(total),
		Category:    category,
	}
	for i, m := range members {
		expense.Splits = append(expense.Splits, models.Split{
			ContactID: m.ID,
			Share:     shares[i],
		})
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateEqualSplitExpense failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("expense created", "expense_id", expense.ID, "group_id", groupID,
		"amount", expense.Amount, "splits", len(expense.Splits))
	return expense, nil
}

// CreateCustomSplitExpense logs an expense with explicit per-contact shares.
// The expense amount is the sum of the shares, each rounded to 2dp. Shares
// must be non-negative, name existing contacts, and sum to more than zero.
func (s *ExpenseService) CreateCustomSplitExpense(ctx context.Context, groupID, description string, shares []models.ShareInput, category string) (*models.Expense, error) {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(shares) == 0 {
		return nil, fmt.Errorf("%w: at least one share is required", ErrInvalidInput)
	}

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}

	ids := make([]string, 0, len(shares))
	var total float64
	seen := make(map[string]bool, len(shares))
	for _, in := range shares {
		if in.Share < 0 {
			return nil, fmt.Errorf("%w: shares must not be negative", ErrInvalidInput)
		}
		if seen[in.ContactID] {
			return nil, fmt.Errorf("%w: duplicate share for contact %s", ErrInvalidInput, in.ContactID)
		}
		seen[in.ContactID] = true
		ids = append(ids, in.ContactID)
		total += money.Round(in.Share)
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: shares must sum to more than zero", ErrInvalidInput)
	}

	contacts, err := s.store.GetContactsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := contacts[id]; !ok {
			return nil, fmt.Errorf("%w: contact %s", ErrNotFound, id)
		}
	}

	expense := &models.Expense{
		GroupID:     groupID,
		CreatedBy:   callerID,
		Description: description,
		Amount:      money.Round(total),
		Category:    category,
	}
	for _, in := range shares {
		expense.Splits = append(expense.Splits, models.Split{
			ContactID: in.ContactID,
			Share:     money.Round(in.Share),
		})
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateCustomSplitExpense failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("expense created", "expense_id", expense.ID, "group_id", groupID,
		"amount", expense.Amount, "splits", len(expense.Splits))
	return expense, nil
}

// ListExpenses retrieves a group's expenses with their splits, oldest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if middleware.GetUserID(ctx) == "" {
		return nil, ErrUnauthenticated
	}
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// RecentExpenses retrieves the group's newest expenses, capped at limit
// (default 5, like the dashboard widget it feeds).
func (s *ExpenseService) RecentExpenses(ctx context.Context, groupID string, limit int) ([]*models.Expense, error) {
	if middleware.GetUserID(ctx) == "" {
		return nil, ErrUnauthenticated
	}
	if limit <= 0 {
		limit = 5
	}
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}
	return s.store.ListRecentExpenses(ctx, groupID, limit)
}

// CategoryTotals aggregates the group's spending per category.
func (s *ExpenseService) CategoryTotals(ctx context.Context, groupID string) ([]models.CategoryTotal, error) {
	if middleware.GetUserID(ctx) == "" {
		return nil, ErrUnauthenticated
	}
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}
	return s.store.CategoryTotals(ctx, groupID)
}
