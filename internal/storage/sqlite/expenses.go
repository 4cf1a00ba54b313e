package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitledger/splitledger/internal/models"
)

// CreateExpense persists an expense together with all of its splits in a
// single transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, created_by, description, amount, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.CreatedBy, expense.Description,
		expense.Amount, nullable(expense.Category), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range expense.Splits {
		split := &expense.Splits[i]
		split.ExpenseID = expense.ID
		_, err = tx.ExecContext(ctx,
			"INSERT INTO splits (expense_id, contact_id, share) VALUES (?, ?, ?)",
			split.ExpenseID, split.ContactID, split.Share,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListExpensesByGroup retrieves all of a group's expenses with their splits,
// oldest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	return s.listExpenses(ctx,
		`SELECT id, group_id, created_by, description, amount, category, created_at
		 FROM expenses WHERE group_id = ? ORDER BY created_at, id`,
		groupID,
	)
}

// ListRecentExpenses retrieves the group's newest expenses, up to limit.
func (s *SQLiteStore) ListRecentExpenses(ctx context.Context, groupID string, limit int) ([]*models.Expense, error) {
	return s.listExpenses(ctx,
		`SELECT id, group_id, created_by, description, amount, category, created_at
		 FROM expenses WHERE group_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		groupID, limit,
	)
}

func (s *SQLiteStore) listExpenses(ctx context.Context, query string, args ...interface{}) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var category sql.NullString
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.CreatedBy,
			&expense.Description, &expense.Amount, &category, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Category = category.String
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		splitRows, err := s.db.QueryContext(ctx,
			"SELECT expense_id, contact_id, share FROM splits WHERE expense_id = ? ORDER BY contact_id",
			expense.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get splits: %w", err)
		}

		for splitRows.Next() {
			var split models.Split
			if err := splitRows.Scan(&split.ExpenseID, &split.ContactID, &split.Share); err != nil {
				splitRows.Close()
				return nil, fmt.Errorf("failed to scan split: %w", err)
			}
			expense.Splits = append(expense.Splits, split)
		}
		splitRows.Close()
		if err := splitRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate splits: %w", err)
		}
	}

	return expenses, nil
}

// CategoryTotals aggregates a group's spending per category. Uncategorized
// expenses are reported under "Other".
func (s *SQLiteStore) CategoryTotals(ctx context.Context, groupID string) ([]models.CategoryTotal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT COALESCE(category, 'Other'), SUM(amount)
		 FROM expenses WHERE group_id = ?
		 GROUP BY COALESCE(category, 'Other')
		 ORDER BY 1`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category totals: %w", err)
	}

	return totals, nil
}
