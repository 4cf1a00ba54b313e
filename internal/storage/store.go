// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/splitledger/splitledger/internal/models"
)

// ErrNotFound is wrapped by store implementations when a referenced record
// does not exist. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the persistence operations the services need. The
// abstraction keeps the service layer independent of the backend and makes
// the core testable against any implementation.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns (nil, nil) when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Contacts
	CreateContact(ctx context.Context, contact *models.Contact) error
	GetContact(ctx context.Context, contactID string) (*models.Contact, error)
	GetContactsByIDs(ctx context.Context, ids []string) (map[string]*models.Contact, error)
	ListContactsByOwner(ctx context.Context, ownerID string) ([]*models.Contact, error)
	// ListContactsByLinkedUser returns every contact (across all address
	// books) linked to the given user. Used to resolve group visibility.
	ListContactsByLinkedUser(ctx context.Context, userID string) ([]*models.Contact, error)

	// Groups
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	// GetGroupByOwnerAndName returns (nil, nil) when the owner has no group
	// with that exact name.
	GetGroupByOwnerAndName(ctx context.Context, ownerID, name string) (*models.Group, error)
	ListGroupsByOwner(ctx context.Context, ownerID string) ([]*models.Group, error)
	ListGroupIDsByContact(ctx context.Context, contactID string) ([]string, error)
	// DeleteGroup removes the group and cascades to members, expenses,
	// splits, and settlements.
	DeleteGroup(ctx context.Context, groupID string) error

	// Membership
	AddGroupMember(ctx context.Context, groupID, contactID string) error
	RemoveGroupMember(ctx context.Context, groupID, contactID string) error
	ListGroupMembers(ctx context.Context, groupID string) ([]*models.Contact, error)

	// Expenses. CreateExpense writes the expense and all its splits in one
	// transaction; either everything lands or nothing does.
	CreateExpense(ctx context.Context, expense *models.Expense) error
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)
	ListRecentExpenses(ctx context.Context, groupID string, limit int) ([]*models.Expense, error)
	CategoryTotals(ctx context.Context, groupID string) ([]models.CategoryTotal, error)

	// Settlements
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
