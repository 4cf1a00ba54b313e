package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/splitledger/splitledger/internal/middleware"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// ContactService manages a user's address book.
type ContactService struct {
	store storage.Store
}

// NewContactService creates a ContactService with the given storage backend.
func NewContactService(store storage.Store) *ContactService {
	return &ContactService{store: store}
}

// CreateContact adds a contact to the caller's address book. When
// linkedUserID is set, the linked user must exist and the caller may not
// already have a contact linked to them.
func (s *ContactService) CreateContact(ctx context.Context, name, email, phone, linkedUserID string) (*models.Contact, error) {
	ownerID := middleware.GetUserID(ctx)
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: contact name is required", ErrInvalidInput)
	}

	if linkedUserID != "" {
		if _, err := s.store.GetUserByID(ctx, linkedUserID); err != nil {
			return nil, fmt.Errorf("%w: linked user %s", ErrNotFound, linkedUserID)
		}
		existing, err := s.store.ListContactsByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		for _, c := range existing {
			if c.LinkedUserID == linkedUserID {
				return nil, fmt.Errorf("%w: a contact for this user already exists", ErrConflict)
			}
		}
	}

	contact := &models.Contact{
		OwnerID:      ownerID,
		Name:         name,
		Email:        email,
		Phone:        phone,
		LinkedUserID: linkedUserID,
	}
	if err := s.store.CreateContact(ctx, contact); err != nil {
		slog.Error("CreateContact failed", "owner_id", ownerID, "error", err)
		return nil, err
	}

	slog.Info("contact created", "contact_id", contact.ID, "owner_id", ownerID)
	return contact, nil
}

// GetContact retrieves one of the caller's contacts.
func (s *ContactService) GetContact(ctx context.Context, contactID string) (*models.Contact, error) {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	contact, err := s.store.GetContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("%w: contact %s", ErrNotFound, contactID)
	}
	if contact.OwnerID != callerID {
		// Not visible outside its owner's address book.
		return nil, fmt.Errorf("%w: contact %s", ErrNotFound, contactID)
	}

	return contact, nil
}

// ListContacts retrieves the caller's address book, ordered by name.
func (s *ContactService) ListContacts(ctx context.Context) ([]*models.Contact, error) {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	return s.store.ListContactsByOwner(ctx, callerID)
}
