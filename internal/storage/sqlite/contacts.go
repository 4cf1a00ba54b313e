package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// nullable maps the empty string to NULL so optional columns (and the
// UNIQUE(owner_id, linked_user_id) constraint) behave.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// CreateContact inserts a new contact, generating its ID and timestamp.
func (s *SQLiteStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.CreatedAt == 0 {
		contact.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (id, owner_id, name, email, phone, linked_user_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		contact.ID, contact.OwnerID, contact.Name,
		nullable(contact.Email), nullable(contact.Phone), nullable(contact.LinkedUserID),
		contact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return nil
}

func scanContact(row interface{ Scan(...interface{}) error }) (*models.Contact, error) {
	contact := &models.Contact{}
	var email, phone, linkedUserID sql.NullString

	err := row.Scan(&contact.ID, &contact.OwnerID, &contact.Name,
		&email, &phone, &linkedUserID, &contact.CreatedAt)
	if err != nil {
		return nil, err
	}

	contact.Email = email.String
	contact.Phone = phone.String
	contact.LinkedUserID = linkedUserID.String
	return contact, nil
}

const contactColumns = "id, owner_id, name, email, phone, linked_user_id, created_at"

// GetContact retrieves a contact by ID.
func (s *SQLiteStore) GetContact(ctx context.Context, contactID string) (*models.Contact, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE id = ?", contactID)

	contact, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("contact %s: %w", contactID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// GetContactsByIDs retrieves multiple contacts by their IDs.
// Contacts that don't exist are omitted from the result map.
func (s *SQLiteStore) GetContactsByIDs(ctx context.Context, ids []string) (map[string]*models.Contact, error) {
	contacts := make(map[string]*models.Contact)
	if len(ids) == 0 {
		return contacts, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts[contact.ID] = contact
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

// ListContactsByOwner retrieves all contacts in a user's address book.
func (s *SQLiteStore) ListContactsByOwner(ctx context.Context, ownerID string) ([]*models.Contact, error) {
	return s.listContacts(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE owner_id = ? ORDER BY name", ownerID)
}

// ListContactsByLinkedUser retrieves every contact linked to the given user.
func (s *SQLiteStore) ListContactsByLinkedUser(ctx context.Context, userID string) ([]*models.Contact, error) {
	return s.listContacts(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE linked_user_id = ?", userID)
}

func (s *SQLiteStore) listContacts(ctx context.Context, query string, args ...interface{}) ([]*models.Contact, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}
