package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateContact(t *testing.T) {
	store := newTestStore(t)
	contacts := NewContactService(store)

	owner := seedUser(t, store, "owner@example.com", "Owner")
	friend := seedUser(t, store, "friend@example.com", "Friend")

	t.Run("plain contact", func(t *testing.T) {
		contact, err := contacts.CreateContact(asUser(owner), "Uncle Joe", "", "555-0100", "")
		if err != nil {
			t.Fatalf("CreateContact failed: %v", err)
		}
		if contact.ID == "" {
			t.Error("Expected contact ID to be set")
		}
		if contact.OwnerID != owner.ID {
			t.Errorf("OwnerID mismatch: got %s, want %s", contact.OwnerID, owner.ID)
		}
	})

	t.Run("linked contact", func(t *testing.T) {
		contact, err := contacts.CreateContact(asUser(owner), "Friend", "friend@example.com", "", friend.ID)
		if err != nil {
			t.Fatalf("CreateContact failed: %v", err)
		}
		if contact.LinkedUserID != friend.ID {
			t.Errorf("LinkedUserID mismatch: got %s, want %s", contact.LinkedUserID, friend.ID)
		}
	})

	t.Run("second link to the same user conflicts", func(t *testing.T) {
		if _, err := contacts.CreateContact(asUser(owner), "Friend Again", "", "", friend.ID); !errors.Is(err, ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("link to unknown user", func(t *testing.T) {
		if _, err := contacts.CreateContact(asUser(owner), "Ghost", "", "", "nonexistent-id"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		if _, err := contacts.CreateContact(asUser(owner), "  ", "", "", ""); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		if _, err := contacts.CreateContact(context.Background(), "Uncle Joe", "", "", ""); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("Expected ErrUnauthenticated, got %v", err)
		}
	})
}

func TestGetContactHidesOtherAddressBooks(t *testing.T) {
	store := newTestStore(t)
	contacts := NewContactService(store)

	owner := seedUser(t, store, "owner@example.com", "Owner")
	other := seedUser(t, store, "other@example.com", "Other")

	contact, err := contacts.CreateContact(asUser(owner), "Private", "", "", "")
	if err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}

	if got, err := contacts.GetContact(asUser(owner), contact.ID); err != nil || got.Name != "Private" {
		t.Errorf("Owner lookup failed: got %v, err %v", got, err)
	}
	if _, err := contacts.GetContact(asUser(other), contact.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for foreign contact, got %v", err)
	}
}

func TestListContactsOrderedByName(t *testing.T) {
	store := newTestStore(t)
	contacts := NewContactService(store)

	owner := seedUser(t, store, "owner@example.com", "Owner")
	for _, name := range []string{"Zed", "Amy", "Mid"} {
		if _, err := contacts.CreateContact(asUser(owner), name, "", "", ""); err != nil {
			t.Fatalf("CreateContact failed: %v", err)
		}
	}

	got, err := contacts.ListContacts(asUser(owner))
	if err != nil {
		t.Fatalf("ListContacts failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 contacts, got %d", len(got))
	}
	if got[0].Name != "Amy" || got[1].Name != "Mid" || got[2].Name != "Zed" {
		t.Errorf("Expected name order, got %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
}
