package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/splitledger/splitledger/internal/middleware"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
	"github.com/splitledger/splitledger/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "splitledger-service-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func seedUser(t *testing.T, store storage.Store, email, name string) *models.User {
	t.Helper()

	user := models.NewUser(email, name, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

// asUser builds the context an authenticated request would carry.
func asUser(user *models.User) context.Context {
	return middleware.WithUserID(context.Background(), user.ID)
}

// ledger is the standard three-person fixture: Alice owns the group and has
// contacts for herself, Bob, and Carol, each linked to the real user.
type ledger struct {
	store storage.Store
	group *models.Group

	alice, bob, carol                      *models.User
	aliceContact, bobContact, carolContact *models.Contact
}

func newLedger(t *testing.T) *ledger {
	t.Helper()

	store := newTestStore(t)
	ctx := context.Background()

	l := &ledger{
		store: store,
		alice: seedUser(t, store, "alice@example.com", "Alice"),
		bob:   seedUser(t, store, "bob@example.com", "Bob"),
		carol: seedUser(t, store, "carol@example.com", "Carol"),
	}

	link := func(name string, user *models.User) *models.Contact {
		c := &models.Contact{OwnerID: l.alice.ID, Name: name, LinkedUserID: user.ID}
		if err := store.CreateContact(ctx, c); err != nil {
			t.Fatalf("CreateContact failed: %v", err)
		}
		return c
	}
	l.aliceContact = link("Alice", l.alice)
	l.bobContact = link("Bob", l.bob)
	l.carolContact = link("Carol", l.carol)

	l.group = &models.Group{OwnerID: l.alice.ID, Name: "Ski Trip"}
	if err := store.CreateGroup(ctx, l.group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	for _, c := range []*models.Contact{l.aliceContact, l.bobContact, l.carolContact} {
		if err := store.AddGroupMember(ctx, l.group.ID, c.ID); err != nil {
			t.Fatalf("AddGroupMember failed: %v", err)
		}
	}

	return l
}
