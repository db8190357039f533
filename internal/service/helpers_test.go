package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
	"github.com/splitledger/splitledger/internal/storage/sqlite"
)

// setupStore creates a real SQLite store backed by a temp file.
func setupStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "splitledger-svc-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUsers(t *testing.T, store storage.Store, usernames ...string) {
	t.Helper()
	for _, u := range usernames {
		if err := store.CreateUser(context.Background(), &models.User{Username: u}); err != nil {
			t.Fatalf("seed user %s: %v", u, err)
		}
	}
}

func seedGroup(t *testing.T, store storage.Store, name, owner string, members ...string) *models.Group {
	t.Helper()
	group := &models.Group{Name: name, Owner: owner, Members: append([]string{owner}, members...)}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("seed group %s: %v", name, err)
	}
	return group
}

func seedExpense(t *testing.T, store storage.Store, groupID, title string, cents int64, date time.Time, paidBy string, splitAmong []string) *models.Expense {
	t.Helper()
	split, err := models.NewEqualSplit(splitAmong)
	if err != nil {
		t.Fatalf("seed split: %v", err)
	}
	expense := &models.Expense{
		GroupID:     groupID,
		Title:       title,
		AmountCents: cents,
		Date:        date,
		PaidBy:      paidBy,
		Split:       split,
	}
	if err := store.CreateExpense(context.Background(), expense); err != nil {
		t.Fatalf("seed expense %s: %v", title, err)
	}
	return expense
}
