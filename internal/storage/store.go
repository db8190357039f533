// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/splitledger/splitledger/internal/models"
)

// ErrNotFound is returned when a requested record does not exist. Reads wrap
// it with record details, so callers match with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write collides with an existing record
// (duplicate user, member already in group, share already paid).
var ErrConflict = errors.New("already exists")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer. Reads return point-in-time snapshots;
// the computation layer never merges results across multiple calls.
type Store interface {
	// CreateUser persists a new user. Returns ErrConflict if the username
	// is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by username.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// CreateGroup persists a new group together with its initial member list.
	// The group.ID and group.CreatedAt fields are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID with members in insertion order.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByUser retrieves every group the user is a member of,
	// newest first, each with its full member list.
	ListGroupsByUser(ctx context.Context, username string) ([]*models.Group, error)

	// AddGroupMember appends a member to a group's member list.
	// Returns ErrConflict if the user is already a member.
	AddGroupMember(ctx context.Context, groupID, username string) error

	// CreateExpense persists a new expense with its split rows.
	// The expense.ID and expense.CreatedAt fields are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID including its split.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup retrieves all of a group's expenses, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// ListExpensesByUser retrieves expenses across every group the user
	// belongs to, newest first, with GroupName populated. A limit of 0
	// means no limit.
	ListExpensesByUser(ctx context.Context, username string, limit int) ([]*models.Expense, error)

	// DeleteExpense removes an expense and its split rows.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreatePayment records that a member paid their share of an expense.
	// Returns ErrConflict if that share is already paid.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// ListPendingShares retrieves the user's unpaid shares on expenses paid
	// by someone else, newest first.
	ListPendingShares(ctx context.Context, username string) ([]*models.PendingShare, error)

	// ListPaymentsByUser retrieves the user's payment history, newest first,
	// with ExpenseTitle and GroupName populated. A limit of 0 means no limit.
	ListPaymentsByUser(ctx context.Context, username string, limit int) ([]*models.Payment, error)

	// Close releases any resources held by the store.
	Close() error
}
