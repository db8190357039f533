package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// recentExpenseLimit caps the recent-expenses listing.
const recentExpenseLimit = 5

// ExpenseService manages expense records within groups.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateExpenseInput carries a validated-at-the-boundary expense to record.
// AmountCents is the total in integer cents. SplitMembers is only consulted
// for custom splits; equal splits cover the whole group.
type CreateExpenseInput struct {
	GroupID      string
	Title        string
	AmountCents  int64
	Date         time.Time
	PaidBy       string
	Notes        string
	SplitKind    models.SplitKind
	SplitMembers []string
}

// Create validates and records a new expense. The payer and every split
// member must belong to the group; violations here are user error, unlike the
// integrity failures the balance calculator raises for already-stored data.
func (s *ExpenseService) Create(ctx context.Context, in CreateExpenseInput) (*models.Expense, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.PaidBy = strings.TrimSpace(in.PaidBy)
	switch {
	case in.GroupID == "" || in.Title == "":
		return nil, fmt.Errorf("%w: group id and title required", ErrValidation)
	case in.AmountCents <= 0:
		return nil, fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	case in.Date.IsZero():
		return nil, fmt.Errorf("%w: date required", ErrValidation)
	case in.PaidBy == "":
		return nil, fmt.Errorf("%w: payer required", ErrValidation)
	}

	group, err := s.store.GetGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(in.PaidBy) {
		return nil, fmt.Errorf("%w: payer %q is not a member of group %q", ErrValidation, in.PaidBy, group.Name)
	}

	var split models.Split
	switch in.SplitKind {
	case models.SplitEqual, "":
		split, err = models.NewEqualSplit(group.Members)
	case models.SplitCustom:
		seen := make(map[string]struct{}, len(in.SplitMembers))
		for _, m := range in.SplitMembers {
			if !group.HasMember(m) {
				return nil, fmt.Errorf("%w: split member %q is not a member of group %q", ErrValidation, m, group.Name)
			}
			if _, dup := seen[m]; dup {
				return nil, fmt.Errorf("%w: split member %q is listed more than once", ErrValidation, m)
			}
			seen[m] = struct{}{}
		}
		split, err = models.NewCustomSplit(in.SplitMembers)
	default:
		return nil, fmt.Errorf("%w: unknown split type %q", ErrValidation, in.SplitKind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	expense := &models.Expense{
		GroupID:     in.GroupID,
		Title:       in.Title,
		AmountCents: in.AmountCents,
		Date:        in.Date,
		PaidBy:      in.PaidBy,
		Split:       split,
		Notes:       strings.TrimSpace(in.Notes),
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"amount_cents", expense.AmountCents,
		"paid_by", expense.PaidBy,
		"split", string(split.Kind),
	)
	return expense, nil
}

// ListForGroup retrieves a group's expenses, newest first.
func (s *ExpenseService) ListForGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id required", ErrValidation)
	}
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// Delete removes an expense by ID. Corrections are delete plus re-add.
func (s *ExpenseService) Delete(ctx context.Context, expenseID string) error {
	if expenseID == "" {
		return fmt.Errorf("%w: expense id required", ErrValidation)
	}
	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}
	slog.Info("Expense deleted", "expense_id", expenseID)
	return nil
}

// Recent retrieves the user's most recent expenses across all their groups.
func (s *ExpenseService) Recent(ctx context.Context, username string) ([]*models.Expense, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrValidation)
	}
	if _, err := s.store.GetUser(ctx, username); err != nil {
		return nil, err
	}
	return s.store.ListExpensesByUser(ctx, username, recentExpenseLimit)
}
