package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// Settlement is the suggested transfer list that zeroes one group's balances.
type Settlement struct {
	GroupID   string
	GroupName string
	Transfers []ledger.Transfer
}

// SettlementService computes settlement suggestions from expense snapshots.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService with the given storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// ForGroup computes the settlement suggestion for one group from a fresh
// snapshot of its expenses. An empty transfer list means nothing to settle.
func (s *SettlementService) ForGroup(ctx context.Context, groupID string) (*Settlement, error) {
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id required", ErrValidation)
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.ComputeBalances(group.Members, toLedgerExpenses(expenses))
	if err != nil {
		slog.Error("Balance computation failed", "group_id", groupID, "error", err)
		return nil, err
	}
	transfers, err := ledger.Settle(balances)
	if err != nil {
		slog.Error("Settlement failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Debug("Settlement computed",
		"group_id", groupID,
		"expenses", len(expenses),
		"transfers", len(transfers),
	)
	return &Settlement{GroupID: group.ID, GroupName: group.Name, Transfers: transfers}, nil
}

// ForUser computes settlement suggestions for every group the user belongs
// to, in group-list order. Groups are independent snapshots, so they are
// computed concurrently.
func (s *SettlementService) ForUser(ctx context.Context, username string) ([]*Settlement, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrValidation)
	}
	if _, err := s.store.GetUser(ctx, username); err != nil {
		return nil, err
	}
	groups, err := s.store.ListGroupsByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	settlements := make([]*Settlement, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	for i, group := range groups {
		g.Go(func() error {
			settlement, err := s.ForGroup(gctx, group.ID)
			if err != nil {
				return err
			}
			settlements[i] = settlement
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return settlements, nil
}

// toLedgerExpenses converts stored expenses to the calculator's input shape.
func toLedgerExpenses(expenses []*models.Expense) []ledger.Expense {
	out := make([]ledger.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = ledger.Expense{
			Payer:       e.PaidBy,
			AmountCents: ledger.Cents(e.AmountCents),
			SplitAmong:  e.Split.Members,
		}
	}
	return out
}
