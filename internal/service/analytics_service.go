package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// summaryRecentLimit is the size of the summary's recent-expenses window.
const summaryRecentLimit = 10

// AnalyticsService aggregates a user's expense history into spend summaries.
type AnalyticsService struct {
	store storage.Store
}

// NewAnalyticsService creates a new AnalyticsService with the given storage backend.
func NewAnalyticsService(store storage.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Overview aggregates total, per-group, per-payer, and six-month spend for
// the user, with the monthly window ending at now.
func (s *AnalyticsService) Overview(ctx context.Context, username string, now time.Time) (ledger.OverviewResult, error) {
	entries, err := s.entriesForUser(ctx, username)
	if err != nil {
		return ledger.OverviewResult{}, err
	}
	return ledger.Overview(entries, now), nil
}

// Summary produces the compact spend summary for the user.
func (s *AnalyticsService) Summary(ctx context.Context, username string) (ledger.SummaryResult, error) {
	entries, err := s.entriesForUser(ctx, username)
	if err != nil {
		return ledger.SummaryResult{}, err
	}
	return ledger.Summarize(entries, summaryRecentLimit), nil
}

// entriesForUser snapshots the user's full accessible expense history as
// analytics entries.
func (s *AnalyticsService) entriesForUser(ctx context.Context, username string) ([]ledger.Entry, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrValidation)
	}
	if _, err := s.store.GetUser(ctx, username); err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpensesByUser(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	return toEntries(expenses), nil
}

func toEntries(expenses []*models.Expense) []ledger.Entry {
	entries := make([]ledger.Entry, len(expenses))
	for i, e := range expenses {
		entries[i] = ledger.Entry{
			Title:  e.Title,
			Group:  e.GroupName,
			Payer:  e.PaidBy,
			Amount: ledger.Cents(e.AmountCents),
			Date:   e.Date,
		}
	}
	return entries
}
