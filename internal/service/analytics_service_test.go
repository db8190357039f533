package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/storage"
)

func TestAnalyticsService_Overview(t *testing.T) {
	store := setupStore(t)
	svc := NewAnalyticsService(store)
	ctx := context.Background()

	seedUsers(t, store, "alice", "bob")
	group := seedGroup(t, store, "Flat", "alice", "bob")
	seedExpense(t, store, group.ID, "Rent", 90000,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "alice", []string{"alice", "bob"})
	seedExpense(t, store, group.ID, "Internet", 4000,
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), "bob", []string{"alice", "bob"})

	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	got, err := svc.Overview(ctx, "alice", now)
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}

	if got.TotalSpend != 94000 {
		t.Errorf("expected total spend 94000 cents, got %d", got.TotalSpend)
	}
	if len(got.ByGroup) != 1 || got.ByGroup[0].Name != "Flat" {
		t.Errorf("unexpected byGroup: %v", got.ByGroup)
	}
	if len(got.ByPayer) != 2 || got.ByPayer[0].Name != "alice" {
		t.Errorf("unexpected byPayer: %v", got.ByPayer)
	}
	if len(got.Monthly) != 6 {
		t.Fatalf("expected 6 monthly buckets, got %d", len(got.Monthly))
	}
	if got.Monthly[5].Month != "2024-03" || got.Monthly[5].Total != 90000 {
		t.Errorf("unexpected current month bucket: %+v", got.Monthly[5])
	}
	if got.Monthly[4].Month != "2024-02" || got.Monthly[4].Total != 4000 {
		t.Errorf("unexpected previous month bucket: %+v", got.Monthly[4])
	}

	// Same snapshot and same now must reproduce the identical result.
	again, err := svc.Overview(ctx, "alice", now)
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	assertOverviewsEqual(t, got, again)
}

func assertOverviewsEqual(t *testing.T, a, b ledger.OverviewResult) {
	t.Helper()
	if a.TotalSpend != b.TotalSpend || len(a.ByGroup) != len(b.ByGroup) ||
		len(a.ByPayer) != len(b.ByPayer) || len(a.Monthly) != len(b.Monthly) {
		t.Fatalf("overviews differ: %+v vs %+v", a, b)
	}
	for i := range a.Monthly {
		if a.Monthly[i] != b.Monthly[i] {
			t.Errorf("monthly bucket %d differs: %+v vs %+v", i, a.Monthly[i], b.Monthly[i])
		}
	}
}

func TestAnalyticsService_Summary(t *testing.T) {
	store := setupStore(t)
	svc := NewAnalyticsService(store)
	ctx := context.Background()

	seedUsers(t, store, "alice", "bob")
	group := seedGroup(t, store, "Flat", "alice", "bob")
	seedExpense(t, store, group.ID, "Rent", 90000,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "alice", []string{"alice", "bob"})
	seedExpense(t, store, group.ID, "Pizza", 2400,
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "bob", []string{"alice", "bob"})

	got, err := svc.Summary(ctx, "bob")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if got.Total != 92400 {
		t.Errorf("expected total 92400 cents, got %d", got.Total)
	}
	if got.CountRecent != 2 {
		t.Errorf("expected 2 recent expenses, got %d", got.CountRecent)
	}
	if got.AvgRecent != 46200 {
		t.Errorf("expected average 46200 cents, got %d", got.AvgRecent)
	}
	if got.TopGroup != "Flat" {
		t.Errorf("expected top group Flat, got %q", got.TopGroup)
	}
	if len(got.Recent) != 2 || got.Recent[0].Title != "Pizza" {
		t.Errorf("expected newest-first recents, got %v", got.Recent)
	}
}

func TestAnalyticsService_UnknownUser(t *testing.T) {
	store := setupStore(t)
	svc := NewAnalyticsService(store)
	ctx := context.Background()

	if _, err := svc.Summary(ctx, "ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Overview(ctx, "", time.Now()); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
