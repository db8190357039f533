package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverview_Totals(t *testing.T) {
	now := date(2024, time.March, 15)
	entries := []Entry{
		{Title: "Rent", Group: "Flat", Payer: "ana", Amount: 90000, Date: date(2024, time.March, 1)},
		{Title: "Pizza", Group: "Flat", Payer: "ben", Amount: 2400, Date: date(2024, time.February, 20)},
		{Title: "Lift pass", Group: "Ski Trip", Payer: "ana", Amount: 15000, Date: date(2024, time.January, 5)},
	}

	got := Overview(entries, now)

	assert.Equal(t, Cents(107400), got.TotalSpend)
	assert.Equal(t, []DimensionTotal{
		{Name: "Flat", Total: 92400},
		{Name: "Ski Trip", Total: 15000},
	}, got.ByGroup)
	assert.Equal(t, []DimensionTotal{
		{Name: "ana", Total: 105000},
		{Name: "ben", Total: 2400},
	}, got.ByPayer)
}

func TestOverview_MonthlyWindowZeroFilled(t *testing.T) {
	// Expenses only in the current month: five leading zero months, then one
	// non-zero bucket, all labeled.
	now := date(2024, time.March, 15)
	entries := []Entry{
		{Group: "Flat", Payer: "ana", Amount: 1000, Date: date(2024, time.March, 2)},
		{Group: "Flat", Payer: "ben", Amount: 500, Date: date(2024, time.March, 9)},
	}

	got := Overview(entries, now)

	want := []MonthTotal{
		{Month: "2023-10", Total: 0},
		{Month: "2023-11", Total: 0},
		{Month: "2023-12", Total: 0},
		{Month: "2024-01", Total: 0},
		{Month: "2024-02", Total: 0},
		{Month: "2024-03", Total: 1500},
	}
	assert.Equal(t, want, got.Monthly)
}

func TestOverview_MonthlyWindowCrossesYearBoundary(t *testing.T) {
	now := date(2024, time.January, 31)
	entries := []Entry{
		{Group: "Flat", Payer: "ana", Amount: 700, Date: date(2023, time.November, 11)},
		{Group: "Flat", Payer: "ana", Amount: 9999, Date: date(2022, time.June, 1)}, // outside window
	}

	got := Overview(entries, now)

	require.Len(t, got.Monthly, 6)
	assert.Equal(t, "2023-08", got.Monthly[0].Month)
	assert.Equal(t, "2024-01", got.Monthly[5].Month)
	assert.Equal(t, Cents(700), got.Monthly[3].Total)
}

func TestOverview_AbsoluteSpendAndUnknownGroup(t *testing.T) {
	now := date(2024, time.May, 1)
	entries := []Entry{
		{Group: "", Payer: "ana", Amount: -2500, Date: date(2024, time.May, 1)},
	}

	got := Overview(entries, now)

	assert.Equal(t, Cents(2500), got.TotalSpend)
	require.Len(t, got.ByGroup, 1)
	assert.Equal(t, UnknownGroup, got.ByGroup[0].Name)
}

func TestOverview_Idempotent(t *testing.T) {
	now := date(2024, time.July, 4)
	entries := []Entry{
		{Group: "Flat", Payer: "ana", Amount: 1250, Date: date(2024, time.July, 1)},
		{Group: "Ski Trip", Payer: "ben", Amount: 1250, Date: date(2024, time.June, 1)},
	}

	first := Overview(entries, now)
	second := Overview(entries, now)
	assert.Equal(t, first, second)
}

func TestSummarize_RecentAndQuickStats(t *testing.T) {
	entries := []Entry{
		{Title: "Old", Group: "Flat", Payer: "ana", Amount: 100, Date: date(2024, time.January, 1)},
		{Title: "Mid", Group: "Flat", Payer: "ben", Amount: 200, Date: date(2024, time.February, 1)},
		{Title: "New", Group: "Ski Trip", Payer: "ana", Amount: 300, Date: date(2024, time.March, 1)},
	}

	got := Summarize(entries, 2)

	assert.Equal(t, Cents(600), got.Total)
	require.Len(t, got.Recent, 2)
	assert.Equal(t, "New", got.Recent[0].Title)
	assert.Equal(t, "Mid", got.Recent[1].Title)
	assert.Equal(t, 2, got.CountRecent)
	assert.Equal(t, Cents(250), got.AvgRecent)
	assert.Equal(t, "Flat", got.TopGroup)
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, 10)

	assert.Equal(t, Cents(0), got.Total)
	assert.Empty(t, got.Recent)
	assert.Equal(t, 0, got.CountRecent)
	assert.Equal(t, Cents(0), got.AvgRecent)
	assert.Empty(t, got.TopGroup)
}
