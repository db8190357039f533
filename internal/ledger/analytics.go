package ledger

import (
	"sort"
	"time"
)

// UnknownGroup is the bucket label for entries whose group cannot be resolved.
const UnknownGroup = "Personal"

// monthlyBuckets is the number of calendar months in the monthly series.
const monthlyBuckets = 6

// Entry is one expense as seen by the analytics aggregator: an absolute spend
// amount with its display dimensions. Entries come from every group the user
// belongs to.
type Entry struct {
	Title  string
	Group  string
	Payer  string
	Amount Cents
	Date   time.Time
}

// DimensionTotal is an aggregate total for one dimension value (group or payer).
type DimensionTotal struct {
	Name  string
	Total Cents
}

// MonthTotal is the spend total for one calendar month, labeled YYYY-MM.
type MonthTotal struct {
	Month string
	Total Cents
}

// OverviewResult is the full analytics overview for one user.
type OverviewResult struct {
	TotalSpend Cents
	ByGroup    []DimensionTotal
	ByPayer    []DimensionTotal
	Monthly    []MonthTotal
}

// Overview aggregates a user's expense history into totals by group, by payer,
// and a six-month series ending at now's calendar month, oldest first. Months
// with no expenses report a zero total rather than being absent.
//
// Spend is the absolute value of each amount regardless of upstream sign
// conventions, and entries with no resolvable group land in the UnknownGroup
// bucket rather than being dropped. The aggregation reads nothing but its
// arguments, so re-running it over the same snapshot and the same now yields
// identical output.
func Overview(entries []Entry, now time.Time) OverviewResult {
	byGroup := make(map[string]Cents)
	byPayer := make(map[string]Cents)
	byMonth := make(map[string]Cents)

	var total Cents
	for _, e := range entries {
		amt := e.Amount.Abs()
		total += amt
		byGroup[groupLabel(e.Group)] += amt
		byPayer[e.Payer] += amt
		byMonth[e.Date.Format("2006-01")] += amt
	}

	monthly := make([]MonthTotal, 0, monthlyBuckets)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthlyBuckets - 1), 0)
	for i := 0; i < monthlyBuckets; i++ {
		label := first.AddDate(0, i, 0).Format("2006-01")
		monthly = append(monthly, MonthTotal{Month: label, Total: byMonth[label]})
	}

	return OverviewResult{
		TotalSpend: total,
		ByGroup:    sortTotals(byGroup),
		ByPayer:    sortTotals(byPayer),
		Monthly:    monthly,
	}
}

// SummaryResult is the compact spend summary for one user.
type SummaryResult struct {
	Total       Cents
	ByGroup     []DimensionTotal
	Recent      []Entry
	CountRecent int
	AvgRecent   Cents
	TopGroup    string
}

// Summarize produces the totals, per-group ranking, and the most recent limit
// entries (newest first) with simple quick stats over that recent window.
func Summarize(entries []Entry, limit int) SummaryResult {
	byGroup := make(map[string]Cents)
	var total Cents
	for _, e := range entries {
		amt := e.Amount.Abs()
		total += amt
		byGroup[groupLabel(e.Group)] += amt
	}

	recent := make([]Entry, len(entries))
	copy(recent, entries)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}

	result := SummaryResult{
		Total:       total,
		ByGroup:     sortTotals(byGroup),
		Recent:      recent,
		CountRecent: len(recent),
	}
	if len(recent) > 0 {
		var sum Cents
		for _, e := range recent {
			sum += e.Amount.Abs()
		}
		// Integer mean with half-up rounding to the cent.
		n := Cents(len(recent))
		avg := sum / n
		if 2*(sum%n) >= n {
			avg++
		}
		result.AvgRecent = avg
	}
	if len(result.ByGroup) > 0 {
		result.TopGroup = result.ByGroup[0].Name
	}
	return result
}

func groupLabel(group string) string {
	if group == "" {
		return UnknownGroup
	}
	return group
}

// sortTotals orders descending by total, with name ascending as the tie-break
// so equal totals still produce deterministic output.
func sortTotals(totals map[string]Cents) []DimensionTotal {
	out := make([]DimensionTotal, 0, len(totals))
	for name, total := range totals {
		out = append(out, DimensionTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}
