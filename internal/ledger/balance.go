// Package ledger implements the balance, settlement, and spend-analytics
// computations over an expense snapshot. Everything here is pure: functions
// take their full input as parameters, perform no I/O, hold no state, and are
// safe to call concurrently.
package ledger

import "fmt"

// Expense is the minimal expense view needed for balance computation.
// The service layer converts storage models into this shape.
type Expense struct {
	// Payer is the member who paid the full amount.
	Payer string

	// AmountCents is the total amount in integer cents. Always positive.
	AmountCents Cents

	// SplitAmong are the members sharing the amount equally, in split-list
	// order. Remainder cents are assigned one at a time from the front.
	SplitAmong []string
}

// Balance is one member's net position within a group.
// Positive means the member is owed money, negative means they owe.
type Balance struct {
	Member string
	Net    Cents
}

// Shares divides amount into len(members) equal shares in cents, assigning
// the remainder cents one at a time to the first members of the list so the
// shares sum to amount exactly. The returned slice is parallel to members.
func Shares(amount Cents, members []string) []Cents {
	n := Cents(len(members))
	if n == 0 {
		return nil
	}
	per := amount / n
	rem := amount % n
	shares := make([]Cents, len(members))
	for i := range members {
		shares[i] = per
		if Cents(i) < rem {
			shares[i]++
		}
	}
	return shares
}

// ComputeBalances converts a group's expense set into net per-member balances.
//
// For each expense the payer is credited the full amount and every split
// member is debited their exact share, so the balances always sum to zero at
// cent precision. The result is ordered by the group's member list, one entry
// per member including those with a zero net.
//
// An expense whose payer or split member is not in members violates the write
// path's validation and yields ErrDataIntegrity rather than a balance set
// that silently breaks the zero-sum invariant.
func ComputeBalances(members []string, expenses []Expense) ([]Balance, error) {
	index := make(map[string]int, len(members))
	for i, m := range members {
		index[m] = i
	}

	net := make([]Cents, len(members))
	for _, e := range expenses {
		if len(e.SplitAmong) == 0 {
			return nil, fmt.Errorf("%w: expense paid by %q has an empty split", ErrDataIntegrity, e.Payer)
		}
		pi, ok := index[e.Payer]
		if !ok {
			return nil, fmt.Errorf("%w: payer %q is not a group member", ErrDataIntegrity, e.Payer)
		}
		shares := Shares(e.AmountCents, e.SplitAmong)
		net[pi] += e.AmountCents
		for i, m := range e.SplitAmong {
			mi, ok := index[m]
			if !ok {
				return nil, fmt.Errorf("%w: split member %q is not a group member", ErrDataIntegrity, m)
			}
			net[mi] -= shares[i]
		}
	}

	balances := make([]Balance, len(members))
	for i, m := range members {
		balances[i] = Balance{Member: m, Net: net[i]}
	}
	return balances, nil
}
