package ledger

import "fmt"

// Transfer is a directed payment instruction: From pays To the given amount.
type Transfer struct {
	From  string
	To    string
	Cents Cents
}

// party is one side of the settlement with its remaining unmatched amount.
type party struct {
	member    string
	remaining Cents
}

// Settle produces the ordered transfer list that zeroes every balance.
//
// It greedily matches the largest remaining creditor with the largest
// remaining debtor, which settles n non-zero parties in at most n-1 transfers.
// The heuristic is near-minimal rather than provably minimal for every
// balance distribution (exact minimization is NP-hard), but it never needs
// more than n-1 transfers.
//
// Ties on equal remaining amounts break toward the party appearing earlier in
// balances, so for a fixed input the output is exactly reproducible.
//
// All balances zero is the normal "nothing to settle" case and returns an
// empty list. A creditor/debtor sum mismatch means the input was not produced
// by ComputeBalances over consistent data and yields ErrDataIntegrity.
func Settle(balances []Balance) ([]Transfer, error) {
	var creditors, debtors []party
	var creditSum, debitSum Cents
	for _, b := range balances {
		switch {
		case b.Net > 0:
			creditors = append(creditors, party{member: b.Member, remaining: b.Net})
			creditSum += b.Net
		case b.Net < 0:
			debtors = append(debtors, party{member: b.Member, remaining: -b.Net})
			debitSum += -b.Net
		}
	}

	if creditSum != debitSum {
		return nil, fmt.Errorf("%w: creditor total %d does not match debtor total %d cents",
			ErrDataIntegrity, creditSum, debitSum)
	}

	var transfers []Transfer
	for len(creditors) > 0 && len(debtors) > 0 {
		ci := largest(creditors)
		di := largest(debtors)

		t := creditors[ci].remaining
		if debtors[di].remaining < t {
			t = debtors[di].remaining
		}
		transfers = append(transfers, Transfer{
			From:  debtors[di].member,
			To:    creditors[ci].member,
			Cents: t,
		})

		creditors[ci].remaining -= t
		debtors[di].remaining -= t
		if creditors[ci].remaining == 0 {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
		if debtors[di].remaining == 0 {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}
	}
	return transfers, nil
}

// largest returns the index of the party with the greatest remaining amount.
// Strict comparison keeps the earliest party on ties.
func largest(parties []party) int {
	best := 0
	for i := 1; i < len(parties); i++ {
		if parties[i].remaining > parties[best].remaining {
			best = i
		}
	}
	return best
}
