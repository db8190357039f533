package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle_TwoDebtorsOneCreditor(t *testing.T) {
	balances := []Balance{
		{Member: "A", Net: 2000},
		{Member: "B", Net: -1000},
		{Member: "C", Net: -1000},
	}

	transfers, err := Settle(balances)
	require.NoError(t, err)

	// B and C tie at 10.00 owed; B comes first in member order.
	want := []Transfer{
		{From: "B", To: "A", Cents: 1000},
		{From: "C", To: "A", Cents: 1000},
	}
	assert.Equal(t, want, transfers)
}

func TestSettle_AllZeroBalances(t *testing.T) {
	balances := []Balance{
		{Member: "A", Net: 0},
		{Member: "B", Net: 0},
	}

	transfers, err := Settle(balances)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestSettle_SumMismatchIsIntegrityError(t *testing.T) {
	balances := []Balance{
		{Member: "A", Net: 100},
		{Member: "B", Net: -99},
	}

	_, err := Settle(balances)
	require.ErrorIs(t, err, ErrDataIntegrity)
}

func TestSettle_ZeroesEveryBalance(t *testing.T) {
	balances := []Balance{
		{Member: "A", Net: 5234},
		{Member: "B", Net: -1200},
		{Member: "C", Net: -34},
		{Member: "D", Net: -4000},
		{Member: "E", Net: 0},
	}

	transfers, err := Settle(balances)
	require.NoError(t, err)

	net := map[string]Cents{}
	for _, b := range balances {
		net[b.Member] = b.Net
	}
	for _, tr := range transfers {
		assert.Greater(t, tr.Cents, Cents(0), "transfers must be strictly positive")
		net[tr.From] += tr.Cents
		net[tr.To] -= tr.Cents
	}
	for member, remaining := range net {
		assert.Equal(t, Cents(0), remaining, "member %s not settled", member)
	}
}

func TestSettle_NeverExceedsNMinusOneTransfers(t *testing.T) {
	balances := []Balance{
		{Member: "A", Net: 300},
		{Member: "B", Net: 700},
		{Member: "C", Net: -100},
		{Member: "D", Net: -250},
		{Member: "E", Net: -650},
		{Member: "F", Net: 0},
	}

	transfers, err := Settle(balances)
	require.NoError(t, err)

	nonZero := 0
	for _, b := range balances {
		if b.Net != 0 {
			nonZero++
		}
	}
	assert.LessOrEqual(t, len(transfers), nonZero-1)
}

func TestSettle_Deterministic(t *testing.T) {
	balances := []Balance{
		{Member: "A", Net: 1500},
		{Member: "B", Net: 1500},
		{Member: "C", Net: -1500},
		{Member: "D", Net: -1500},
	}

	first, err := Settle(balances)
	require.NoError(t, err)
	second, err := Settle(balances)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must yield identical output")
}
