package models

import (
	"errors"
	"time"
)

// ErrEmptySplit is returned when a split is constructed with no members.
var ErrEmptySplit = errors.New("split must include at least one member")

// SplitKind distinguishes the two split policies.
type SplitKind string

const (
	// SplitEqual divides the amount evenly across every group member.
	SplitEqual SplitKind = "equal"

	// SplitCustom divides the amount evenly across an explicit subset of
	// the group's members.
	SplitCustom SplitKind = "custom"
)

// Split is the policy describing how an expense's amount is divided.
// Both kinds share the same semantics (equal division among Members); the
// kind records whether the member list was the whole group or a chosen subset.
//
// Invariant: Members is non-empty, and every entry belongs to the expense's
// group. The first invariant is enforced at construction; the second is
// checked against the group at write time and re-checked by the balance
// calculator.
type Split struct {
	Kind SplitKind

	// Members share the expense equally, in list order. When the per-share
	// division leaves remainder cents, they are assigned one per member from
	// the front of this list.
	Members []string
}

// NewEqualSplit builds an equal split across the given member list.
func NewEqualSplit(members []string) (Split, error) {
	if len(members) == 0 {
		return Split{}, ErrEmptySplit
	}
	return Split{Kind: SplitEqual, Members: members}, nil
}

// NewCustomSplit builds a split across an explicit member subset.
func NewCustomSplit(members []string) (Split, error) {
	if len(members) == 0 {
		return Split{}, ErrEmptySplit
	}
	return Split{Kind: SplitCustom, Members: members}, nil
}

// Expense represents a single recorded cost within a group.
// Expenses are immutable after creation; corrections are delete + re-add.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// GroupName is the owning group's display name. Populated only by reads
	// that join across groups (recent expenses, summaries); empty otherwise.
	GroupName string

	// Title is the human-readable description (e.g. "Groceries").
	Title string

	// AmountCents is the total expense amount in integer cents. Always positive.
	AmountCents int64

	// Date is the calendar date of the expense (time component unused).
	Date time.Time

	// PaidBy is the username of the member who paid the full amount.
	PaidBy string

	// Split is how the amount is divided among members.
	Split Split

	// Notes is optional free text.
	Notes string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
