package models

// Payment records that a member settled their share of one expense.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// ExpenseID is the expense whose share is being settled.
	ExpenseID string

	// Username is the member paying their share.
	Username string

	// AmountCents is the paid amount in integer cents.
	AmountCents int64

	// Method describes how the payment was made (e.g. "manual").
	Method string

	// PaidAt is the Unix timestamp when the payment was recorded.
	PaidAt int64

	// ExpenseTitle and GroupName are populated by history reads that join
	// back to the expense and group; empty otherwise.
	ExpenseTitle string
	GroupName    string
}

// PendingShare is one unpaid share owed by a member on someone else's expense.
type PendingShare struct {
	ExpenseID  string
	Title      string
	Date       string
	PaidBy     string
	TotalCents int64 // full expense amount
	OwedCents  int64 // this member's unpaid share
	GroupID    string
	GroupName  string
}
