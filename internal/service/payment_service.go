package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// paymentHistoryLimit caps the payment history listing.
const paymentHistoryLimit = 20

// PendingPayments is a user's outstanding shares with their total.
type PendingPayments struct {
	Pending    []*models.PendingShare
	TotalCents int64
}

// PaymentService tracks per-share settle-ups of individual expenses.
type PaymentService struct {
	store storage.Store
}

// NewPaymentService creates a new PaymentService with the given storage backend.
func NewPaymentService(store storage.Store) *PaymentService {
	return &PaymentService{store: store}
}

// Pending retrieves the user's unpaid shares and their total.
func (s *PaymentService) Pending(ctx context.Context, username string) (*PendingPayments, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrValidation)
	}
	if _, err := s.store.GetUser(ctx, username); err != nil {
		return nil, err
	}

	shares, err := s.store.ListPendingShares(ctx, username)
	if err != nil {
		return nil, err
	}
	result := &PendingPayments{Pending: shares}
	for _, share := range shares {
		result.TotalCents += share.OwedCents
	}
	return result, nil
}

// Pay records that the user settled their share of an expense. The amount is
// the share derived from the stored split, not caller input.
func (s *PaymentService) Pay(ctx context.Context, expenseID, username string) (*models.Payment, error) {
	username = strings.TrimSpace(username)
	if expenseID == "" || username == "" {
		return nil, fmt.Errorf("%w: expense id and username required", ErrValidation)
	}

	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if username == expense.PaidBy {
		return nil, fmt.Errorf("%w: %q paid this expense and owes nothing on it", ErrValidation, username)
	}

	shares := ledger.Shares(ledger.Cents(expense.AmountCents), expense.Split.Members)
	var owed int64
	found := false
	for i, member := range expense.Split.Members {
		if member == username {
			owed = int64(shares[i])
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q has no share of expense %q", ErrValidation, username, expense.Title)
	}

	payment := &models.Payment{ExpenseID: expenseID, Username: username, AmountCents: owed}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	slog.Info("Payment recorded",
		"payment_id", payment.ID,
		"expense_id", expenseID,
		"username", username,
		"amount_cents", owed,
	)
	return payment, nil
}

// History retrieves the user's most recent payments.
func (s *PaymentService) History(ctx context.Context, username string) ([]*models.Payment, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrValidation)
	}
	if _, err := s.store.GetUser(ctx, username); err != nil {
		return nil, err
	}
	return s.store.ListPaymentsByUser(ctx, username, paymentHistoryLimit)
}
