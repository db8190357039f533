package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// CreatePayment records that a member settled their share of an expense.
func (s *SQLiteStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.PaidAt == 0 {
		payment.PaidAt = time.Now().Unix()
	}
	if payment.Method == "" {
		payment.Method = "manual"
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, expense_id, username, amount_cents, method, paid_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.ExpenseID, payment.Username,
		payment.AmountCents, payment.Method, payment.PaidAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("payment for expense %s by %s: %w",
			payment.ExpenseID, payment.Username, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// ListPendingShares retrieves the user's unpaid shares on expenses paid by
// someone else, newest first.
func (s *SQLiteStore) ListPendingShares(ctx context.Context, username string) ([]*models.PendingShare, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.id, e.title, e.date, e.paid_by, e.amount_cents, es.share_cents, g.id, g.name
		 FROM expense_splits es
		 JOIN expenses e ON e.id = es.expense_id
		 JOIN groups g ON g.id = e.group_id
		 LEFT JOIN payments p ON p.expense_id = es.expense_id AND p.username = es.username
		 WHERE es.username = ?
		   AND e.paid_by <> ?
		   AND p.id IS NULL
		 ORDER BY e.date DESC, e.created_at DESC`,
		username, username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending shares: %w", err)
	}
	defer rows.Close()

	var shares []*models.PendingShare
	for rows.Next() {
		share := &models.PendingShare{}
		if err := rows.Scan(&share.ExpenseID, &share.Title, &share.Date, &share.PaidBy,
			&share.TotalCents, &share.OwedCents, &share.GroupID, &share.GroupName); err != nil {
			return nil, fmt.Errorf("failed to scan pending share: %w", err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending shares: %w", err)
	}
	return shares, nil
}

// ListPaymentsByUser retrieves the user's payment history, newest first.
func (s *SQLiteStore) ListPaymentsByUser(ctx context.Context, username string, limit int) ([]*models.Payment, error) {
	query := `SELECT p.id, p.expense_id, p.username, p.amount_cents, p.method, p.paid_at, e.title, g.name
		 FROM payments p
		 JOIN expenses e ON e.id = p.expense_id
		 JOIN groups g ON g.id = e.group_id
		 WHERE p.username = ?
		 ORDER BY p.paid_at DESC, p.id`
	args := []any{username}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(&payment.ID, &payment.ExpenseID, &payment.Username,
			&payment.AmountCents, &payment.Method, &payment.PaidAt,
			&payment.ExpenseTitle, &payment.GroupName); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}
