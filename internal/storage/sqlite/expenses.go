package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// dateLayout is the storage form of expense dates.
const dateLayout = "2006-01-02"

// CreateExpense persists a new expense together with its split rows.
// Split rows carry each member's exact share so the pending-payments reads
// never have to re-derive them.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, title, amount_cents, date, paid_by, split_kind, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.Title, expense.AmountCents,
		expense.Date.Format(dateLayout), expense.PaidBy, string(expense.Split.Kind),
		expense.Notes, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	shares := ledger.Shares(ledger.Cents(expense.AmountCents), expense.Split.Members)
	for i, member := range expense.Split.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, username, share_cents, position) VALUES (?, ?, ?, ?)",
			expense.ID, member, int64(shares[i]), i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including its split member list.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var date, kind string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, title, amount_cents, date, paid_by, split_kind, notes, created_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.GroupID, &expense.Title, &expense.AmountCents,
		&date, &expense.PaidBy, &kind, &expense.Notes, &expense.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if expense.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("failed to parse expense date: %w", err)
	}
	expense.Split.Kind = models.SplitKind(kind)
	if expense.Split.Members, err = s.splitMembers(ctx, expenseID); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpensesByGroup retrieves all expenses of a group, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, title, amount_cents, date, paid_by, split_kind, notes, created_at
		 FROM expenses WHERE group_id = ?
		 ORDER BY date DESC, created_at DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by group: %w", err)
	}
	defer rows.Close()
	return s.collectExpenses(ctx, rows, false)
}

// ListExpensesByUser retrieves expenses across the user's groups, newest first,
// with GroupName populated.
func (s *SQLiteStore) ListExpensesByUser(ctx context.Context, username string, limit int) ([]*models.Expense, error) {
	query := `SELECT e.id, e.group_id, e.title, e.amount_cents, e.date, e.paid_by, e.split_kind, e.notes, e.created_at, g.name
		 FROM expenses e
		 JOIN groups g ON g.id = e.group_id
		 JOIN group_members gm ON gm.group_id = g.id
		 WHERE gm.username = ?
		 ORDER BY e.date DESC, e.created_at DESC`
	args := []any{username}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by user: %w", err)
	}
	defer rows.Close()
	return s.collectExpenses(ctx, rows, true)
}

// DeleteExpense removes an expense; split rows and payments cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	return nil
}

// collectExpenses scans expense rows and attaches each expense's split members.
func (s *SQLiteStore) collectExpenses(ctx context.Context, rows *sql.Rows, withGroupName bool) ([]*models.Expense, error) {
	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var date, kind string
		dest := []any{&expense.ID, &expense.GroupID, &expense.Title, &expense.AmountCents,
			&date, &expense.PaidBy, &kind, &expense.Notes, &expense.CreatedAt}
		if withGroupName {
			dest = append(dest, &expense.GroupName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse expense date: %w", err)
		}
		expense.Date = parsed
		expense.Split.Kind = models.SplitKind(kind)
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		members, err := s.splitMembers(ctx, expense.ID)
		if err != nil {
			return nil, err
		}
		expense.Split.Members = members
	}
	return expenses, nil
}

// splitMembers returns an expense's split member list in split order.
func (s *SQLiteStore) splitMembers(ctx context.Context, expenseID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT username FROM expense_splits WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		members = append(members, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}
	return members, nil
}
