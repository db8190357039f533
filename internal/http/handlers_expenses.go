package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/service"
)

// dateLayout is the wire form of expense dates.
const dateLayout = "2006-01-02"

type splitRequest struct {
	Type    string   `json:"type"`
	Members []string `json:"members"`
}

type expenseResponse struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	PaidBy string  `json:"paidBy"`
	Note   string  `json:"note"`
	Group  string  `json:"group,omitempty"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	return expenseResponse{
		ID:     e.ID,
		Title:  e.Title,
		Amount: ledger.Cents(e.AmountCents).Amount(),
		Date:   e.Date.Format(dateLayout),
		PaidBy: e.PaidBy,
		Note:   e.Notes,
		Group:  e.GroupName,
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GroupID string       `json:"groupId"`
		Title   string       `json:"title"`
		Amount  float64      `json:"amount"`
		Date    string       `json:"date"`
		PaidBy  string       `json:"paidBy"`
		Notes   string       `json:"notes"`
		Split   splitRequest `json:"split"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: date must be in YYYY-MM-DD form", service.ErrValidation))
		return
	}

	kind := models.SplitKind(req.Split.Type)
	if req.Split.Type == "" {
		kind = models.SplitEqual
	}

	expense, err := s.expenses.Create(r.Context(), service.CreateExpenseInput{
		GroupID:      req.GroupID,
		Title:        req.Title,
		AmountCents:  int64(ledger.CentsFromFloat(req.Amount)),
		Date:         date,
		PaidBy:       req.PaidBy,
		Notes:        req.Notes,
		SplitKind:    kind,
		SplitMembers: req.Split.Members,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Expense created",
		"id":       expense.ID,
		"title":    expense.Title,
		"amount":   ledger.Cents(expense.AmountCents).Amount(),
		"group_id": expense.GroupID,
	})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("groupId")
	expenses, err := s.expenses.ListForGroup(r.Context(), groupID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseResponse(e)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExpenseID string `json:"expenseId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.expenses.Delete(r.Context(), req.ExpenseID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}

func (s *Server) handleRecentExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.Recent(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseResponse(e)
	}
	writeJSON(w, http.StatusOK, out)
}
