package http

import (
	"net/http"

	"github.com/splitledger/splitledger/internal/ledger"
)

func (s *Server) handlePendingPayments(w http.ResponseWriter, r *http.Request) {
	result, err := s.payments.Pending(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	type pendingResponse struct {
		ExpenseID   string  `json:"expense_id"`
		Title       string  `json:"title"`
		Date        string  `json:"date"`
		PaidBy      string  `json:"paid_by"`
		TotalAmount float64 `json:"total_amount"`
		AmountOwed  float64 `json:"amount_owed"`
		GroupID     string  `json:"group_id"`
		GroupName   string  `json:"group_name"`
	}
	pending := make([]pendingResponse, len(result.Pending))
	for i, p := range result.Pending {
		pending[i] = pendingResponse{
			ExpenseID:   p.ExpenseID,
			Title:       p.Title,
			Date:        p.Date,
			PaidBy:      p.PaidBy,
			TotalAmount: ledger.Cents(p.TotalCents).Amount(),
			AmountOwed:  ledger.Cents(p.OwedCents).Amount(),
			GroupID:     p.GroupID,
			GroupName:   p.GroupName,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pending":    pending,
		"total_owed": ledger.Cents(result.TotalCents).Amount(),
	})
}

func (s *Server) handlePay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExpenseID string `json:"expenseId"`
		Username  string `json:"username"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	payment, err := s.payments.Pay(r.Context(), req.ExpenseID, req.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Payment recorded",
		"id":      payment.ID,
		"amount":  ledger.Cents(payment.AmountCents).Amount(),
	})
}

func (s *Server) handlePaymentHistory(w http.ResponseWriter, r *http.Request) {
	payments, err := s.payments.History(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	type paymentResponse struct {
		ID            string  `json:"id"`
		Amount        float64 `json:"amount"`
		PaidAt        int64   `json:"paid_at"`
		PaymentMethod string  `json:"payment_method"`
		ExpenseTitle  string  `json:"expense_title"`
		GroupName     string  `json:"group_name"`
	}
	out := make([]paymentResponse, len(payments))
	for i, p := range payments {
		out[i] = paymentResponse{
			ID:            p.ID,
			Amount:        ledger.Cents(p.AmountCents).Amount(),
			PaidAt:        p.PaidAt,
			PaymentMethod: p.Method,
			ExpenseTitle:  p.ExpenseTitle,
			GroupName:     p.GroupName,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
