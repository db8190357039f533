// Package http exposes the service layer as a JSON HTTP API.
// Handlers are thin glue: they parse parameters, call a service, and render
// the result; all domain rules live in the service and ledger packages.
package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/splitledger/splitledger/internal/service"
)

// Server wires the JSON API handlers to the services.
type Server struct {
	users       *service.UserService
	groups      *service.GroupService
	expenses    *service.ExpenseService
	settlements *service.SettlementService
	analytics   *service.AnalyticsService
	payments    *service.PaymentService

	started time.Time
}

// Services bundles the constructor dependencies of the server.
type Services struct {
	Users       *service.UserService
	Groups      *service.GroupService
	Expenses    *service.ExpenseService
	Settlements *service.SettlementService
	Analytics   *service.AnalyticsService
	Payments    *service.PaymentService
}

// NewServer creates a Server over the given services.
func NewServer(svcs Services) *Server {
	return &Server{
		users:       svcs.Users,
		groups:      svcs.Groups,
		expenses:    svcs.Expenses,
		settlements: svcs.Settlements,
		analytics:   svcs.Analytics,
		payments:    svcs.Payments,
		started:     time.Now(),
	}
}

// Handler returns the fully assembled HTTP handler: routes wrapped in
// metrics, CORS, and request logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/create", s.handleCreateUser)
	mux.HandleFunc("POST /api/groups/create", s.handleCreateGroup)
	mux.HandleFunc("GET /api/groups/list", s.handleListGroups)
	mux.HandleFunc("POST /api/groups/add-member", s.handleAddMember)

	mux.HandleFunc("POST /api/expenses/create", s.handleCreateExpense)
	mux.HandleFunc("GET /api/expenses/list", s.handleListExpenses)
	mux.HandleFunc("POST /api/expenses/delete", s.handleDeleteExpense)
	mux.HandleFunc("GET /api/expenses/recent", s.handleRecentExpenses)

	mux.HandleFunc("GET /api/payments/pending", s.handlePendingPayments)
	mux.HandleFunc("POST /api/payments/pay", s.handlePay)
	mux.HandleFunc("GET /api/payments/history", s.handlePaymentHistory)

	mux.HandleFunc("GET /api/settlements/suggest", s.handleSettlementSuggest)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/analytics/overview", s.handleAnalyticsOverview)

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(corsMiddleware(metricsMiddleware(mux)))
}

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"uptime": time.Since(s.started).String(),
	})
}
