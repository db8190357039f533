package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/splitledger/splitledger/internal/config"
	"github.com/splitledger/splitledger/internal/http"
	"github.com/splitledger/splitledger/internal/service"
	"github.com/splitledger/splitledger/internal/storage/sqlite"
	"github.com/splitledger/splitledger/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.SQLiteDBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.SQLiteDBPath)

	server := http.NewServer(http.Services{
		Users:       service.NewUserService(store),
		Groups:      service.NewGroupService(store),
		Expenses:    service.NewExpenseService(store),
		Settlements: service.NewSettlementService(store),
		Analytics:   service.NewAnalyticsService(store),
		Payments:    service.NewPaymentService(store),
	})

	// Wrap with h2c so HTTP/2 works without TLS behind a plain listener
	handler := h2c.NewHandler(server.Handler(), &http2.Server{})

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := stdhttp.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
