package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bankdemo/retailbank/internal/handlers"
	"github.com/bankdemo/retailbank/internal/logger"
	"github.com/bankdemo/retailbank/internal/repository/memory"
	"github.com/bankdemo/retailbank/internal/seed"
	"github.com/bankdemo/retailbank/internal/service/compliance"
	"github.com/bankdemo/retailbank/internal/service/creditscore"
	"github.com/bankdemo/retailbank/internal/service/fraud"
	"github.com/bankdemo/retailbank/internal/service/ledger"
	"github.com/bankdemo/retailbank/internal/service/logstore"
)

type ServerApp struct {
	ListenAddr string
	Handler    http.Handler
}

func NewServerApp(ctx context.Context, c *Config) (*ServerApp, error) {
	// Initialize logger
	logger, err := logger.New(c.Environment, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while initializing logger: %w", err)
	}

	// Initialize repositories
	storage := memory.NewStorage()

	// Initialize services
	ledgerService := ledger.NewService(storage)
	fraudService := fraud.NewService()
	creditService := creditscore.NewService()
	complianceService := compliance.NewService()
	logService := logstore.NewService(storage, logger)

	if c.SeedDemo {
		accounts := seed.DemoAccounts()
		for _, params := range accounts {
			if _, err := ledgerService.CreateAccount(ctx, params); err != nil {
				return nil, fmt.Errorf("error while seeding demo account %s. Err: %w", params.AccountNumber, err)
			}
		}
		logger.Info("Demo accounts created", "count", len(accounts))
	}

	mux := handlers.NewRouter(
		handlers.RouterConfig{
			ServiceName: c.ServiceName,
			Environment: c.Environment,
		},
		ledgerService,
		fraudService,
		creditService,
		complianceService,
		logService,
		logger,
	)

	return &ServerApp{
		ListenAddr: c.ListenAddr,
		Handler:    mux,
	}, nil
}

// Run starts http server and closes gracefully on context cancellation
func (s *ServerApp) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.ListenAddr,
		Handler: s.Handler,
	}

	idleConnsClosed := make(chan struct{})
	srvCtx, srvCtxCancel := context.WithCancel(ctx)
	defer srvCtxCancel()

	go func() {
		<-srvCtx.Done()

		timeoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(timeoutCtx); err == context.DeadlineExceeded {
			slog.Error("HTTP server shutdown timeout exceeded, forcing shutdown...")
		}
		slog.Info("HTTP server stopped")
		close(idleConnsClosed)
	}()

	// Listen and serve until context is cancelled; then close gracefully connections
	slog.Info("Starting server", "address", s.ListenAddr)
	err := httpServer.ListenAndServe()
	srvCtxCancel()
	<-idleConnsClosed

	return err
}
