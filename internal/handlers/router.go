package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/bankdemo/retailbank/internal/handlers/middleware"
	"github.com/bankdemo/retailbank/internal/logger"
	"github.com/bankdemo/retailbank/internal/models"
	"github.com/bankdemo/retailbank/internal/repository"
	"github.com/bankdemo/retailbank/internal/service/ledger"
	"github.com/bankdemo/retailbank/internal/service/logstore"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

// RouterConfig carries the identity reported by the health endpoints
type RouterConfig struct {
	ServiceName string
	Environment string
}

func NewRouter(
	cfg RouterConfig,
	ledgerService ledgerService,
	fraudService fraudService,
	creditService creditScoreService,
	complianceService complianceService,
	logService logService,
	logger logger.Logger,
) http.Handler {
	api := http.NewServeMux()

	api.Handle("POST /accounts", handleCreateAccount(ledgerService, logger))
	api.Handle("GET /accounts", handleListAccounts(ledgerService, logger))
	api.Handle("GET /accounts/{accountID}", handleGetAccount(ledgerService, logger))
	api.Handle("PUT /accounts/{accountID}/suspend", handleSuspendAccount(ledgerService, logger))
	api.Handle("PUT /accounts/{accountID}/activate", handleActivateAccount(ledgerService, logger))

	api.Handle("POST /transactions", handleRecordTransaction(ledgerService, logger))
	api.Handle("GET /transactions", handleListTransactions(ledgerService, logger))
	api.Handle("GET /transactions/{transactionID}", handleGetTransaction(ledgerService, logger))

	api.Handle("POST /fraud/check", handleFraudCheck(fraudService))
	api.Handle("GET /fraud/model", handleFraudModelInfo(fraudService))

	api.Handle("POST /credit/score", handleCreditScore(creditService))
	api.Handle("GET /credit/score/{applicantID}", handleGetCreditScore(creditService))

	api.Handle("GET /compliance/policies", handleListPolicies(complianceService))
	api.Handle("POST /compliance/check", handleComplianceCheck(complianceService))

	api.Handle("POST /logs", handleIngestLog(logService, logger))
	api.Handle("GET /logs", handleListLogs(logService, logger))
	api.Handle("GET /logs/{logID}", handleGetLog(logService, logger))

	root := http.NewServeMux()
	root.Handle("/api/v1/", http.StripPrefix("/api/v1", api))
	root.Handle("GET /health", handleHealth(cfg.ServiceName, cfg.Environment))
	root.Handle("GET /ready", handleHealth(cfg.ServiceName, cfg.Environment))

	handler := chain(root,
		middleware.LoggerMiddleware(logger),
	)

	return handler
}

type ledgerService interface {
	// Create account with ACTIVE status and fresh unique id
	// Has to return apperrors.ErrValidation if a required field is missing
	CreateAccount(ctx context.Context, p ledger.CreateAccountParams) (models.Account, error)

	// Get account by id
	// Has to return apperrors.ErrAccountNotFound if absent
	GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error)

	// List accounts in insertion order, optionally narrowed by customer
	ListAccounts(ctx context.Context, customerID string) ([]models.Account, error)

	SuspendAccount(ctx context.Context, id uuid.UUID) (models.Account, error)
	ActivateAccount(ctx context.Context, id uuid.UUID) (models.Account, error)

	// Apply the transaction to the account balance and store it, atomically
	RecordTransaction(ctx context.Context, p ledger.RecordTransactionParams) (models.Transaction, error)

	GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error)
	ListTransactions(ctx context.Context, filter ledger.TransactionFilter) ([]models.Transaction, error)
}

type fraudService interface {
	Check(check models.FraudCheck) models.FraudResult
	ModelInfo() models.FraudModelInfo
}

type creditScoreService interface {
	Score(app models.CreditApplication) models.CreditScore
	DemoApplication(applicantID string) models.CreditApplication
}

type complianceService interface {
	Policies() []models.Policy
	Check(check models.ComplianceCheck) models.ComplianceDecision
}

type logService interface {
	Ingest(ctx context.Context, p logstore.IngestParams) (models.LogEntry, error)
	List(ctx context.Context, filter repository.LogFilter) ([]models.LogEntry, error)
	Get(ctx context.Context, id string) (models.LogEntry, error)
}
