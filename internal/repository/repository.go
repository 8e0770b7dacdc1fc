package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/bankdemo/retailbank/internal/models"
)

// Account repository interface
type AccountRepo interface {
	// Create account
	// If an account with the same id exists already has to return apperrors.ErrAccountAlreadyExists
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// Get account by its id
	// If account not found must return apperrors.ErrAccountNotFound
	GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error)

	// List accounts in insertion order
	// If customerID is not empty only that customer's accounts are returned
	ListAccounts(ctx context.Context, customerID string) ([]models.Account, error)

	// Replace the stored account with the same id
	// If account not found must return apperrors.ErrAccountNotFound
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)
}

// Transaction repository interface
type TransactionRepo interface {
	// Create transaction
	CreateTransaction(ctx context.Context, txn models.Transaction) (models.Transaction, error)

	// Get transaction by its id
	// If transaction not found must return apperrors.ErrTransactionNotFound
	GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error)

	// List transactions in insertion order, narrowed by filter
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error)
}

// TransactionFilter narrows ListTransactions.
// Nil AccountIDs means no account filtering. An empty non-nil slice matches nothing.
type TransactionFilter struct {
	AccountIDs []uuid.UUID
}

// Log entry repository interface
type LogRepo interface {
	// Store entry. The repository assigns the sequential id and returns the stored entry
	CreateEntry(ctx context.Context, entry models.LogEntry) (models.LogEntry, error)

	// Get entry by its id
	// If entry not found must return apperrors.ErrLogEntryNotFound
	GetEntry(ctx context.Context, id string) (models.LogEntry, error)

	// List entries matching the filter, newest first
	ListEntries(ctx context.Context, filter LogFilter) ([]models.LogEntry, error)
}

// LogFilter narrows ListEntries. Zero values mean "no filter".
// Limit caps the number of most recent entries considered (defaults to 100).
type LogFilter struct {
	Service string
	Level   string
	Limit   int
}

// Storage aggregates all repositories
type Storage interface {
	Accounts() AccountRepo
	Transactions() TransactionRepo
	Logs() LogRepo

	// InTx runs fn over a storage view with exclusive write access.
	// Concurrent InTx calls are serialized, which is what makes the
	// read-modify-write on an account balance lose no updates.
	InTx(ctx context.Context, fn func(Storage) error) error
}
