package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bankdemo/retailbank/internal/apperrors"
	"github.com/bankdemo/retailbank/internal/models"
	"github.com/bankdemo/retailbank/internal/repository"
)

// LedgerService owns accounts and transactions and enforces the
// balance-update contract: recording a transaction mutates the referenced
// account's balance and persists the transaction in one storage
// transaction, so concurrent writers cannot lose a balance delta.
type LedgerService struct {
	storage repository.Storage

	// injectable for tests
	now func() time.Time
}

func NewService(storage repository.Storage) *LedgerService {
	return &LedgerService{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type CreateAccountParams struct {
	CustomerID     string
	AccountNumber  string
	InitialBalance decimal.Decimal
	Currency       string
}

func (s *LedgerService) CreateAccount(ctx context.Context, p CreateAccountParams) (models.Account, error) {
	var account models.Account

	if p.CustomerID == "" {
		return account, fmt.Errorf("%w: customerId is required", apperrors.ErrValidation)
	}
	if p.AccountNumber == "" {
		return account, fmt.Errorf("%w: accountNumber is required", apperrors.ErrValidation)
	}

	currency := p.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	now := s.now()
	account = models.Account{
		ID:            uuid.New(),
		CustomerID:    p.CustomerID,
		AccountNumber: p.AccountNumber,
		Balance:       p.InitialBalance,
		Currency:      currency,
		Status:        models.AccountStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	account, err := s.storage.Accounts().CreateAccount(ctx, account)
	if err != nil {
		return account, fmt.Errorf("can't create account. Err: %w", err)
	}

	return account, nil
}

func (s *LedgerService) GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error) {
	return s.storage.Accounts().GetAccount(ctx, id)
}

// ListAccounts returns accounts in insertion order.
// Empty customerID means all accounts.
func (s *LedgerService) ListAccounts(ctx context.Context, customerID string) ([]models.Account, error) {
	return s.storage.Accounts().ListAccounts(ctx, customerID)
}

func (s *LedgerService) SuspendAccount(ctx context.Context, id uuid.UUID) (models.Account, error) {
	return s.setAccountStatus(ctx, id, models.AccountStatusSuspended)
}

func (s *LedgerService) ActivateAccount(ctx context.Context, id uuid.UUID) (models.Account, error) {
	return s.setAccountStatus(ctx, id, models.AccountStatusActive)
}

func (s *LedgerService) setAccountStatus(ctx context.Context, id uuid.UUID, status string) (models.Account, error) {
	var account models.Account

	err := s.storage.InTx(ctx, func(storage repository.Storage) error {
		var err error
		account, err = storage.Accounts().GetAccount(ctx, id)
		if err != nil {
			return err
		}

		account.Status = status
		account.UpdatedAt = s.now()
		account, err = storage.Accounts().UpdateAccount(ctx, account)
		return err
	})

	return account, err
}

type RecordTransactionParams struct {
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Type        string
	Description string
}

// RecordTransaction applies the transaction's effect to the account balance
// and stores the transaction. A DEBIT subtracts the amount, a CREDIT adds
// it. There is no overdraft check: a debit may drive the balance negative,
// which is accepted behavior. Both mutations happen inside one InTx call.
func (s *LedgerService) RecordTransaction(ctx context.Context, p RecordTransactionParams) (models.Transaction, error) {
	var txn models.Transaction

	if p.Type != models.TransactionTypeDebit && p.Type != models.TransactionTypeCredit {
		return txn, fmt.Errorf("%w: type must be DEBIT or CREDIT", apperrors.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return txn, fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
	}

	err := s.storage.InTx(ctx, func(storage repository.Storage) error {
		account, err := storage.Accounts().GetAccount(ctx, p.AccountID)
		if err != nil {
			return err
		}

		now := s.now()
		txn = models.Transaction{
			ID:          uuid.New(),
			AccountID:   account.ID,
			Amount:      p.Amount,
			Type:        p.Type,
			Description: p.Description,
			Status:      models.TransactionStatusCompleted,
			CreatedAt:   now,
		}

		switch p.Type {
		case models.TransactionTypeDebit:
			account.Balance = account.Balance.Sub(p.Amount)
		case models.TransactionTypeCredit:
			account.Balance = account.Balance.Add(p.Amount)
		}
		account.UpdatedAt = now

		if _, err := storage.Accounts().UpdateAccount(ctx, account); err != nil {
			return err
		}

		_, err = storage.Transactions().CreateTransaction(ctx, txn)
		return err
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return txn, nil
}

func (s *LedgerService) GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	return s.storage.Transactions().GetTransaction(ctx, id)
}

// TransactionFilter narrows ListTransactions. AccountID wins over
// CustomerID when both are set, mirroring the API contract.
type TransactionFilter struct {
	AccountID  uuid.UUID
	CustomerID string
}

// ListTransactions returns transactions in insertion order. A customer
// filter is resolved by listing the customer's accounts first and keeping
// transactions whose account is among them.
func (s *LedgerService) ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	repoFilter := repository.TransactionFilter{}

	switch {
	case filter.AccountID != uuid.Nil:
		repoFilter.AccountIDs = []uuid.UUID{filter.AccountID}
	case filter.CustomerID != "":
		accounts, err := s.storage.Accounts().ListAccounts(ctx, filter.CustomerID)
		if err != nil {
			return nil, err
		}
		repoFilter.AccountIDs = make([]uuid.UUID, 0, len(accounts))
		for _, account := range accounts {
			repoFilter.AccountIDs = append(repoFilter.AccountIDs, account.ID)
		}
	}

	return s.storage.Transactions().ListTransactions(ctx, repoFilter)
}
