package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bankdemo/retailbank/internal/apperrors"
	"github.com/bankdemo/retailbank/internal/models"
	"github.com/bankdemo/retailbank/internal/repository"
	"github.com/bankdemo/retailbank/internal/repository/memory"
)

func newService() (*LedgerService, repository.Storage) {
	storage := memory.NewStorage()
	return NewService(storage), storage
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedger_CreateAccount(t *testing.T) {
	t.Parallel()

	t.Run("create ok", func(t *testing.T) {
		s, _ := newService()

		account, err := s.CreateAccount(t.Context(), CreateAccountParams{
			CustomerID:     "CUST-009",
			AccountNumber:  "ACC-9001",
			InitialBalance: dec("100"),
			Currency:       "USD",
		})

		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, account.ID, "account id should be allocated")
		require.Equal(t, "CUST-009", account.CustomerID)
		require.Equal(t, "ACC-9001", account.AccountNumber)
		require.True(t, account.Balance.Equal(dec("100")))
		require.Equal(t, models.AccountStatusActive, account.Status, "new account should be active")
		require.NotZero(t, account.CreatedAt)
		require.Equal(t, account.CreatedAt, account.UpdatedAt, "both timestamps should be set to creation time")
	})

	t.Run("ids are unique across calls", func(t *testing.T) {
		s, _ := newService()

		seen := make(map[uuid.UUID]bool)
		for range 100 {
			account, err := s.CreateAccount(t.Context(), CreateAccountParams{
				CustomerID:    "CUST-001",
				AccountNumber: "ACC-1001",
			})
			require.NoError(t, err)
			require.False(t, seen[account.ID], "account id %s allocated twice", account.ID)
			seen[account.ID] = true
		}
	})

	t.Run("defaults", func(t *testing.T) {
		s, _ := newService()

		account, err := s.CreateAccount(t.Context(), CreateAccountParams{
			CustomerID:    "CUST-001",
			AccountNumber: "ACC-1001",
		})

		require.NoError(t, err)
		require.True(t, account.Balance.IsZero(), "omitted initial balance should yield zero")
		require.Equal(t, "USD", account.Currency, "currency should default to USD")
	})

	t.Run("missing required fields fail", func(t *testing.T) {
		s, _ := newService()

		_, err := s.CreateAccount(t.Context(), CreateAccountParams{AccountNumber: "ACC-1001"})
		require.ErrorIs(t, err, apperrors.ErrValidation, "missing customerId should fail validation")

		_, err = s.CreateAccount(t.Context(), CreateAccountParams{CustomerID: "CUST-001"})
		require.ErrorIs(t, err, apperrors.ErrValidation, "missing accountNumber should fail validation")
	})
}

func TestLedger_AccountStatus(t *testing.T) {
	t.Parallel()

	t.Run("suspend and activate", func(t *testing.T) {
		s, _ := newService()

		account, err := s.CreateAccount(t.Context(), CreateAccountParams{
			CustomerID:    "CUST-001",
			AccountNumber: "ACC-1001",
		})
		require.NoError(t, err)

		suspended, err := s.SuspendAccount(t.Context(), account.ID)
		require.NoError(t, err)
		require.Equal(t, models.AccountStatusSuspended, suspended.Status)

		activated, err := s.ActivateAccount(t.Context(), account.ID)
		require.NoError(t, err)
		require.Equal(t, models.AccountStatusActive, activated.Status)
	})

	t.Run("missing account fail", func(t *testing.T) {
		s, _ := newService()

		_, err := s.SuspendAccount(t.Context(), uuid.New())
		require.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	})
}

func TestLedger_RecordTransaction(t *testing.T) {
	t.Parallel()

	create := func(t *testing.T, s *LedgerService, balance string) models.Account {
		t.Helper()
		account, err := s.CreateAccount(t.Context(), CreateAccountParams{
			CustomerID:     "CUST-009",
			AccountNumber:  "ACC-9001",
			InitialBalance: dec(balance),
		})
		require.NoError(t, err)
		return account
	}

	t.Run("debit subtracts exactly", func(t *testing.T) {
		s, _ := newService()
		account := create(t, s, "100")

		txn, err := s.RecordTransaction(t.Context(), RecordTransactionParams{
			AccountID: account.ID,
			Amount:    dec("40"),
			Type:      models.TransactionTypeDebit,
		})

		require.NoError(t, err)
		require.Equal(t, models.TransactionStatusCompleted, txn.Status)
		require.Equal(t, account.ID, txn.AccountID)

		got, err := s.GetAccount(t.Context(), account.ID)
		require.NoError(t, err)
		require.True(t, got.Balance.Equal(dec("60")), "100 - 40 should leave 60, got %s", got.Balance)
		require.Equal(t, txn.CreatedAt, got.UpdatedAt, "account updatedAt should be refreshed to the transaction time")
	})

	t.Run("credit adds exactly", func(t *testing.T) {
		s, _ := newService()
		account := create(t, s, "10.25")

		_, err := s.RecordTransaction(t.Context(), RecordTransactionParams{
			AccountID: account.ID,
			Amount:    dec("0.75"),
			Type:      models.TransactionTypeCredit,
		})
		require.NoError(t, err)

		got, err := s.GetAccount(t.Context(), account.ID)
		require.NoError(t, err)
		require.True(t, got.Balance.Equal(dec("11")), "10.25 + 0.75 should be exactly 11, got %s", got.Balance)
	})

	t.Run("debit may drive balance negative", func(t *testing.T) {
		s, _ := newService()
		account := create(t, s, "100")

		_, err := s.RecordTransaction(t.Context(), RecordTransactionParams{
			AccountID: account.ID,
			Amount:    dec("40"),
			Type:      models.TransactionTypeDebit,
		})
		require.NoError(t, err)

		_, err = s.RecordTransaction(t.Context(), RecordTransactionParams{
			AccountID: account.ID,
			Amount:    dec("500"),
			Type:      models.TransactionTypeDebit,
		})
		require.NoError(t, err, "there is no overdraft check")

		got, err := s.GetAccount(t.Context(), account.ID)
		require.NoError(t, err)
		require.True(t, got.Balance.Equal(dec("-440")), "balance should go to -440, got %s", got.Balance)
	})

	t.Run("unknown account leaves state unchanged", func(t *testing.T) {
		s, _ := newService()
		account := create(t, s, "100")

		_, err := s.RecordTransaction(t.Context(), RecordTransactionParams{
			AccountID: uuid.New(),
			Amount:    dec("40"),
			Type:      models.TransactionTypeDebit,
		})
		require.ErrorIs(t, err, apperrors.ErrAccountNotFound)

		got, err := s.GetAccount(t.Context(), account.ID)
		require.NoError(t, err)
		require.True(t, got.Balance.Equal(dec("100")), "existing account should be untouched")

		txns, err := s.ListTransactions(t.Context(), TransactionFilter{})
		require.NoError(t, err)
		require.Empty(t, txns, "no transaction should be stored on failure")
	})

	t.Run("invalid inputs fail", func(t *testing.T) {
		s, _ := newService()
		account := create(t, s, "100")

		_, err := s.RecordTransaction(t.Context(), RecordTransactionParams{
			AccountID: account.ID,
			Amount:    dec("40"),
			Type:      "TRANSFER",
		})
		require.ErrorIs(t, err, apperrors.ErrValidation, "unknown type should fail")

		_, err = s.RecordTransaction(t.Context(), RecordTransactionParams{
			AccountID: account.ID,
			Type:      models.TransactionTypeDebit,
		})
		require.ErrorIs(t, err, apperrors.ErrValidation, "missing amount should fail")
	})

	t.Run("concurrent writers lose no delta", func(t *testing.T) {
		s, _ := newService()
		account := create(t, s, "1000")

		const credits, debits = 40, 25
		var g errgroup.Group
		for range credits {
			g.Go(func() error {
				_, err := s.RecordTransaction(t.Context(), RecordTransactionParams{
					AccountID: account.ID,
					Amount:    dec("3"),
					Type:      models.TransactionTypeCredit,
				})
				return err
			})
		}
		for range debits {
			g.Go(func() error {
				_, err := s.RecordTransaction(t.Context(), RecordTransactionParams{
					AccountID: account.ID,
					Amount:    dec("2"),
					Type:      models.TransactionTypeDebit,
				})
				return err
			})
		}
		require.NoError(t, g.Wait())

		got, err := s.GetAccount(t.Context(), account.ID)
		require.NoError(t, err)

		expected := dec("1000").
			Add(dec("3").Mul(decimal.NewFromInt(credits))).
			Sub(dec("2").Mul(decimal.NewFromInt(debits)))
		require.True(t, got.Balance.Equal(expected),
			"final balance should equal initial plus signed sum of all deltas, want %s got %s", expected, got.Balance)

		txns, err := s.ListTransactions(t.Context(), TransactionFilter{AccountID: account.ID})
		require.NoError(t, err)
		require.Len(t, txns, credits+debits)
	})
}

func TestLedger_ListTransactions(t *testing.T) {
	t.Parallel()

	s, _ := newService()

	mine, err := s.CreateAccount(t.Context(), CreateAccountParams{CustomerID: "CUST-001", AccountNumber: "ACC-1001"})
	require.NoError(t, err)
	alsoMine, err := s.CreateAccount(t.Context(), CreateAccountParams{CustomerID: "CUST-001", AccountNumber: "ACC-1002"})
	require.NoError(t, err)
	other, err := s.CreateAccount(t.Context(), CreateAccountParams{CustomerID: "CUST-002", AccountNumber: "ACC-2001"})
	require.NoError(t, err)

	record := func(accountID uuid.UUID, amount string) models.Transaction {
		txn, err := s.RecordTransaction(t.Context(), RecordTransactionParams{
			AccountID: accountID,
			Amount:    dec(amount),
			Type:      models.TransactionTypeCredit,
		})
		require.NoError(t, err)
		return txn
	}

	first := record(mine.ID, "10")
	second := record(other.ID, "20")
	third := record(alsoMine.ID, "30")

	t.Run("all in insertion order", func(t *testing.T) {
		txns, err := s.ListTransactions(t.Context(), TransactionFilter{})
		require.NoError(t, err)
		require.Len(t, txns, 3)
		require.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID},
			[]uuid.UUID{txns[0].ID, txns[1].ID, txns[2].ID})
	})

	t.Run("by account", func(t *testing.T) {
		txns, err := s.ListTransactions(t.Context(), TransactionFilter{AccountID: mine.ID})
		require.NoError(t, err)
		require.Len(t, txns, 1)
		require.Equal(t, first.ID, txns[0].ID)
	})

	t.Run("by customer resolves accounts", func(t *testing.T) {
		txns, err := s.ListTransactions(t.Context(), TransactionFilter{CustomerID: "CUST-001"})
		require.NoError(t, err)
		require.Len(t, txns, 2, "should return transactions of all the customer's accounts and no others")
		require.Equal(t, first.ID, txns[0].ID)
		require.Equal(t, third.ID, txns[1].ID)
	})

	t.Run("unknown customer matches nothing", func(t *testing.T) {
		txns, err := s.ListTransactions(t.Context(), TransactionFilter{CustomerID: "CUST-404"})
		require.NoError(t, err)
		require.Empty(t, txns)
	})
}
