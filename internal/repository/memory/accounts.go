package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/bankdemo/retailbank/internal/apperrors"
	"github.com/bankdemo/retailbank/internal/models"
)

type AccountRepo struct {
	storage *Storage
}

func (r *AccountRepo) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	unlock := r.storage.lock()
	defer unlock()

	st := r.storage.store
	if _, ok := st.accounts[account.ID]; ok {
		return models.Account{}, apperrors.ErrAccountAlreadyExists
	}

	st.accounts[account.ID] = account
	st.accountOrder = append(st.accountOrder, account.ID)

	return account, nil
}

func (r *AccountRepo) GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error) {
	unlock := r.storage.rlock()
	defer unlock()

	account, ok := r.storage.store.accounts[id]
	if !ok {
		return models.Account{}, apperrors.ErrAccountNotFound
	}

	return account, nil
}

func (r *AccountRepo) ListAccounts(ctx context.Context, customerID string) ([]models.Account, error) {
	unlock := r.storage.rlock()
	defer unlock()

	st := r.storage.store
	accounts := make([]models.Account, 0, len(st.accountOrder))
	for _, id := range st.accountOrder {
		account := st.accounts[id]
		if customerID != "" && account.CustomerID != customerID {
			continue
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (r *AccountRepo) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	unlock := r.storage.lock()
	defer unlock()

	st := r.storage.store
	if _, ok := st.accounts[account.ID]; !ok {
		return models.Account{}, apperrors.ErrAccountNotFound
	}

	st.accounts[account.ID] = account

	return account, nil
}
