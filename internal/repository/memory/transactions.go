package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/bankdemo/retailbank/internal/apperrors"
	"github.com/bankdemo/retailbank/internal/models"
	"github.com/bankdemo/retailbank/internal/repository"
)

type TransactionRepo struct {
	storage *Storage
}

func (r *TransactionRepo) CreateTransaction(ctx context.Context, txn models.Transaction) (models.Transaction, error) {
	unlock := r.storage.lock()
	defer unlock()

	st := r.storage.store
	st.transactions[txn.ID] = txn
	st.transactionOrder = append(st.transactionOrder, txn.ID)

	return txn, nil
}

func (r *TransactionRepo) GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	unlock := r.storage.rlock()
	defer unlock()

	txn, ok := r.storage.store.transactions[id]
	if !ok {
		return models.Transaction{}, apperrors.ErrTransactionNotFound
	}

	return txn, nil
}

func (r *TransactionRepo) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]models.Transaction, error) {
	unlock := r.storage.rlock()
	defer unlock()

	var wanted map[uuid.UUID]struct{}
	if filter.AccountIDs != nil {
		wanted = make(map[uuid.UUID]struct{}, len(filter.AccountIDs))
		for _, id := range filter.AccountIDs {
			wanted[id] = struct{}{}
		}
	}

	st := r.storage.store
	txns := make([]models.Transaction, 0, len(st.transactionOrder))
	for _, id := range st.transactionOrder {
		txn := st.transactions[id]
		if wanted != nil {
			if _, ok := wanted[txn.AccountID]; !ok {
				continue
			}
		}
		txns = append(txns, txn)
	}

	return txns, nil
}
