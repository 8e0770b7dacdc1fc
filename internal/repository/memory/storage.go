package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bankdemo/retailbank/internal/models"
	"github.com/bankdemo/retailbank/internal/repository"
)

// store is the single owner of all in-memory state. Maps give O(1) lookup,
// the order slices keep listings in insertion order. Everything is guarded
// by mu; values are copied on the way in and out so callers never hold
// pointers into the store.
type store struct {
	mu sync.RWMutex

	accounts     map[uuid.UUID]models.Account
	accountOrder []uuid.UUID

	transactions     map[uuid.UUID]models.Transaction
	transactionOrder []uuid.UUID

	logs     map[string]models.LogEntry
	logOrder []string
	logSeq   int
}

// Storage implements repository.Storage over a process-local store.
// State lives as long as the process and is discarded on restart.
type Storage struct {
	store *store

	// exclusive is set on the view handed to an InTx callback: the write
	// lock is already held, so repo methods must not lock again
	exclusive bool
}

func NewStorage() *Storage {
	return &Storage{
		store: &store{
			accounts:     make(map[uuid.UUID]models.Account),
			transactions: make(map[uuid.UUID]models.Transaction),
			logs:         make(map[string]models.LogEntry),
		},
	}
}

func (s *Storage) Accounts() repository.AccountRepo {
	return &AccountRepo{storage: s}
}

func (s *Storage) Transactions() repository.TransactionRepo {
	return &TransactionRepo{storage: s}
}

func (s *Storage) Logs() repository.LogRepo {
	return &LogRepo{storage: s}
}

// InTx runs fn while holding the write lock, so the whole callback is one
// critical section. Nested calls reuse the already-exclusive view.
func (s *Storage) InTx(ctx context.Context, fn func(repository.Storage) error) error {
	if s.exclusive {
		return fn(s)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return fn(&Storage{store: s.store, exclusive: true})
}

// rlock takes the read lock unless held exclusively; returns the release func
func (s *Storage) rlock() func() {
	if s.exclusive {
		return func() {}
	}
	s.store.mu.RLock()
	return s.store.mu.RUnlock
}

// lock takes the write lock unless held exclusively; returns the release func
func (s *Storage) lock() func() {
	if s.exclusive {
		return func() {}
	}
	s.store.mu.Lock()
	return s.store.mu.Unlock
}
