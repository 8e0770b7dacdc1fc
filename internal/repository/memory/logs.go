package memory

import (
	"context"
	"fmt"

	"github.com/bankdemo/retailbank/internal/apperrors"
	"github.com/bankdemo/retailbank/internal/models"
	"github.com/bankdemo/retailbank/internal/repository"
)

const defaultLogLimit = 100

type LogRepo struct {
	storage *Storage
}

func (r *LogRepo) CreateEntry(ctx context.Context, entry models.LogEntry) (models.LogEntry, error) {
	unlock := r.storage.lock()
	defer unlock()

	st := r.storage.store
	st.logSeq++
	entry.ID = fmt.Sprintf("LOG-%d", st.logSeq)

	st.logs[entry.ID] = entry
	st.logOrder = append(st.logOrder, entry.ID)

	return entry, nil
}

func (r *LogRepo) GetEntry(ctx context.Context, id string) (models.LogEntry, error) {
	unlock := r.storage.rlock()
	defer unlock()

	entry, ok := r.storage.store.logs[id]
	if !ok {
		return models.LogEntry{}, apperrors.ErrLogEntryNotFound
	}

	return entry, nil
}

func (r *LogRepo) ListEntries(ctx context.Context, filter repository.LogFilter) ([]models.LogEntry, error) {
	unlock := r.storage.rlock()
	defer unlock()

	st := r.storage.store
	matched := make([]models.LogEntry, 0, len(st.logOrder))
	for _, id := range st.logOrder {
		entry := st.logs[id]
		if filter.Service != "" && entry.Service != filter.Service {
			continue
		}
		if filter.Level != "" && entry.Level != filter.Level {
			continue
		}
		matched = append(matched, entry)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}

	// newest first
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}

	return matched, nil
}
