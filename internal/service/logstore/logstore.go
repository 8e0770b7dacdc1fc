package logstore

import (
	"context"
	"fmt"
	"time"

	"github.com/bankdemo/retailbank/internal/apperrors"
	"github.com/bankdemo/retailbank/internal/logger"
	"github.com/bankdemo/retailbank/internal/models"
	"github.com/bankdemo/retailbank/internal/repository"
)

const (
	defaultLevel   = "info"
	defaultService = "unknown"
)

// LogStoreService accepts log entries from other services, keeps them
// queryable in the store and echoes each one through the server's own
// structured logger.
type LogStoreService struct {
	storage repository.Storage
	logger  logger.Logger

	// injectable for tests
	now func() time.Time
}

func NewService(storage repository.Storage, l logger.Logger) *LogStoreService {
	if l == nil {
		l = logger.NewNoOpLogger()
	}

	return &LogStoreService{
		storage: storage,
		logger:  l,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type IngestParams struct {
	Level    string
	Message  string
	Service  string
	Metadata map[string]any
}

func (s *LogStoreService) Ingest(ctx context.Context, p IngestParams) (models.LogEntry, error) {
	if p.Message == "" {
		return models.LogEntry{}, fmt.Errorf("%w: message is required", apperrors.ErrValidation)
	}

	level := p.Level
	if level == "" {
		level = defaultLevel
	}
	service := p.Service
	if service == "" {
		service = defaultService
	}

	entry, err := s.storage.Logs().CreateEntry(ctx, models.LogEntry{
		Timestamp: s.now(),
		Level:     level,
		Message:   p.Message,
		Service:   service,
		Metadata:  p.Metadata,
	})
	if err != nil {
		return entry, fmt.Errorf("can't store log entry. Err: %w", err)
	}

	s.echo(entry)

	return entry, nil
}

func (s *LogStoreService) List(ctx context.Context, filter repository.LogFilter) ([]models.LogEntry, error) {
	return s.storage.Logs().ListEntries(ctx, filter)
}

func (s *LogStoreService) Get(ctx context.Context, id string) (models.LogEntry, error) {
	return s.storage.Logs().GetEntry(ctx, id)
}

// echo re-emits an ingested entry on the server's logger at the closest level
func (s *LogStoreService) echo(entry models.LogEntry) {
	args := []any{"origin", entry.Service, "id", entry.ID}
	if len(entry.Metadata) > 0 {
		args = append(args, "metadata", entry.Metadata)
	}

	switch entry.Level {
	case "debug":
		s.logger.Debug(entry.Message, args...)
	case "warn":
		s.logger.Warn(entry.Message, args...)
	case "error":
		s.logger.Error(entry.Message, args...)
	default:
		s.logger.Info(entry.Message, args...)
	}
}
