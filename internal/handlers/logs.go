package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bankdemo/retailbank/internal/apperrors"
	"github.com/bankdemo/retailbank/internal/handlers/render"
	"github.com/bankdemo/retailbank/internal/logger"
	"github.com/bankdemo/retailbank/internal/models"
	"github.com/bankdemo/retailbank/internal/repository"
	"github.com/bankdemo/retailbank/internal/service/logstore"
)

type logEntryResponse struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Service   string         `json:"service"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func toLogEntryResponse(e models.LogEntry) logEntryResponse {
	return logEntryResponse{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Level:     e.Level,
		Message:   e.Message,
		Service:   e.Service,
		Metadata:  e.Metadata,
	}
}

func handleIngestLog(logService logService, l logger.Logger) http.Handler {
	type request struct {
		Level    string         `json:"level"`
		Message  string         `json:"message" validate:"required"`
		Service  string         `json:"service"`
		Metadata map[string]any `json:"metadata"`
	}

	type response struct {
		ID        string    `json:"id"`
		Timestamp time.Time `json:"timestamp"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		entry, err := logService.Ingest(r.Context(), logstore.IngestParams{
			Level:    req.Level,
			Message:  req.Message,
			Service:  req.Service,
			Metadata: req.Metadata,
		})

		switch {
		case err == nil:
			render.JSONWithStatus(w, response{ID: entry.ID, Timestamp: entry.Timestamp}, http.StatusCreated)
		case errors.Is(err, apperrors.ErrValidation):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		default:
			l.Error("Failed to ingest log entry", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleListLogs(logService logService, l logger.Logger) http.Handler {
	type response struct {
		Logs  []logEntryResponse `json:"logs"`
		Count int                `json:"count"`
		AsOf  time.Time          `json:"as_of"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := repository.LogFilter{
			Service: r.URL.Query().Get("service"),
			Level:   r.URL.Query().Get("level"),
		}
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				render.ServiceError(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			filter.Limit = limit
		}

		entries, err := logService.List(r.Context(), filter)
		if err != nil {
			l.Error("Failed to list log entries", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		res := response{
			Logs:  make([]logEntryResponse, 0, len(entries)),
			Count: len(entries),
			AsOf:  time.Now().UTC(),
		}
		for _, entry := range entries {
			res.Logs = append(res.Logs, toLogEntryResponse(entry))
		}

		render.JSON(w, res)
	})
}

func handleGetLog(logService logService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry, err := logService.Get(r.Context(), r.PathValue("logID"))

		switch {
		case err == nil:
			render.JSON(w, toLogEntryResponse(entry))
		case errors.Is(err, apperrors.ErrLogEntryNotFound):
			render.ServiceError(w, "Log not found", http.StatusNotFound)
		default:
			l.Error("Failed to get log entry", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}
