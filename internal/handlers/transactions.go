package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bankdemo/retailbank/internal/apperrors"
	"github.com/bankdemo/retailbank/internal/handlers/render"
	"github.com/bankdemo/retailbank/internal/logger"
	"github.com/bankdemo/retailbank/internal/models"
	"github.com/bankdemo/retailbank/internal/service/ledger"
)

type transactionResponse struct {
	TransactionID uuid.UUID `json:"transactionId"`
	AccountID     uuid.UUID `json:"accountId"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toTransactionResponse(t models.Transaction) transactionResponse {
	amount, _ := t.Amount.Float64()
	return transactionResponse{
		TransactionID: t.ID,
		AccountID:     t.AccountID,
		Amount:        amount,
		Type:          t.Type,
		Description:   t.Description,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
}

func handleRecordTransaction(ledgerService ledgerService, l logger.Logger) http.Handler {
	type request struct {
		AccountID   uuid.UUID       `json:"accountId" validate:"required"`
		Amount      decimal.Decimal `json:"amount" validate:"required"`
		Type        string          `json:"type" validate:"required,oneof=DEBIT CREDIT"`
		Description string          `json:"description"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		txn, err := ledgerService.RecordTransaction(r.Context(), ledger.RecordTransactionParams{
			AccountID:   req.AccountID,
			Amount:      req.Amount,
			Type:        req.Type,
			Description: req.Description,
		})

		switch {
		case err == nil:
			render.JSONWithStatus(w, toTransactionResponse(txn), http.StatusCreated)
		case errors.Is(err, apperrors.ErrAccountNotFound):
			render.ServiceError(w, "Account not found", http.StatusNotFound)
		case errors.Is(err, apperrors.ErrValidation):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		default:
			l.Error("Failed to record transaction", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleListTransactions(ledgerService ledgerService, l logger.Logger) http.Handler {
	type response struct {
		Transactions []transactionResponse `json:"transactions"`
		Count        int                   `json:"count"`
		AsOf         time.Time             `json:"as_of"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := ledger.TransactionFilter{
			CustomerID: r.URL.Query().Get("customerId"),
		}
		if raw := r.URL.Query().Get("accountId"); raw != "" {
			accountID, err := uuid.Parse(raw)
			if err != nil {
				render.ServiceError(w, "accountId must be a valid id", http.StatusBadRequest)
				return
			}
			filter.AccountID = accountID
		}

		txns, err := ledgerService.ListTransactions(r.Context(), filter)
		if err != nil {
			l.Error("Failed to list transactions", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		res := response{
			Transactions: make([]transactionResponse, 0, len(txns)),
			Count:        len(txns),
			AsOf:         time.Now().UTC(),
		}
		for _, txn := range txns {
			res.Transactions = append(res.Transactions, toTransactionResponse(txn))
		}

		render.JSON(w, res)
	})
}

func handleGetTransaction(ledgerService ledgerService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		transactionID, err := uuid.Parse(r.PathValue("transactionID"))
		if err != nil {
			render.ServiceError(w, "Transaction not found", http.StatusNotFound)
			return
		}

		txn, err := ledgerService.GetTransaction(r.Context(), transactionID)

		switch {
		case err == nil:
			render.JSON(w, toTransactionResponse(txn))
		case errors.Is(err, apperrors.ErrTransactionNotFound):
			render.ServiceError(w, "Transaction not found", http.StatusNotFound)
		default:
			l.Error("Failed to get transaction", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}
