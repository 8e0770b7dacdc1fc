package handlers

import (
	"context"
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

type accountResponse struct {
	AccountID     uuid.UUID `json:"accountId"`
	CustomerID    string    `json:"customerId"`
	AccountNumber string    `json:"accountNumber"`
	Balance       float64   `json:"balance"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toAccountResponse(a models.Account) accountResponse {
	balance, _ := a.Balance.Float64()
	return accountResponse{
		AccountID:     a.ID,
		CustomerID:    a.CustomerID,
		AccountNumber: a.AccountNumber,
		Balance:       balance,
		Currency:      a.Currency,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func handleCreateAccount(ledgerService ledgerService, l logger.Logger) http.Handler {
	type request struct {
		CustomerID     string          `json:"customerId" validate:"required"`
		AccountNumber  string          `json:"accountNumber" validate:"required"`
		InitialBalance decimal.Decimal `json:"initialBalance"`
		Currency       string          `json:"currency"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		account, err := ledgerService.CreateAccount(r.Context(), ledger.CreateAccountParams{
			CustomerID:     req.CustomerID,
			AccountNumber:  req.AccountNumber,
			InitialBalance: req.InitialBalance,
			Currency:       req.Currency,
		})

		switch {
		case err == nil:
			render.JSONWithStatus(w, toAccountResponse(account), http.StatusCreated)
		case errors.Is(err, apperrors.ErrValidation):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		default:
			l.Error("Failed to create account", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleListAccounts(ledgerService ledgerService, l logger.Logger) http.Handler {
	type response struct {
		Accounts []accountResponse `json:"accounts"`
		Count    int               `json:"count"`
		AsOf     time.Time         `json:"as_of"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := ledgerService.ListAccounts(r.Context(), r.URL.Query().Get("customerId"))
		if err != nil {
			l.Error("Failed to list accounts", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		res := response{
			Accounts: make([]accountResponse, 0, len(accounts)),
			Count:    len(accounts),
			AsOf:     time.Now().UTC(),
		}
		for _, account := range accounts {
			res.Accounts = append(res.Accounts, toAccountResponse(account))
		}

		render.JSON(w, res)
	})
}

func handleGetAccount(ledgerService ledgerService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(r.PathValue("accountID"))
		if err != nil {
			render.ServiceError(w, "Account not found", http.StatusNotFound)
			return
		}

		account, err := ledgerService.GetAccount(r.Context(), accountID)

		switch {
		case err == nil:
			render.JSON(w, toAccountResponse(account))
		case errors.Is(err, apperrors.ErrAccountNotFound):
			render.ServiceError(w, "Account not found", http.StatusNotFound)
		default:
			l.Error("Failed to get account", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleSuspendAccount(ledgerService ledgerService, l logger.Logger) http.Handler {
	return handleSetAccountStatus(ledgerService.SuspendAccount, l)
}

func handleActivateAccount(ledgerService ledgerService, l logger.Logger) http.Handler {
	return handleSetAccountStatus(ledgerService.ActivateAccount, l)
}

func handleSetAccountStatus(
	setStatus func(ctx context.Context, id uuid.UUID) (models.Account, error),
	l logger.Logger,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(r.PathValue("accountID"))
		if err != nil {
			render.ServiceError(w, "Account not found", http.StatusNotFound)
			return
		}

		account, err := setStatus(r.Context(), accountID)

		switch {
		case err == nil:
			render.JSON(w, toAccountResponse(account))
		case errors.Is(err, apperrors.ErrAccountNotFound):
			render.ServiceError(w, "Account not found", http.StatusNotFound)
		default:
			l.Error("Failed to update account status", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}
