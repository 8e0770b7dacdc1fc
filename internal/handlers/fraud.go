package handlers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankdemo/retailbank/internal/handlers/render"
	"github.com/bankdemo/retailbank/internal/models"
)

func handleFraudCheck(fraudService fraudService) http.Handler {
	type request struct {
		TransactionID string          `json:"transactionId" validate:"required"`
		AccountID     string          `json:"accountId" validate:"required"`
		Amount        decimal.Decimal `json:"amount" validate:"required"`
		Type          string          `json:"transactionType" validate:"required,oneof=DEBIT CREDIT"`
		Description   string          `json:"description"`
	}

	type response struct {
		TransactionID string    `json:"transactionId"`
		IsFraud       bool      `json:"isFraud"`
		FraudScore    float64   `json:"fraudScore"`
		RiskLevel     string    `json:"riskLevel"`
		Reasons       []string  `json:"reasons"`
		CheckedAt     time.Time `json:"checkedAt"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		result := fraudService.Check(models.FraudCheck{
			TransactionID: req.TransactionID,
			AccountID:     req.AccountID,
			Amount:        req.Amount,
			Type:          req.Type,
			Description:   req.Description,
		})

		render.JSON(w, response{
			TransactionID: result.TransactionID,
			IsFraud:       result.IsFraud,
			FraudScore:    result.Score,
			RiskLevel:     result.RiskLevel,
			Reasons:       result.Reasons,
			CheckedAt:     result.CheckedAt,
		})
	})
}

func handleFraudModelInfo(fraudService fraudService) http.Handler {
	type response struct {
		ModelType   string   `json:"model_type"`
		Version     string   `json:"version"`
		Features    []string `json:"features"`
		Threshold   float64  `json:"threshold"`
		LastTrained string   `json:"last_trained"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := fraudService.ModelInfo()

		render.JSON(w, response{
			ModelType:   info.ModelType,
			Version:     info.Version,
			Features:    info.Features,
			Threshold:   info.Threshold,
			LastTrained: info.LastTrained,
		})
	})
}
