package handlers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankdemo/retailbank/internal/handlers/render"
	"github.com/bankdemo/retailbank/internal/models"
)

type creditScoreResponse struct {
	ApplicantID     string    `json:"applicantId"`
	Score           int       `json:"score"`
	Grade           string    `json:"grade"`
	Decision        string    `json:"decision"`
	MaxLoanAmount   float64   `json:"maxLoanAmount"`
	InterestRatePct float64   `json:"interestRatePct"`
	Factors         []string  `json:"factors"`
	EvaluatedAt     time.Time `json:"evaluatedAt"`
}

func toCreditScoreResponse(s models.CreditScore) creditScoreResponse {
	maxLoan, _ := s.MaxLoanAmount.Float64()
	return creditScoreResponse{
		ApplicantID:     s.ApplicantID,
		Score:           s.Score,
		Grade:           s.Grade,
		Decision:        s.Decision,
		MaxLoanAmount:   maxLoan,
		InterestRatePct: s.InterestRatePct,
		Factors:         s.Factors,
		EvaluatedAt:     s.EvaluatedAt,
	}
}

func handleCreditScore(creditService creditScoreService) http.Handler {
	type request struct {
		ApplicantID         string          `json:"applicantId" validate:"required"`
		IncomeAnnual        decimal.Decimal `json:"incomeAnnual" validate:"required"`
		DebtExisting        decimal.Decimal `json:"debtExisting"`
		CreditHistoryYears  int             `json:"creditHistoryLengthYears"`
		NumCreditLines      int             `json:"numCreditLines"`
		RecentDelinquencies int             `json:"recentDelinquencies"`
		EmploymentType      string          `json:"employmentType" validate:"required,oneof=FULL_TIME PART_TIME SELF_EMPLOYED UNEMPLOYED"`
		LoanAmount          decimal.Decimal `json:"loanAmount"`
		LoanPurpose         string          `json:"loanPurpose" validate:"omitempty,oneof=HOME_LOAN AUTO_LOAN PERSONAL BUSINESS"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		score := creditService.Score(models.CreditApplication{
			ApplicantID:         req.ApplicantID,
			IncomeAnnual:        req.IncomeAnnual,
			DebtExisting:        req.DebtExisting,
			CreditHistoryYears:  req.CreditHistoryYears,
			NumCreditLines:      req.NumCreditLines,
			RecentDelinquencies: req.RecentDelinquencies,
			EmploymentType:      req.EmploymentType,
			LoanAmount:          req.LoanAmount,
			LoanPurpose:         req.LoanPurpose,
		})

		render.JSON(w, toCreditScoreResponse(score))
	})
}

// handleGetCreditScore serves the demo profile score, as the applicant
// lookup has no storage behind it
func handleGetCreditScore(creditService creditScoreService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app := creditService.DemoApplication(r.PathValue("applicantID"))

		render.JSON(w, toCreditScoreResponse(creditService.Score(app)))
	})
}
