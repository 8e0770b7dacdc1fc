package creditscore

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankdemo/retailbank/internal/models"
)

const (
	baseScore = 750
	minScore  = 300
	maxScore  = 850
)

var (
	incomeLow  = decimal.NewFromInt(30000)
	incomeMid  = decimal.NewFromInt(60000)
	incomeHigh = decimal.NewFromInt(120000)

	dtiHigh     = decimal.NewFromFloat(0.5)
	dtiElevated = decimal.NewFromFloat(0.3)
	dtiLow      = decimal.NewFromFloat(0.1)
)

// CreditScoreService grades loan applicants with a fixed rule set standing
// in for a future ML model. Same application, same score.
type CreditScoreService struct {
	// injectable for tests
	now func() time.Time
}

func NewService() *CreditScoreService {
	return &CreditScoreService{
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *CreditScoreService) Score(app models.CreditApplication) models.CreditScore {
	score := baseScore
	factors := []string{}

	switch {
	case app.IncomeAnnual.LessThan(incomeLow):
		score -= 150
	case app.IncomeAnnual.LessThan(incomeMid):
		score -= 50
	case app.IncomeAnnual.GreaterThan(incomeHigh):
		score += 50
	}

	dti := app.DebtExisting.Div(decimal.Max(app.IncomeAnnual, decimal.NewFromInt(1)))
	switch {
	case dti.GreaterThan(dtiHigh):
		score -= 200
	case dti.GreaterThan(dtiElevated):
		score -= 100
	case dti.LessThan(dtiLow):
		score += 50
	}

	switch {
	case app.CreditHistoryYears < 2:
		score -= 100
	case app.CreditHistoryYears > 10:
		score += 50
	}

	score -= app.RecentDelinquencies * 50

	switch app.EmploymentType {
	case models.EmploymentFullTime:
		score += 30
	case models.EmploymentUnemployed:
		score -= 200
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}

	grade, decision := gradeAndDecision(score)

	loanMultiplier := decimal.NewFromInt(2)
	if decision == models.CreditDecisionApproved {
		loanMultiplier = decimal.NewFromInt(4)
	}

	// Rate moves inversely to the score
	rate := 5.0 + float64(maxScore-score)/50.0

	if app.IncomeAnnual.LessThan(incomeMid) {
		factors = append(factors, "Low income")
	}
	if dti.GreaterThan(dtiElevated) {
		factors = append(factors, "High debt-to-income ratio")
	}
	if app.RecentDelinquencies > 0 {
		factors = append(factors, "Recent delinquencies")
	}
	if app.CreditHistoryYears < 2 {
		factors = append(factors, "Limited credit history")
	}
	if app.EmploymentType == models.EmploymentUnemployed {
		factors = append(factors, "Unemployed")
	}
	if score >= 750 {
		factors = append(factors, "Excellent credit profile")
	}

	return models.CreditScore{
		ApplicantID:     app.ApplicantID,
		Score:           score,
		Grade:           grade,
		Decision:        decision,
		MaxLoanAmount:   app.IncomeAnnual.Mul(loanMultiplier),
		InterestRatePct: math.Round(rate*100) / 100,
		Factors:         factors,
		EvaluatedAt:     s.now().UTC(),
	}
}

// DemoApplication returns the fixed profile served for GET score requests,
// so the lookup surface works without applicant storage.
func (s *CreditScoreService) DemoApplication(applicantID string) models.CreditApplication {
	return models.CreditApplication{
		ApplicantID:         applicantID,
		IncomeAnnual:        decimal.NewFromInt(75000),
		DebtExisting:        decimal.NewFromInt(15000),
		CreditHistoryYears:  8,
		NumCreditLines:      5,
		RecentDelinquencies: 0,
		EmploymentType:      models.EmploymentFullTime,
		LoanAmount:          decimal.NewFromInt(25000),
		LoanPurpose:         "PERSONAL",
	}
}

func gradeAndDecision(score int) (string, string) {
	switch {
	case score >= 750:
		return "A", models.CreditDecisionApproved
	case score >= 700:
		return "B", models.CreditDecisionApproved
	case score >= 650:
		return "C", models.CreditDecisionManualReview
	case score >= 600:
		return "D", models.CreditDecisionManualReview
	case score >= 550:
		return "E", models.CreditDecisionRejected
	default:
		return "F", models.CreditDecisionRejected
	}
}
