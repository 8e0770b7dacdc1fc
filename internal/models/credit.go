package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EmploymentFullTime     = "FULL_TIME"
	EmploymentPartTime     = "PART_TIME"
	EmploymentSelfEmployed = "SELF_EMPLOYED"
	EmploymentUnemployed   = "UNEMPLOYED"
)

const (
	CreditDecisionApproved     = "APPROVED"
	CreditDecisionManualReview = "MANUAL_REVIEW"
	CreditDecisionRejected     = "REJECTED"
)

// CreditApplication is the input to the applicant scoring rules.
// ApplicantID is a plain string: the scoring surface never resolves
// applicants, it only echoes the identifier back.
type CreditApplication struct {
	ApplicantID         string
	IncomeAnnual        decimal.Decimal
	DebtExisting        decimal.Decimal
	CreditHistoryYears  int
	NumCreditLines      int
	RecentDelinquencies int
	EmploymentType      string
	LoanAmount          decimal.Decimal
	LoanPurpose         string
}

type CreditScore struct {
	ApplicantID     string
	Score           int
	Grade           string
	Decision        string
	MaxLoanAmount   decimal.Decimal
	InterestRatePct float64
	Factors         []string
	EvaluatedAt     time.Time
}
