package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RiskLevelLow    = "LOW"
	RiskLevelMedium = "MEDIUM"
	RiskLevelHigh   = "HIGH"
)

// FraudCheck is the input to the scoring rules. AccountID is a plain string
// on purpose: the fraud surface never resolves accounts, it only pattern
// matches on the identifier.
type FraudCheck struct {
	TransactionID string
	AccountID     string
	Amount        decimal.Decimal
	Type          string
	Description   string
}

type FraudResult struct {
	TransactionID string
	IsFraud       bool
	Score         float64
	RiskLevel     string
	Reasons       []string
	CheckedAt     time.Time
}

type FraudModelInfo struct {
	ModelType   string
	Version     string
	Features    []string
	Threshold   float64
	LastTrained string
}
