package fraud

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankdemo/retailbank/internal/models"
)

// Score above which a transaction is flagged
const fraudThreshold = 0.7

var (
	amountHigh     = decimal.NewFromInt(10000)
	amountModerate = decimal.NewFromInt(5000)
)

// FraudService scores transactions with a fixed rule set standing in for a
// future ML model. Scoring is deterministic: the same check at the same
// hour always yields the same score.
type FraudService struct {
	// injectable for tests, drives the off-hours rule
	now func() time.Time
}

func NewService() *FraudService {
	return &FraudService{
		now: time.Now,
	}
}

func (s *FraudService) Check(check models.FraudCheck) models.FraudResult {
	score := 0.0
	reasons := []string{}

	switch {
	case check.Amount.GreaterThan(amountHigh):
		score += 0.4
		reasons = append(reasons, "High transaction amount")
	case check.Amount.GreaterThan(amountModerate):
		score += 0.2
		reasons = append(reasons, "Moderate transaction amount")
	}

	hour := s.now().Hour()
	if hour < 6 || hour > 22 {
		score += 0.3
		reasons = append(reasons, "Unusual transaction time")
	}

	if check.Type == models.TransactionTypeDebit {
		score += 0.1
	}

	if strings.Contains(strings.ToLower(check.AccountID), "test") {
		score += 0.5
		reasons = append(reasons, "Suspicious account pattern")
	}

	score = math.Min(1.0, math.Max(0.0, score))
	score = math.Round(score*1000) / 1000

	return models.FraudResult{
		TransactionID: check.TransactionID,
		IsFraud:       score > fraudThreshold,
		Score:         score,
		RiskLevel:     riskLevel(score),
		Reasons:       reasons,
		CheckedAt:     s.now().UTC(),
	}
}

func (s *FraudService) ModelInfo() models.FraudModelInfo {
	return models.FraudModelInfo{
		ModelType: "hardcoded_rules",
		Version:   "1.0.0",
		Features: []string{
			"transaction_amount",
			"transaction_type",
			"transaction_time",
			"account_pattern",
		},
		Threshold:   fraudThreshold,
		LastTrained: "2024-01-01T00:00:00Z",
	}
}

func riskLevel(score float64) string {
	switch {
	case score <= 0.3:
		return models.RiskLevelLow
	case score <= 0.7:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelHigh
	}
}
