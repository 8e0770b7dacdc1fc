package compliance

import (
	"strings"
	"time"

	"github.com/bankdemo/retailbank/internal/models"
)

// Manual production changes are blocked starting this local hour
const prodFreezeHour = 17

const changeTypeLimitChange = "LIMIT_CHANGE"

// ComplianceService evaluates change requests against a fixed demo policy
// catalog. The rules are intentionally basic and deterministic; they can be
// swapped for a real policy engine later.
type ComplianceService struct {
	policies []models.Policy

	// injectable for tests, used when the caller supplies no request time
	now func() time.Time
}

func NewService() *ComplianceService {
	return &ComplianceService{
		policies: []models.Policy{
			{
				ID:          "POL-001",
				Name:        "No production sync after 5 PM",
				Severity:    "HIGH",
				Description: "Blocks manual syncs after 17:00 local time for Prod environments",
				Enabled:     true,
			},
			{
				ID:          "POL-002",
				Name:        "Require approval for limit changes",
				Severity:    "MEDIUM",
				Description: "Treasury limit changes require dual approval",
				Enabled:     true,
			},
			{
				ID:          "POL-003",
				Name:        "Disallow privileged containers",
				Severity:    "HIGH",
				Description: "Kubernetes workloads must not run as privileged",
				Enabled:     true,
			},
		},
		now: time.Now,
	}
}

func (s *ComplianceService) Policies() []models.Policy {
	policies := make([]models.Policy, len(s.policies))
	copy(policies, s.policies)
	return policies
}

// Check evaluates the request and returns PASS, WARN or BLOCK.
// Rules are checked in order, the first match wins.
func (s *ComplianceService) Check(check models.ComplianceCheck) models.ComplianceDecision {
	if check.RequestedAt.IsZero() {
		check.RequestedAt = s.now()
	}
	if check.ChangeType == "" {
		check.ChangeType = "unknown"
	}

	decision := models.ComplianceDecision{
		Decision:    models.DecisionPass,
		EvaluatedAt: s.now().UTC(),
		Inputs:      check,
	}

	isProd := strings.HasPrefix(strings.ToLower(check.EnvironmentType), "prod")
	if isProd && check.RequestedAt.Hour() >= prodFreezeHour {
		decision.Decision = models.DecisionBlock
		decision.PolicyID = "POL-001"
		decision.Reason = "Manual syncs to production are blocked after 17:00"
		return decision
	}

	if check.ChangeType == changeTypeLimitChange {
		decision.Decision = models.DecisionWarn
		decision.PolicyID = "POL-002"
		decision.Reason = "Limit changes should require dual approval"
		return decision
	}

	return decision
}
