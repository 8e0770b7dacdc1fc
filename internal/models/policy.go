package models

import (
	"time"
)

const (
	DecisionPass  = "PASS"
	DecisionWarn  = "WARN"
	DecisionBlock = "BLOCK"
)

type Policy struct {
	ID          string
	Name        string
	Severity    string
	Description string
	Enabled     bool
}

type ComplianceCheck struct {
	EnvironmentType string
	RequestedAt     time.Time
	ChangeType      string
}

type ComplianceDecision struct {
	Decision    string
	PolicyID    string
	Reason      string
	EvaluatedAt time.Time
	Inputs      ComplianceCheck
}
