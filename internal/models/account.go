package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AccountStatusActive    = "ACTIVE"
	AccountStatusSuspended = "SUSPENDED"
	AccountStatusClosed    = "CLOSED"
)

// DefaultCurrency is used when the caller does not name one.
// Informational only, no conversion happens anywhere.
const DefaultCurrency = "USD"

type Account struct {
	ID            uuid.UUID
	CustomerID    string
	AccountNumber string
	Balance       decimal.Decimal
	Currency      string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
