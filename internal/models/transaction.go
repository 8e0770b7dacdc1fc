package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeDebit  = "DEBIT"
	TransactionTypeCredit = "CREDIT"

	// Every transaction is created already completed.
	// There is no pending/authorized/settled pipeline.
	TransactionStatusCompleted = "COMPLETED"
)

// Transaction is an immutable record of a single balance-affecting event.
// Amount is an unsigned magnitude, the sign comes from Type.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Type        string
	Description string
	Status      string
	CreatedAt   time.Time
}
