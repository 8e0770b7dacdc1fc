package apperrors

import (
	"errors"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")

	ErrTransactionNotFound = errors.New("transaction not found")

	ErrLogEntryNotFound = errors.New("log entry not found")

	// ErrValidation marks bad client input.
	// Wrap it with the concrete reason: fmt.Errorf("%w: customerId is required", ErrValidation)
	ErrValidation = errors.New("validation failed")
)
