package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Input validation, raised before any call leaves the process.
	ErrInvalidAccountID    = errors.New("account id must not be empty")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrSameAccount         = errors.New("source and destination accounts must be different")
	ErrInvalidMovementKind = errors.New("unknown movement kind")

	// Outcomes reported by the account authority.
	ErrAccountNotFound      = errors.New("account not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrAuthorityUnavailable = errors.New("account authority unavailable")
)

// AuthorityError wraps a failed call to the account authority, keeping the
// server-side diagnostic for operators. It matches ErrAuthorityUnavailable
// under errors.Is.
type AuthorityError struct {
	Operation string // "fetch", "credit" or "debit"
	AccountID string
	Status    int // HTTP status, 0 on transport errors
	Detail    string
	Err       error
}

func (e *AuthorityError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("authority %s for account %s failed: %s", e.Operation, e.AccountID, e.Detail)
	}
	return fmt.Sprintf("authority %s for account %s failed: %v", e.Operation, e.AccountID, e.Err)
}

// Unwrap always yields ErrAuthorityUnavailable so callers can classify with
// errors.Is regardless of whether the cause was transport or server-side.
func (e *AuthorityError) Unwrap() error { return ErrAuthorityUnavailable }

// PersistenceError means the authority already mutated a balance but the
// ledger store failed to record the movement. This is the most serious failure
// class: the side effect happened and the record was lost, so it must never be
// masked as a generic error.
type PersistenceError struct {
	Movement *Movement
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("movement %s was effected but could not be recorded: %v", e.Movement.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PartialTransferError means a transfer debited the source but the credit to
// the destination failed. A compensating credit-back to the source is attempted
// once; Compensated reports whether it succeeded. Either way the transfer
// failed, no movement was recorded and the debit is never retried.
type PartialTransferError struct {
	SourceAccountID      string
	DestinationAccountID string
	Amount               decimal.Decimal
	Err                  error // the credit failure
	Compensated          bool
	CompensationErr      error // set when the credit-back also failed
}

func (e *PartialTransferError) Error() string {
	if e.Compensated {
		return fmt.Sprintf("transfer of %s from %s to %s aborted after debit: credit failed (%v); source was credited back",
			e.Amount, e.SourceAccountID, e.DestinationAccountID, e.Err)
	}
	return fmt.Sprintf("transfer of %s from %s to %s left inconsistent: credit failed (%v) and compensation failed (%v)",
		e.Amount, e.SourceAccountID, e.DestinationAccountID, e.Err, e.CompensationErr)
}

func (e *PartialTransferError) Unwrap() error { return e.Err }
