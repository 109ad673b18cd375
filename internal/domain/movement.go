package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a ledger movement.
type MovementKind string

const (
	MovementDeposit    MovementKind = "DEPOSIT"
	MovementWithdrawal MovementKind = "WITHDRAWAL"
	MovementTransfer   MovementKind = "TRANSFER"
)

// Valid reports whether the kind is one of the three known movement kinds.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementDeposit, MovementWithdrawal, MovementTransfer:
		return true
	}
	return false
}

// Movement is an immutable ledger record of one completed deposit, withdrawal
// or transfer. It is created only after the account authority reported success
// and never mutated afterwards; corrections are new movements.
// Clean Architecture: this entity knows nothing about JSON, BSON or SQL.
type Movement struct {
	ID                   string // assigned by the store on save
	Kind                 MovementKind
	Amount               decimal.Decimal
	RecordedAt           time.Time // assigned at creation, not by the store
	SourceAccountID      string    // set for WITHDRAWAL and TRANSFER
	DestinationAccountID string    // set for DEPOSIT and TRANSFER
}

// NewDepositMovement builds a DEPOSIT movement into the given account.
func NewDepositMovement(accountID string, amount decimal.Decimal) *Movement {
	return &Movement{
		Kind:                 MovementDeposit,
		Amount:               amount,
		RecordedAt:           time.Now(),
		DestinationAccountID: accountID,
	}
}

// NewWithdrawalMovement builds a WITHDRAWAL movement out of the given account.
func NewWithdrawalMovement(accountID string, amount decimal.Decimal) *Movement {
	return &Movement{
		Kind:            MovementWithdrawal,
		Amount:          amount,
		RecordedAt:      time.Now(),
		SourceAccountID: accountID,
	}
}

// NewTransferMovement builds a TRANSFER movement between two accounts.
func NewTransferMovement(sourceAccountID, destinationAccountID string, amount decimal.Decimal) *Movement {
	return &Movement{
		Kind:                 MovementTransfer,
		Amount:               amount,
		RecordedAt:           time.Now(),
		SourceAccountID:      sourceAccountID,
		DestinationAccountID: destinationAccountID,
	}
}

// InvolvesAccount reports whether the account appears on either side of the movement.
func (m *Movement) InvolvesAccount(accountID string) bool {
	return m.SourceAccountID == accountID || m.DestinationAccountID == accountID
}
