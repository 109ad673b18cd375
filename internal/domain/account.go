package domain

import "github.com/shopspring/decimal"

// AccountType mirrors the account classification used by the account authority.
// Withdrawal policy (overdraft limits etc.) lives entirely in the authority;
// we only carry the type through for callers.
type AccountType string

const (
	AccountSavings  AccountType = "SAVINGS"
	AccountChecking AccountType = "CHECKING"
)

// Account is a read-only snapshot of an account as reported by the external
// account authority. This service never owns or mirrors balances; a snapshot
// is only valid at the instant the authority returned it.
type Account struct {
	ID         string
	Number     string
	Balance    decimal.Decimal
	Type       AccountType
	CustomerID string
}

// HasSufficientFunds is the conservative pre-check used before a debit:
// "reported balance >= amount". The authority may still accept or reject a
// debit for its own reasons (overdraft policy), so this is an early filter,
// not the final word.
func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
