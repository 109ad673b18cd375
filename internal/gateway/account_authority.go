package gateway

import (
	"context"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountAuthority is the sole channel to the external service that owns
// account balances. The usecases only interact with this contract, without
// knowing it is an HTTP client underneath.
//
// Every call completes with exactly one account snapshot or one error:
// domain.ErrAccountNotFound when the id is unknown, domain.ErrInsufficientFunds
// when the authority rejects a debit, and *domain.AuthorityError for anything
// else (network failure, server-side rejection).
//
//go:generate mockgen -destination=mocks/mock_account_authority.go -package=mock_gateway -source=account_authority.go
type AccountAuthority interface {
	// FetchAccount reads an account snapshot. No side effect.
	FetchAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// Credit increases the account balance and returns the updated snapshot.
	Credit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error)

	// Debit decreases the account balance and returns the updated snapshot.
	// The authority applies its own withdrawal policy and is the final word
	// on whether the debit is accepted.
	Debit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error)
}

// TransferResult carries the two account snapshots produced by a transfer.
// The slots are not interchangeable, hence a named struct instead of a pair.
type TransferResult struct {
	Source      *domain.Account
	Destination *domain.Account
}
