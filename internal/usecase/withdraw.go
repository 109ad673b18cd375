package usecase

import (
	"context"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/gateway"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// WithdrawInput defines the data needed to withdraw from an account.
type WithdrawInput struct {
	AccountID string
	Amount    decimal.Decimal
}

// WithdrawUseCase debits an account at the authority and records the movement.
type WithdrawUseCase struct {
	authority gateway.AccountAuthority
	movements gateway.MovementRepository
	publisher gateway.EventPublisher
}

// NewWithdraw creates a new instance of the usecase.
func NewWithdraw(
	authority gateway.AccountAuthority,
	movements gateway.MovementRepository,
	publisher gateway.EventPublisher,
) *WithdrawUseCase {
	return &WithdrawUseCase{
		authority: authority,
		movements: movements,
		publisher: publisher,
	}
}

// Execute runs the withdrawal pipeline: validate, fetch the account, pre-check
// the reported balance, debit at the authority, record the movement.
//
// The pre-check avoids mutating the authority when the balance already looks
// insufficient; it is an optimization, not a guarantee. The balance may change
// between the check and the debit, and the authority's own debit response
// remains the final word.
func (u *WithdrawUseCase) Execute(ctx context.Context, input WithdrawInput) (*domain.Movement, error) {
	if err := validateAccountID(input.AccountID); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	account, err := u.authority.FetchAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.HasSufficientFunds(input.Amount) {
		return nil, domain.ErrInsufficientFunds
	}

	if _, err := u.authority.Debit(ctx, input.AccountID, input.Amount); err != nil {
		return nil, err
	}

	movement := domain.NewWithdrawalMovement(input.AccountID, input.Amount)
	if err := u.movements.Save(ctx, movement); err != nil {
		log.Error().Err(err).
			Str("account_id", input.AccountID).
			Str("amount", input.Amount.String()).
			Msg("withdrawal effected at authority but movement not recorded")
		return nil, &domain.PersistenceError{Movement: movement, Err: err}
	}

	publishRecorded(ctx, u.publisher, movement)
	return movement, nil
}
