package usecase

import (
	"context"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/gateway"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DepositInput defines the data needed to deposit into an account.
// DTOs keep the HTTP layer decoupled from the usecase.
type DepositInput struct {
	AccountID string
	Amount    decimal.Decimal
}

// DepositUseCase credits an account at the authority and records the movement.
type DepositUseCase struct {
	authority gateway.AccountAuthority
	movements gateway.MovementRepository
	publisher gateway.EventPublisher
}

// NewDeposit creates a new instance of the usecase.
func NewDeposit(
	authority gateway.AccountAuthority,
	movements gateway.MovementRepository,
	publisher gateway.EventPublisher,
) *DepositUseCase {
	return &DepositUseCase{
		authority: authority,
		movements: movements,
		publisher: publisher,
	}
}

// Execute runs the deposit pipeline: validate, credit at the authority,
// record the movement. The movement timestamp is assigned here, not by the
// store, and the record only exists once in its terminal form.
func (u *DepositUseCase) Execute(ctx context.Context, input DepositInput) (*domain.Movement, error) {
	if err := validateAccountID(input.AccountID); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	if _, err := u.authority.Credit(ctx, input.AccountID, input.Amount); err != nil {
		return nil, err
	}

	movement := domain.NewDepositMovement(input.AccountID, input.Amount)
	if err := u.movements.Save(ctx, movement); err != nil {
		// The credit already happened at the authority. Surface this as a
		// distinct failure so operators can reconcile; no automatic reversal.
		log.Error().Err(err).
			Str("account_id", input.AccountID).
			Str("amount", input.Amount.String()).
			Msg("deposit effected at authority but movement not recorded")
		return nil, &domain.PersistenceError{Movement: movement, Err: err}
	}

	publishRecorded(ctx, u.publisher, movement)
	return movement, nil
}
