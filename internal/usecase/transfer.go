package usecase

import (
	"context"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/gateway"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransferInput defines the data needed to move funds between two accounts.
type TransferInput struct {
	SourceAccountID      string
	DestinationAccountID string
	Amount               decimal.Decimal
}

// TransferUseCase moves funds across two independently-owned balances reached
// only over the network. There is no transaction boundary spanning the two
// authority calls, so the debit-then-credit sequence is an explicit two-step
// saga: when the credit fails after a successful debit, a compensating
// credit-back to the source is attempted exactly once.
type TransferUseCase struct {
	authority gateway.AccountAuthority
	movements gateway.MovementRepository
	publisher gateway.EventPublisher
}

// NewTransfer creates a new instance of the usecase.
func NewTransfer(
	authority gateway.AccountAuthority,
	movements gateway.MovementRepository,
	publisher gateway.EventPublisher,
) *TransferUseCase {
	return &TransferUseCase{
		authority: authority,
		movements: movements,
		publisher: publisher,
	}
}

// Execute runs the transfer pipeline: validate, pre-check the source balance,
// debit the source, credit the destination, record the movement.
func (u *TransferUseCase) Execute(ctx context.Context, input TransferInput) (*domain.Movement, error) {
	if err := validateAccountID(input.SourceAccountID); err != nil {
		return nil, err
	}
	if err := validateAccountID(input.DestinationAccountID); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.SourceAccountID == input.DestinationAccountID {
		return nil, domain.ErrSameAccount
	}

	// Same cheap filter as withdraw: only the authority's Debit response is
	// authoritative (overdraft policies are never evaluated here).
	source, err := u.authority.FetchAccount(ctx, input.SourceAccountID)
	if err != nil {
		return nil, err
	}
	if !source.HasSufficientFunds(input.Amount) {
		return nil, domain.ErrInsufficientFunds
	}

	// Step 1 of the saga. If the debit fails nothing happened: clean abort,
	// no compensation needed.
	debited, err := u.authority.Debit(ctx, input.SourceAccountID, input.Amount)
	if err != nil {
		return nil, err
	}

	// Step 2. A failure here leaves the source debited with nothing credited,
	// so compensate before surfacing the error.
	credited, err := u.authority.Credit(ctx, input.DestinationAccountID, input.Amount)
	if err != nil {
		return nil, u.compensate(ctx, input, err)
	}
	result := gateway.TransferResult{Source: debited, Destination: credited}

	movement := domain.NewTransferMovement(input.SourceAccountID, input.DestinationAccountID, input.Amount)
	if err := u.movements.Save(ctx, movement); err != nil {
		log.Error().Err(err).
			Str("source_account_id", input.SourceAccountID).
			Str("destination_account_id", input.DestinationAccountID).
			Str("amount", input.Amount.String()).
			Msg("transfer effected at authority but movement not recorded")
		return nil, &domain.PersistenceError{Movement: movement, Err: err}
	}

	u.publishTransferRecorded(ctx, movement, result)
	return movement, nil
}

// compensate credits the debited amount back to the source after a failed
// destination credit. The debit is never retried; the credit-back is attempted
// once, and its outcome is carried in the returned PartialTransferError.
func (u *TransferUseCase) compensate(ctx context.Context, input TransferInput, creditErr error) error {
	partial := &domain.PartialTransferError{
		SourceAccountID:      input.SourceAccountID,
		DestinationAccountID: input.DestinationAccountID,
		Amount:               input.Amount,
		Err:                  creditErr,
	}

	if _, err := u.authority.Credit(ctx, input.SourceAccountID, input.Amount); err != nil {
		partial.CompensationErr = err
		log.Error().Err(err).
			Str("source_account_id", input.SourceAccountID).
			Str("destination_account_id", input.DestinationAccountID).
			Str("amount", input.Amount.String()).
			Msg("transfer compensation failed, manual reconciliation required")
		u.publishCompensationFailed(ctx, partial)
		return partial
	}

	partial.Compensated = true
	log.Warn().
		Str("source_account_id", input.SourceAccountID).
		Str("destination_account_id", input.DestinationAccountID).
		Str("amount", input.Amount.String()).
		Msg("transfer credit failed, source credited back")
	return partial
}

func (u *TransferUseCase) publishTransferRecorded(ctx context.Context, movement *domain.Movement, result gateway.TransferResult) {
	if u.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"movement_id":            movement.ID,
		"kind":                   movement.Kind,
		"amount":                 movement.Amount,
		"source_account_id":      movement.SourceAccountID,
		"destination_account_id": movement.DestinationAccountID,
		"source_balance":         result.Source.Balance,
		"destination_balance":    result.Destination.Balance,
		"recorded_at":            movement.RecordedAt,
	}

	if err := u.publisher.Publish(ctx, MovementEventsExchange, "movement.recorded", event); err != nil {
		log.Error().Err(err).Str("movement_id", movement.ID).Msg("failed to publish movement event")
	}
}

func (u *TransferUseCase) publishCompensationFailed(ctx context.Context, partial *domain.PartialTransferError) {
	if u.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"source_account_id":      partial.SourceAccountID,
		"destination_account_id": partial.DestinationAccountID,
		"amount":                 partial.Amount,
		"credit_error":           partial.Err.Error(),
		"compensation_error":     partial.CompensationErr.Error(),
	}

	if err := u.publisher.Publish(ctx, MovementEventsExchange, "transfer.compensation_failed", event); err != nil {
		log.Error().Err(err).Msg("failed to publish compensation alert")
	}
}
