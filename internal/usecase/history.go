package usecase

import (
	"context"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/gateway"
)

// HistoryUseCase serves the read-only movement history queries. Each call
// re-queries the store, so results are a fresh snapshot, not a subscription.
type HistoryUseCase struct {
	movements gateway.MovementRepository
}

// NewHistory creates a new instance of the usecase.
func NewHistory(movements gateway.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movements: movements}
}

// Global returns every recorded movement, most recent first.
func (u *HistoryUseCase) Global(ctx context.Context) ([]domain.Movement, error) {
	return u.movements.FindAllOrderedByDateDesc(ctx)
}

// ByAccount returns movements where the account appears as source or
// destination, most recent first.
func (u *HistoryUseCase) ByAccount(ctx context.Context, accountID string) ([]domain.Movement, error) {
	if err := validateAccountID(accountID); err != nil {
		return nil, err
	}
	return u.movements.FindByAccountOrderedByDateDesc(ctx, accountID)
}

// ByKind returns movements of a single kind, most recent first.
func (u *HistoryUseCase) ByKind(ctx context.Context, kind domain.MovementKind) ([]domain.Movement, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidMovementKind
	}
	return u.movements.FindByKindOrderedByDateDesc(ctx, kind)
}
