package gateway

import (
	"context"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
)

// MovementRepository defines the contract for the append-only ledger store.
//
//go:generate mockgen -destination=mocks/mock_movement_repository.go -package=mock_gateway -source=movement_repository.go
// The store assigns the movement ID if not already set, never reorders or
// drops entries, and is assumed durable once Save returns nil.
type MovementRepository interface {
	// Save persists the movement, filling in its ID.
	Save(ctx context.Context, movement *domain.Movement) error

	// FindAllOrderedByDateDesc returns every movement, most recent first.
	FindAllOrderedByDateDesc(ctx context.Context) ([]domain.Movement, error)

	// FindByAccountOrderedByDateDesc returns movements where the account
	// appears as source or destination, most recent first.
	FindByAccountOrderedByDateDesc(ctx context.Context, accountID string) ([]domain.Movement, error)

	// FindByKindOrderedByDateDesc returns movements of one kind, most recent first.
	FindByKindOrderedByDateDesc(ctx context.Context, kind domain.MovementKind) ([]domain.Movement, error)
}
