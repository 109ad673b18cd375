package usecase

import (
	"context"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/gateway"
	"github.com/rs/zerolog/log"
)

// MovementEventsExchange is the topic exchange all movement events go through.
const MovementEventsExchange = "movement_events"

// publishRecorded emits a movement.recorded event after a movement was
// persisted. Publishing is best-effort: the movement is already durable, so a
// broker failure is logged and never fails the request.
func publishRecorded(ctx context.Context, publisher gateway.EventPublisher, movement *domain.Movement) {
	if publisher == nil {
		return
	}

	event := map[string]interface{}{
		"movement_id":            movement.ID,
		"kind":                   movement.Kind,
		"amount":                 movement.Amount,
		"source_account_id":      movement.SourceAccountID,
		"destination_account_id": movement.DestinationAccountID,
		"recorded_at":            movement.RecordedAt,
	}

	if err := publisher.Publish(ctx, MovementEventsExchange, "movement.recorded", event); err != nil {
		log.Error().Err(err).Str("movement_id", movement.ID).Msg("failed to publish movement event")
	}
}
