package gateway

import "context"

// EventPublisher emits movement events for downstream consumers (audit worker).
//
//go:generate mockgen -destination=mocks/mock_event_publisher.go -package=mock_gateway -source=event_publisher.go
// Publishing is best-effort from the usecases' point of view: a failed publish
// is logged, never surfaced to the API caller.
type EventPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
}
