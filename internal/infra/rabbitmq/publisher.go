package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/gateway"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Publisher implements gateway.EventPublisher over a RabbitMQ channel.
// Movement events are published persistent so they survive a broker restart.
type Publisher struct {
	channel *amqp.Channel
}

// NewPublisher creates a publisher over an already-opened channel. The caller
// owns the channel lifecycle and the exchange declaration.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{channel: ch}
}

// Publish marshals the event to JSON and sends it to the exchange with the
// given routing key.
func (p *Publisher) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	bytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         bytes,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Debug().Str("routing_key", routingKey).Msg("movement event published")
	return nil
}

var _ gateway.EventPublisher = (*Publisher)(nil)
