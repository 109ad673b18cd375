package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/config"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/infra/postgres"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// movementEvent is the JSON envelope published by the API on movement_events.
// Only the movement id is pulled out as a column; the full payload is stored
// verbatim for reconciliation.
type movementEvent struct {
	MovementID string `json:"movement_id"`
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	ctx := context.Background()

	dbPool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to PostgreSQL")
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL is not responding")
	}
	log.Info().Msg("✅ Connected to PostgreSQL!")

	auditRepo := postgres.NewAuditRepository(dbPool)

	conn, err := amqp.DialConfig(cfg.RabbitURL, amqp.Config{
		Properties: amqp.Table{
			"connection_name": "AuditWorker_Consumer",
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to RabbitMQ")
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("error closing RabbitMQ connection")
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open channel")
	}
	defer func() {
		if err := ch.Close(); err != nil {
			log.Error().Err(err).Msg("error closing RabbitMQ channel")
		}
	}()

	// Prefetch 1: one message at a time, acked before the next is delivered.
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatal().Err(err).Msg("failed to configure QoS")
	}

	err = ch.ExchangeDeclare(
		usecase.MovementEventsExchange, // name
		"topic",                        // type
		true,                           // durable
		false,                          // auto-deleted
		false,                          // internal
		false,                          // no-wait
		nil,                            // arguments
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to declare exchange")
	}

	q, err := ch.QueueDeclare(
		"movement_audit_queue", // name
		true,                   // durable
		false,                  // delete when unused
		false,                  // exclusive
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to declare queue")
	}

	// Everything on the exchange is audit-relevant: recorded movements and
	// failed compensations alike.
	err = ch.QueueBind(
		q.Name,                         // queue name
		"#",                            // routing key
		usecase.MovementEventsExchange, // exchange
		false,
		nil,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bind queue")
	}

	msgs, err := ch.Consume(
		q.Name,         // queue
		"audit_worker", // consumer tag
		false,          // manual ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register consumer")
	}

	notifyClose := make(chan *amqp.Error)
	ch.NotifyClose(notifyClose)

	log.Info().Str("queue", q.Name).Msg("worker started, waiting for movement events")

	go func() {
		for {
			select {
			case err := <-notifyClose:
				if err != nil {
					log.Error().Err(err).Msg("RabbitMQ channel closed")
					os.Exit(1)
				}
				return
			case d, ok := <-msgs:
				if !ok {
					log.Error().Msg("message channel closed")
					os.Exit(1)
				}

				var event movementEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Error().Err(err).Msg("failed to decode event JSON")
					if err := d.Nack(false, false); err != nil {
						log.Error().Err(err).Msg("failed to nack malformed event")
					}
					continue
				}

				record := postgres.AuditRecord{
					MovementID: event.MovementID,
					RoutingKey: d.RoutingKey,
					Payload:    d.Body,
				}

				saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := auditRepo.Save(saveCtx, record); err != nil {
					log.Error().Err(err).Str("movement_id", event.MovementID).Msg("failed to save audit record")
					if err := d.Nack(false, true); err != nil {
						log.Error().Err(err).Msg("failed to nack after save error")
					}
					cancel()
					continue
				}
				cancel()

				if err := d.Ack(false); err != nil {
					log.Error().Err(err).Msg("failed to ack message")
				}
				log.Info().Str("movement_id", event.MovementID).Str("routing_key", d.RoutingKey).Msg("audit record saved")
			}
		}
	}()

	// Graceful shutdown: block until signalled.
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	<-stopChan

	log.Info().Msg("shutting down worker...")
}
