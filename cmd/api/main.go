package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/config"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/gateway"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/infra/authority"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/infra/http/handler"
	internalMiddleware "github.com/BrigitteMendez1302/transactions-microservice/internal/infra/http/middleware"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/infra/mongodb"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/infra/rabbitmq"
	redisInfra "github.com/BrigitteMendez1302/transactions-microservice/internal/infra/redis"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	ctx := context.Background()

	// MongoDB holds the ledger: one immutable document per movement.
	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("could not create MongoDB client")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("error disconnecting from MongoDB")
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("MongoDB is not responding")
	}
	cancel()
	log.Info().Msg("✅ Connected to MongoDB!")

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("could not connect to Redis (idempotency disabled)")
	} else {
		log.Info().Msg("✅ Connected to Redis!")
	}

	rabbitConn, err := amqp.DialConfig(cfg.RabbitURL, amqp.Config{
		Properties: amqp.Table{
			"connection_name": "TransactionsAPI_Publisher",
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not connect to RabbitMQ (movement events will not be published)")
	} else {
		defer rabbitConn.Close()
		log.Info().Msg("✅ Connected to RabbitMQ!")
	}

	var eventPublisher gateway.EventPublisher
	if rabbitConn != nil {
		ch, err := rabbitConn.Channel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open RabbitMQ channel")
		}
		defer ch.Close()

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

		eventPublisher = rabbitmq.NewPublisher(ch)
	}

	// Infrastructure layer.
	idempotencyRepo := redisInfra.NewIdempotencyRepository(redisClient)
	movementRepo := mongodb.NewMovementRepository(mongoClient, cfg.MongoDatabase)
	accountAuthority := authority.NewClient(cfg.AuthorityBaseURL, cfg.AuthorityTimeout)

	// Usecase layer.
	depositUseCase := usecase.NewDeposit(accountAuthority, movementRepo, eventPublisher)
	withdrawUseCase := usecase.NewWithdraw(accountAuthority, movementRepo, eventPublisher)
	transferUseCase := usecase.NewTransfer(accountAuthority, movementRepo, eventPublisher)
	historyUseCase := usecase.NewHistory(movementRepo)

	transactionHandler := handler.NewTransactionHandler(depositUseCase, withdrawUseCase, transferUseCase, historyUseCase)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	idempotencyMiddleware := internalMiddleware.Idempotency(idempotencyRepo)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})

	router.Route("/api/transactions", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(idempotencyMiddleware)
			r.Post("/deposit", transactionHandler.Deposit)
			r.Post("/withdraw", transactionHandler.Withdraw)
			r.Post("/transfer", transactionHandler.Transfer)
		})
		r.Get("/", transactionHandler.GlobalHistory)
		r.Get("/account/{accountId}", transactionHandler.AccountHistory)
	})

	port := ":" + cfg.Port
	log.Info().Msgf("🚀 Server running on port %s", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server")
	}
}
