package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/gateway"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// movementDocument is the persistence shape of a movement.
// Amounts are stored as strings so no decimal precision is lost in BSON.
type movementDocument struct {
	ID                   string    `bson:"_id"`
	Kind                 string    `bson:"kind"`
	Amount               string    `bson:"amount"`
	RecordedAt           time.Time `bson:"recorded_at"`
	SourceAccountID      string    `bson:"source_account_id,omitempty"`
	DestinationAccountID string    `bson:"destination_account_id,omitempty"`
}

// MovementRepository implements gateway.MovementRepository on MongoDB.
// The collection is append-only: movements are inserted once and never updated.
type MovementRepository struct {
	collection *mongo.Collection
}

// NewMovementRepository creates the repository over the "movements" collection.
func NewMovementRepository(client *mongo.Client, dbName string) *MovementRepository {
	return &MovementRepository{
		collection: client.Database(dbName).Collection("movements"),
	}
}

// Save inserts the movement, assigning an ID when the caller left it empty.
func (r *MovementRepository) Save(ctx context.Context, movement *domain.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}

	if _, err := r.collection.InsertOne(ctx, toDocument(movement)); err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}
	return nil
}

// FindAllOrderedByDateDesc returns every movement, most recent first.
func (r *MovementRepository) FindAllOrderedByDateDesc(ctx context.Context) ([]domain.Movement, error) {
	return r.find(ctx, bson.D{})
}

// FindByAccountOrderedByDateDesc returns movements touching the account on
// either side, most recent first.
func (r *MovementRepository) FindByAccountOrderedByDateDesc(ctx context.Context, accountID string) ([]domain.Movement, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "source_account_id", Value: accountID}},
		bson.D{{Key: "destination_account_id", Value: accountID}},
	}}}
	return r.find(ctx, filter)
}

// FindByKindOrderedByDateDesc returns movements of one kind, most recent first.
func (r *MovementRepository) FindByKindOrderedByDateDesc(ctx context.Context, kind domain.MovementKind) ([]domain.Movement, error) {
	return r.find(ctx, bson.D{{Key: "kind", Value: string(kind)}})
}

func (r *MovementRepository) find(ctx context.Context, filter bson.D) ([]domain.Movement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []movementDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode movements: %w", err)
	}

	movements := make([]domain.Movement, 0, len(docs))
	for _, doc := range docs {
		movement, err := toDomain(doc)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}
	return movements, nil
}

func toDocument(m *domain.Movement) movementDocument {
	return movementDocument{
		ID:                   m.ID,
		Kind:                 string(m.Kind),
		Amount:               m.Amount.String(),
		RecordedAt:           m.RecordedAt,
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
	}
}

func toDomain(doc movementDocument) (domain.Movement, error) {
	amount, err := decimal.NewFromString(doc.Amount)
	if err != nil {
		return domain.Movement{}, fmt.Errorf("movement %s has malformed amount %q: %w", doc.ID, doc.Amount, err)
	}
	return domain.Movement{
		ID:                   doc.ID,
		Kind:                 domain.MovementKind(doc.Kind),
		Amount:               amount,
		RecordedAt:           doc.RecordedAt,
		SourceAccountID:      doc.SourceAccountID,
		DestinationAccountID: doc.DestinationAccountID,
	}, nil
}

var _ gateway.MovementRepository = (*MovementRepository)(nil)
