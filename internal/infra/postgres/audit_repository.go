package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRecord is one consumed movement event, kept verbatim for reconciliation.
type AuditRecord struct {
	MovementID string
	RoutingKey string
	Payload    []byte
}

// AuditRepository appends consumed movement events to the movement_audit table.
// The table is insert-only; rows are never updated or deleted.
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new instance backed by the given pool.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: pool}
}

// Save inserts one audit row.
func (r *AuditRepository) Save(ctx context.Context, record AuditRecord) error {
	const query = `
		INSERT INTO movement_audit (movement_id, routing_key, payload)
		VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, record.MovementID, record.RoutingKey, record.Payload); err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}
	return nil
}
