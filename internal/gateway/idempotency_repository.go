package gateway

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_idempotency_repository.go -package=mock_gateway -source=idempotency_repository.go

// CachedResponse is the HTTP response snapshot stored per Idempotency-Key.
type CachedResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string][]string
}

// IdempotencyRepository caches responses of mutating endpoints so a retried
// request with the same Idempotency-Key does not effect a second movement.
type IdempotencyRepository interface {
	// Get returns the cached response, or (nil, nil) on a cache miss.
	Get(ctx context.Context, key string) (*CachedResponse, error)

	// Save stores the response with a TTL.
	Save(ctx context.Context, key string, response CachedResponse, ttl time.Duration) error
}
