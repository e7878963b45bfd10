package cache

import (
	"context"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/google/uuid"
)

// PriceSnapshot is a cached single-cabin price for a cruise/category
// pair, used both for serving repeat quotes and for detecting price
// movement in the recalculation job
type PriceSnapshot struct {
	Price      pricing.Price `json:"price"`
	ComputedAt time.Time     `json:"computed_at"`
}

// PriceSnapshotStore caches price snapshots keyed by cruise and category
type PriceSnapshotStore interface {
	// Get returns the snapshot for a pair; the boolean is false on a miss
	Get(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (*PriceSnapshot, bool, error)

	// Set stores a snapshot with the given TTL
	Set(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, snapshot PriceSnapshot, ttl time.Duration) error

	// Invalidate drops the snapshot for a pair
	Invalidate(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) error

	// Ping reports whether the backing store is reachable
	Ping() error

	// Close releases any underlying resources
	Close() error
}
