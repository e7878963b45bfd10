package pricing

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PriceHistoryRepository persists append-only price change records.
// There is deliberately no update or delete.
type PriceHistoryRepository interface {
	// Append stores a new history record
	Append(ctx context.Context, record *PriceHistory) error

	// FindByCruiseAndCategory lists history for a cruise/category pair,
	// most recent first
	FindByCruiseAndCategory(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, filter shared.Filter) ([]PriceHistory, error)

	// CountByCruiseAndCategory counts history rows for a pair
	CountByCruiseAndCategory(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (int64, error)
}
