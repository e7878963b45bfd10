package pricing

import (
	"context"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/shared/strategy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CruisePrice is the catalog's answer for a cruise's list price
type CruisePrice struct {
	BasePrice decimal.Decimal
	Currency  string
}

// CatalogProvider resolves cruise base prices and cabin class
// multipliers. Implementations return ErrCruiseNotFound when the cruise
// ID is unknown.
type CatalogProvider interface {
	GetBasePrice(ctx context.Context, cruiseID uuid.UUID) (CruisePrice, error)
	GetCategoryMultiplier(ctx context.Context, category catalog.CabinCategory) (decimal.Decimal, error)
}

// Capacity describes cabin availability for one cruise/category pair
type Capacity struct {
	Total     int
	Remaining int
}

// InventoryProvider exposes cabin capacity. The boolean is false when
// no inventory is tracked for the pair; the assessor treats that as
// ample availability rather than an error.
type InventoryProvider interface {
	GetCapacity(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (Capacity, bool, error)
}

// DemandProvider exposes the demand signal for a sailing. A missing or
// unknown signal resolves to DemandLevelLow, never an error.
type DemandProvider interface {
	GetDemandSignal(ctx context.Context, cruiseID uuid.UUID, departureDate *time.Time) (strategy.DemandSignal, error)
}
