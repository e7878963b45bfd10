package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/inventory"
	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/cruisehub/backend/internal/domain/shared/strategy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// repoCatalogProvider answers base price lookups from the cruise
// repository. Inactive cruises are not priceable and resolve to
// ErrCruiseNotFound, same as unknown IDs.
type repoCatalogProvider struct {
	cruises catalog.CruiseRepository
}

// NewCatalogProvider adapts a cruise repository to the pricing engine's
// catalog port
func NewCatalogProvider(cruises catalog.CruiseRepository) pricing.CatalogProvider {
	return &repoCatalogProvider{cruises: cruises}
}

func (p *repoCatalogProvider) GetBasePrice(ctx context.Context, cruiseID uuid.UUID) (pricing.CruisePrice, error) {
	cruise, err := p.cruises.FindByID(ctx, cruiseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return pricing.CruisePrice{}, pricing.ErrCruiseNotFound
		}
		return pricing.CruisePrice{}, err
	}
	if !cruise.IsActive() {
		return pricing.CruisePrice{}, pricing.ErrCruiseNotFound
	}
	return pricing.CruisePrice{
		BasePrice: cruise.BasePrice,
		Currency:  cruise.Currency,
	}, nil
}

func (p *repoCatalogProvider) GetCategoryMultiplier(ctx context.Context, category catalog.CabinCategory) (decimal.Decimal, error) {
	if !category.IsValid() {
		return decimal.Decimal{}, pricing.ErrInvalidCabinCategory
	}
	return category.Multiplier(), nil
}

// repoInventoryProvider answers capacity lookups from the inventory
// repository. A missing inventory row means the pair is untracked, not
// an error.
type repoInventoryProvider struct {
	inventories inventory.CabinInventoryRepository
}

// NewInventoryProvider adapts an inventory repository to the pricing
// engine's inventory port
func NewInventoryProvider(inventories inventory.CabinInventoryRepository) pricing.InventoryProvider {
	return &repoInventoryProvider{inventories: inventories}
}

func (p *repoInventoryProvider) GetCapacity(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (pricing.Capacity, bool, error) {
	inv, err := p.inventories.FindByCruiseAndCategory(ctx, cruiseID, category)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return pricing.Capacity{}, false, nil
		}
		return pricing.Capacity{}, false, err
	}
	return pricing.Capacity{
		Total:     inv.TotalCabins,
		Remaining: inv.RemainingCabins,
	}, true, nil
}

// scorerDemandProvider feeds the demand scorer from persisted state.
// Booking velocity is approximated by the number of cabins sold across
// all categories of the cruise; the lead-time signal comes from the
// cruise's departure date when the caller did not supply one.
type scorerDemandProvider struct {
	cruises     catalog.CruiseRepository
	inventories inventory.CabinInventoryRepository
	scorer      strategy.DemandScorer
}

// NewDemandProvider adapts the cruise and inventory repositories plus a
// demand scorer to the pricing engine's demand port
func NewDemandProvider(
	cruises catalog.CruiseRepository,
	inventories inventory.CabinInventoryRepository,
	scorer strategy.DemandScorer,
) pricing.DemandProvider {
	return &scorerDemandProvider{
		cruises:     cruises,
		inventories: inventories,
		scorer:      scorer,
	}
}

func (p *scorerDemandProvider) GetDemandSignal(ctx context.Context, cruiseID uuid.UUID, departureDate *time.Time) (strategy.DemandSignal, error) {
	if departureDate == nil {
		cruise, err := p.cruises.FindByID(ctx, cruiseID)
		if err == nil {
			d := cruise.DepartureDate
			departureDate = &d
		} else if !errors.Is(err, shared.ErrNotFound) {
			return strategy.DemandSignal{}, err
		}
	}

	recentBookings := 0
	rows, err := p.inventories.FindByCruise(ctx, cruiseID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return strategy.DemandSignal{}, err
	}
	for _, row := range rows {
		recentBookings += row.TotalCabins - row.RemainingCabins
	}

	return p.scorer.Score(ctx, strategy.DemandContext{
		CruiseID:       cruiseID,
		DepartureDate:  departureDate,
		RecentBookings: recentBookings,
		Now:            time.Now().UTC(),
	})
}
