package inventory

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CabinInventoryRepository defines the interface for cabin inventory persistence
type CabinInventoryRepository interface {
	// FindByID finds inventory by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CabinInventory, error)

	// FindByCruiseAndCategory finds inventory for a cruise/category pair
	FindByCruiseAndCategory(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (*CabinInventory, error)

	// FindByCruise finds all inventory rows for a cruise
	FindByCruise(ctx context.Context, cruiseID uuid.UUID) ([]CabinInventory, error)

	// Save creates or updates an inventory row
	Save(ctx context.Context, inv *CabinInventory) error

	// Delete deletes an inventory row
	Delete(ctx context.Context, id uuid.UUID) error
}
