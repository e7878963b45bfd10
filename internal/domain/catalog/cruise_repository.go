package catalog

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CruiseRepository defines the interface for cruise persistence
type CruiseRepository interface {
	// FindByID finds a cruise by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Cruise, error)

	// FindByCode finds a cruise by its code
	FindByCode(ctx context.Context, code string) (*Cruise, error)

	// FindAll finds all cruises matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Cruise, error)

	// FindActive finds all cruises currently on sale
	FindActive(ctx context.Context) ([]Cruise, error)

	// Save creates or updates a cruise
	Save(ctx context.Context, cruise *Cruise) error

	// Delete deletes a cruise
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts cruises matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a cruise with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
