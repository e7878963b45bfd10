package pricing

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PricingRuleRepository defines the interface for pricing rule persistence
type PricingRuleRepository interface {
	// FindByID finds a rule by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*PricingRule, error)

	// FindByName finds a rule by its unique name
	FindByName(ctx context.Context, name string) (*PricingRule, error)

	// FindAll finds all rules matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PricingRule, error)

	// ListActive returns all active rules ordered by priority descending
	ListActive(ctx context.Context) ([]PricingRule, error)

	// Save creates or updates a rule
	Save(ctx context.Context, rule *PricingRule) error

	// Delete deletes a rule
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts rules matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByName checks if a rule with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
