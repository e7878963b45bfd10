package pricing

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PromotionCodeRepository defines the interface for promotion persistence
type PromotionCodeRepository interface {
	// FindByID finds a promotion by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*PromotionCode, error)

	// FindByCode finds a promotion by code, matched case-insensitively.
	// Returns (nil, nil) when no such code exists: an unknown code is an
	// expected validation outcome, not a repository error.
	FindByCode(ctx context.Context, code string) (*PromotionCode, error)

	// FindAll finds all promotions matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PromotionCode, error)

	// Save creates or updates a promotion
	Save(ctx context.Context, promo *PromotionCode) error

	// Delete deletes a promotion
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts promotions matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a promotion with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Redeem atomically checks the global and per-user usage caps and
	// increments CurrentUses as one guarded update, then appends the
	// usage ledger row in the same transaction. Returns
	// shared.ErrInvalidState when either cap is already exhausted; two
	// concurrent redemptions can both pass Validate, but only one wins
	// here.
	Redeem(ctx context.Context, promotionID uuid.UUID, usage *PromotionUsage) error
}

// PromotionUsageRepository is the per-user redemption ledger consumed
// by the validator's per-user cap check
type PromotionUsageRepository interface {
	// CountByUser counts redemptions of a promotion by one user
	CountByUser(ctx context.Context, promotionID, userID uuid.UUID) (int64, error)

	// FindByPromotion lists redemptions of a promotion
	FindByPromotion(ctx context.Context, promotionID uuid.UUID, filter shared.Filter) ([]PromotionUsage, error)
}
