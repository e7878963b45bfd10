package pricing

import (
	"time"

	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionUsage is the append-only ledger of promotion redemptions,
// keyed by user for enforcing per-user caps
type PromotionUsage struct {
	shared.BaseEntity
	PromotionID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_promo_usage_promo_user,priority:1"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_promo_usage_promo_user,priority:2"`
	DiscountApplied decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RedeemedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PromotionUsage) TableName() string {
	return "promotion_usages"
}

// NewPromotionUsage records a redemption by a user
func NewPromotionUsage(promotionID, userID uuid.UUID, discountApplied decimal.Decimal) *PromotionUsage {
	return &PromotionUsage{
		BaseEntity:      shared.NewBaseEntity(),
		PromotionID:     promotionID,
		UserID:          userID,
		DiscountApplied: discountApplied,
		RedeemedAt:      time.Now().UTC(),
	}
}
