package pricing

import (
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChangeReason classifies what drove a recorded price change
type ChangeReason string

const (
	ChangeReasonInventory ChangeReason = "inventory"
	ChangeReasonDemand    ChangeReason = "demand"
	ChangeReasonPromotion ChangeReason = "promotion"
	ChangeReasonManual    ChangeReason = "manual"
)

// IsValid returns true if the change reason is known
func (r ChangeReason) IsValid() bool {
	switch r {
	case ChangeReasonInventory, ChangeReasonDemand, ChangeReasonPromotion, ChangeReasonManual:
		return true
	default:
		return false
	}
}

// PriceHistory is an append-only audit record of a price change for a
// cruise/category pair. Rows are never mutated or deleted.
type PriceHistory struct {
	shared.BaseEntity
	CruiseID      uuid.UUID             `gorm:"type:uuid;not null;index:idx_price_history_cruise_category,priority:1"`
	Category      catalog.CabinCategory `gorm:"type:varchar(20);not null;index:idx_price_history_cruise_category,priority:2"`
	OldPrice      decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	NewPrice      decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	ChangeReason  ChangeReason          `gorm:"type:varchar(20);not null"`
	ChangeDetails string                `gorm:"type:text"`
	RecordedAt    time.Time             `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PriceHistory) TableName() string {
	return "price_history"
}

// NewPriceHistory records a price change
func NewPriceHistory(cruiseID uuid.UUID, category catalog.CabinCategory, oldPrice, newPrice decimal.Decimal, reason ChangeReason, details string) *PriceHistory {
	return &PriceHistory{
		BaseEntity:    shared.NewBaseEntity(),
		CruiseID:      cruiseID,
		Category:      category,
		OldPrice:      oldPrice,
		NewPrice:      newPrice,
		ChangeReason:  reason,
		ChangeDetails: details,
		RecordedAt:    time.Now().UTC(),
	}
}
