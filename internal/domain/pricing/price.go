package pricing

import (
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceParams is the input to a price calculation
type PriceParams struct {
	CruiseID      uuid.UUID
	Category      catalog.CabinCategory
	NumCabins     int // defaults to 1 when zero
	PromoCode     string
	DepartureDate *time.Time
	UserID        *uuid.UUID
}

// PriceBreakdown itemizes the signed deltas that compose the final
// price. Each component is additive to Base; the sum always equals
// FinalPrice before the 2-decimal rounding of the total.
type PriceBreakdown struct {
	Base                decimal.Decimal `json:"base"`
	InventoryAdjustment decimal.Decimal `json:"inventory_adjustment"`
	DemandAdjustment    decimal.Decimal `json:"demand_adjustment"`
	GroupDiscount       decimal.Decimal `json:"group_discount"`
	PromotionDiscount   decimal.Decimal `json:"promotion_discount"`
}

// Price is the fully explained output of a calculation. AppliedRules
// lists, in application order, every factor that changed the price plus
// any promotion rejection, so the result renders directly as a price
// explanation.
type Price struct {
	FinalPrice   decimal.Decimal `json:"final_price"`
	Currency     string          `json:"currency"`
	Breakdown    PriceBreakdown  `json:"breakdown"`
	AppliedRules []string        `json:"applied_rules"`
}
