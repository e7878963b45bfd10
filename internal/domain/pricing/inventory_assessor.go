package pricing

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScarcityLevel classifies remaining capacity for the audit trail
type ScarcityLevel string

const (
	ScarcityLow    ScarcityLevel = "low"    // below the low threshold: most scarce
	ScarcityMedium ScarcityLevel = "medium"
	ScarcityHigh   ScarcityLevel = "high"
	ScarcityAmple  ScarcityLevel = "ample" // at or above the high threshold: no surcharge
)

// InventoryAssessment is the assessor's output: the multiplier to apply
// and the observed availability for the audit trail
type InventoryAssessment struct {
	Multiplier          decimal.Decimal
	Level               ScarcityLevel
	PercentageAvailable decimal.Decimal
}

// InventoryAssessor converts remaining cabin capacity into a scarcity
// level and price multiplier. Thresholds and multipliers come from the
// selected rule; the assessor holds no business constants of its own.
type InventoryAssessor struct {
	inventory InventoryProvider
}

// NewInventoryAssessor creates an inventory assessor
func NewInventoryAssessor(inventory InventoryProvider) *InventoryAssessor {
	return &InventoryAssessor{inventory: inventory}
}

// Assess never fails: unknown inventory defaults to ample availability
// with multiplier 1.0, the non-punitive case. Threshold comparison is
// strict less-than, so availability exactly on a cutoff falls into the
// higher-availability bucket.
func (a *InventoryAssessor) Assess(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, rule *PricingRule) InventoryAssessment {
	ample := InventoryAssessment{
		Multiplier:          decimal.NewFromInt(1),
		Level:               ScarcityAmple,
		PercentageAvailable: decimal.NewFromInt(100),
	}

	capacity, found, err := a.inventory.GetCapacity(ctx, cruiseID, category)
	if err != nil || !found || capacity.Total <= 0 {
		return ample
	}

	pct := decimal.NewFromInt(int64(capacity.Remaining)).
		Div(decimal.NewFromInt(int64(capacity.Total))).
		Mul(decimal.NewFromInt(100))

	assessment := ample
	assessment.PercentageAvailable = pct

	switch {
	case pct.LessThan(rule.InventoryThresholdLow):
		assessment.Multiplier = rule.InventoryMultiplierLow
		assessment.Level = ScarcityLow
	case pct.LessThan(rule.InventoryThresholdMedium):
		assessment.Multiplier = rule.InventoryMultiplierMedium
		assessment.Level = ScarcityMedium
	case pct.LessThan(rule.InventoryThresholdHigh):
		assessment.Multiplier = rule.InventoryMultiplierHigh
		assessment.Level = ScarcityHigh
	}

	return assessment
}
