package pricing

import (
	"context"
	"time"

	"github.com/cruisehub/backend/internal/domain/shared/strategy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemandAssessment is the assessor's output: the multiplier to apply
// and the level it was derived from
type DemandAssessment struct {
	Multiplier decimal.Decimal
	Level      strategy.DemandLevel
}

// DemandAssessor maps the external demand signal to a price multiplier
// from the selected rule. Scoring internals (booking velocity, lead
// time, seasonality) live behind the DemandProvider; this assessor owns
// only the level-to-multiplier mapping.
type DemandAssessor struct {
	demand DemandProvider
}

// NewDemandAssessor creates a demand assessor
func NewDemandAssessor(demand DemandProvider) *DemandAssessor {
	return &DemandAssessor{demand: demand}
}

// Assess never fails: an absent or erroring signal resolves to low
// demand and the rule's low-demand multiplier.
func (a *DemandAssessor) Assess(ctx context.Context, cruiseID uuid.UUID, departureDate *time.Time, rule *PricingRule) DemandAssessment {
	level := strategy.DemandLevelLow

	signal, err := a.demand.GetDemandSignal(ctx, cruiseID, departureDate)
	if err == nil && signal.Level != "" {
		level = signal.Level
	}

	return DemandAssessment{
		Multiplier: rule.DemandMultiplier(level),
		Level:      level,
	}
}
