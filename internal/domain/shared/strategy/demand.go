package strategy

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemandLevel represents the assessed demand band for a sailing
type DemandLevel string

const (
	DemandLevelHigh   DemandLevel = "high"
	DemandLevelMedium DemandLevel = "medium"
	DemandLevelLow    DemandLevel = "low"
)

// String returns the string representation of the demand level
func (l DemandLevel) String() string {
	return string(l)
}

// DemandContext carries the raw signals a scorer may consume.
// DepartureDate is nil when the caller did not supply one; scorers must
// treat a missing date as an absent lead-time signal, not an error.
type DemandContext struct {
	CruiseID       uuid.UUID
	DepartureDate  *time.Time
	RecentBookings int // bookings observed over the trailing window
	Now            time.Time
}

// DemandSignal is the scorer's output: a composite score (0-100) and
// the level it banded into
type DemandSignal struct {
	Score decimal.Decimal
	Level DemandLevel
}

// DemandScorer converts raw demand signals into a score and level.
// The score-to-level banding drives price directly, so implementations
// must keep it configurable or clearly documented.
type DemandScorer interface {
	Strategy
	// Score computes the demand signal for a sailing. It never fails on
	// missing input signals; absent data resolves to DemandLevelLow.
	Score(ctx context.Context, demandCtx DemandContext) (DemandSignal, error)
}
