package demand

import (
	"context"
	"time"

	"github.com/cruisehub/backend/internal/domain/shared/strategy"
	"github.com/shopspring/decimal"
)

// Weights control how much each signal contributes to the composite
// score. They must sum to 1.
type Weights struct {
	BookingVelocity float64
	LeadTime        float64
	Seasonality     float64
}

// DefaultWeights favor the booking-velocity signal, which is the most
// direct read on demand
func DefaultWeights() Weights {
	return Weights{
		BookingVelocity: 0.5,
		LeadTime:        0.3,
		Seasonality:     0.2,
	}
}

// Bands are the score cutoffs for demand levels: scores at or above
// High band as high demand, at or above Medium as medium, below as low
type Bands struct {
	High   float64
	Medium float64
}

// DefaultBands returns the standard banding
func DefaultBands() Bands {
	return Bands{High: 70, Medium: 40}
}

// DefaultVelocityWindow is the trailing window over which booking
// velocity is read
const DefaultVelocityWindow = 7 * 24 * time.Hour

// velocitySaturationPerDay is the sustained bookings-per-day rate at
// which the velocity signal maxes out
const velocitySaturationPerDay = 25.0 / 7

// CompositeDemandScorer scores demand from booking velocity, departure
// lead time and seasonality. Missing signals score zero for their
// component rather than failing, so sparse data degrades toward low
// demand.
type CompositeDemandScorer struct {
	strategy.BaseStrategy
	weights Weights
	bands   Bands
	window  time.Duration
}

// NewCompositeDemandScorer creates a scorer with the given weights,
// bands and velocity window. A non-positive window falls back to
// DefaultVelocityWindow.
func NewCompositeDemandScorer(weights Weights, bands Bands, window time.Duration) *CompositeDemandScorer {
	if window <= 0 {
		window = DefaultVelocityWindow
	}
	return &CompositeDemandScorer{
		BaseStrategy: strategy.NewBaseStrategy(
			"composite_demand",
			strategy.StrategyTypeDemand,
			"Weighted composite of booking velocity, lead time and seasonality",
		),
		weights: weights,
		bands:   bands,
		window:  window,
	}
}

// NewDefaultDemandScorer creates a scorer with default weights, bands
// and velocity window
func NewDefaultDemandScorer() *CompositeDemandScorer {
	return NewCompositeDemandScorer(DefaultWeights(), DefaultBands(), DefaultVelocityWindow)
}

// Score computes the composite demand signal for a sailing
func (s *CompositeDemandScorer) Score(_ context.Context, demandCtx strategy.DemandContext) (strategy.DemandSignal, error) {
	score := s.weights.BookingVelocity*velocityScore(demandCtx.RecentBookings, s.saturation()) +
		s.weights.LeadTime*leadTimeScore(demandCtx.DepartureDate, demandCtx.Now) +
		s.weights.Seasonality*seasonalityScore(demandCtx.DepartureDate)

	return strategy.DemandSignal{
		Score: decimal.NewFromFloat(score).Round(2),
		Level: s.band(score),
	}, nil
}

func (s *CompositeDemandScorer) band(score float64) strategy.DemandLevel {
	switch {
	case score >= s.bands.High:
		return strategy.DemandLevelHigh
	case score >= s.bands.Medium:
		return strategy.DemandLevelMedium
	default:
		return strategy.DemandLevelLow
	}
}

// saturation is the booking count at which the velocity signal maxes
// out: the per-day saturation rate sustained over the configured window
func (s *CompositeDemandScorer) saturation() float64 {
	return velocitySaturationPerDay * s.window.Hours() / 24
}

// velocityScore scales the windowed booking count linearly, saturating
// at the given count
func velocityScore(recentBookings int, saturation float64) float64 {
	if recentBookings <= 0 {
		return 0
	}
	if float64(recentBookings) >= saturation {
		return 100
	}
	return float64(recentBookings) / saturation * 100
}

// leadTimeScore scores how close the sailing is: imminent departures
// with open demand score highest. A missing departure date contributes
// nothing.
func leadTimeScore(departure *time.Time, now time.Time) float64 {
	if departure == nil {
		return 0
	}
	days := departure.Sub(now).Hours() / 24
	switch {
	case days < 0:
		return 0
	case days <= 30:
		return 100
	case days <= 90:
		return 70
	case days <= 180:
		return 40
	default:
		return 20
	}
}

// seasonalityScore scores the departure month: summer and the December
// holidays are peak cruise season
func seasonalityScore(departure *time.Time) float64 {
	if departure == nil {
		return 0
	}
	switch departure.Month() {
	case time.June, time.July, time.August, time.December:
		return 100
	case time.April, time.May, time.September, time.October:
		return 60
	default:
		return 30
	}
}

// Ensure CompositeDemandScorer implements DemandScorer
var _ strategy.DemandScorer = (*CompositeDemandScorer)(nil)
