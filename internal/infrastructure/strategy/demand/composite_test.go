package demand

import (
	"context"
	"testing"
	"time"

	"github.com/cruisehub/backend/internal/domain/shared/strategy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeDemandScorer_Score(t *testing.T) {
	scorer := NewDefaultDemandScorer()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no signals scores low", func(t *testing.T) {
		signal, err := scorer.Score(context.Background(), strategy.DemandContext{
			CruiseID: uuid.New(),
			Now:      now,
		})
		require.NoError(t, err)
		assert.Equal(t, strategy.DemandLevelLow, signal.Level)
		assert.True(t, signal.Score.IsZero())
	})

	t.Run("hot imminent summer sailing scores high", func(t *testing.T) {
		departure := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
		signal, err := scorer.Score(context.Background(), strategy.DemandContext{
			CruiseID:       uuid.New(),
			DepartureDate:  &departure,
			RecentBookings: 30,
			Now:            departure.Add(-20 * 24 * time.Hour),
		})
		require.NoError(t, err)
		// 0.5*100 + 0.3*100 + 0.2*100 = 100
		assert.Equal(t, strategy.DemandLevelHigh, signal.Level)
	})

	t.Run("moderate bookings on a distant sailing score medium", func(t *testing.T) {
		departure := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
		signal, err := scorer.Score(context.Background(), strategy.DemandContext{
			CruiseID:       uuid.New(),
			DepartureDate:  &departure,
			RecentBookings: 10,
			Now:            now,
		})
		require.NoError(t, err)
		// 0.5*40 + 0.3*40 + 0.2*100 = 52
		assert.Equal(t, strategy.DemandLevelMedium, signal.Level)
	})

	t.Run("past departure contributes no lead-time signal", func(t *testing.T) {
		departure := now.Add(-24 * time.Hour)
		signal, err := scorer.Score(context.Background(), strategy.DemandContext{
			CruiseID:      uuid.New(),
			DepartureDate: &departure,
			Now:           now,
		})
		require.NoError(t, err)
		assert.Equal(t, strategy.DemandLevelLow, signal.Level)
	})
}

func TestCompositeDemandScorer_VelocityWindow(t *testing.T) {
	ctx := strategy.DemandContext{
		CruiseID:       uuid.New(),
		RecentBookings: 25,
		Now:            time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("saturation scales with the window", func(t *testing.T) {
		week := NewCompositeDemandScorer(DefaultWeights(), DefaultBands(), DefaultVelocityWindow)
		fortnight := NewCompositeDemandScorer(DefaultWeights(), DefaultBands(), 14*24*time.Hour)

		weekSignal, err := week.Score(context.Background(), ctx)
		require.NoError(t, err)
		fortnightSignal, err := fortnight.Score(context.Background(), ctx)
		require.NoError(t, err)

		// 25 bookings saturate a 7d window (0.5*100) but only half-fill
		// a 14d one (0.5*50)
		assert.Equal(t, "50", weekSignal.Score.String())
		assert.Equal(t, "25", fortnightSignal.Score.String())
	})

	t.Run("non-positive window falls back to the default", func(t *testing.T) {
		scorer := NewCompositeDemandScorer(DefaultWeights(), DefaultBands(), 0)
		signal, err := scorer.Score(context.Background(), ctx)
		require.NoError(t, err)
		assert.Equal(t, "50", signal.Score.String())
	})
}

func TestCompositeDemandScorer_BandEdges(t *testing.T) {
	scorer := NewDefaultDemandScorer()
	assert.Equal(t, strategy.DemandLevelHigh, scorer.band(70))
	assert.Equal(t, strategy.DemandLevelMedium, scorer.band(69.9))
	assert.Equal(t, strategy.DemandLevelMedium, scorer.band(40))
	assert.Equal(t, strategy.DemandLevelLow, scorer.band(39.9))
}

func TestCompositeDemandScorer_Metadata(t *testing.T) {
	scorer := NewDefaultDemandScorer()
	assert.Equal(t, "composite_demand", scorer.Name())
	assert.Equal(t, strategy.StrategyTypeDemand, scorer.Type())
}
