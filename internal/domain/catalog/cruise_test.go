package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCruise(t *testing.T) {
	departure := time.Now().Add(60 * 24 * time.Hour)

	t.Run("creates active cruise with upper-cased code", func(t *testing.T) {
		cruise, err := NewCruise(" med-2026 ", "Mediterranean Explorer", departure, 7, decimal.NewFromInt(1000))
		require.NoError(t, err)

		assert.Equal(t, "MED-2026", cruise.Code)
		assert.Equal(t, CruiseStatusActive, cruise.Status)
		assert.Equal(t, "USD", cruise.Currency)
		assert.True(t, cruise.IsActive())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := NewCruise("", "Name", departure, 7, decimal.NewFromInt(1000))
		assert.Error(t, err)

		_, err = NewCruise("CODE", "", departure, 7, decimal.NewFromInt(1000))
		assert.Error(t, err)

		_, err = NewCruise("CODE", "Name", departure, 0, decimal.NewFromInt(1000))
		assert.Error(t, err)

		_, err = NewCruise("CODE", "Name", departure, 7, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestCruise_UpdateBasePrice(t *testing.T) {
	cruise, err := NewCruise("C1", "Test", time.Now().Add(time.Hour), 7, decimal.NewFromInt(1000))
	require.NoError(t, err)
	version := cruise.GetVersion()

	require.NoError(t, cruise.UpdateBasePrice(decimal.NewFromInt(1200)))
	assert.True(t, decimal.NewFromInt(1200).Equal(cruise.BasePrice))
	assert.Equal(t, version+1, cruise.GetVersion())

	assert.Error(t, cruise.UpdateBasePrice(decimal.NewFromInt(-5)))
}

func TestCruise_DaysUntilDeparture(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cruise, err := NewCruise("C1", "Test", now.Add(10*24*time.Hour), 7, decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.Equal(t, 10, cruise.DaysUntilDeparture(now))

	past, err := NewCruise("C2", "Sailed", now.Add(-24*time.Hour), 7, decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.Equal(t, 0, past.DaysUntilDeparture(now))
}

func TestCabinCategory(t *testing.T) {
	for _, c := range AllCabinCategories() {
		assert.True(t, c.IsValid())
		assert.True(t, c.Multiplier().GreaterThanOrEqual(decimal.NewFromInt(1)))
	}
	assert.False(t, CabinCategory("penthouse").IsValid())
	assert.True(t, CabinCategory("penthouse").Multiplier().Equal(decimal.NewFromInt(1)))

	assert.True(t, CabinBalcony.Multiplier().Equal(decimal.NewFromFloat(1.6)))
	assert.True(t, CabinSuite.Multiplier().Equal(decimal.NewFromFloat(2.5)))
}
