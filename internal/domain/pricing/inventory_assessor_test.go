package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryAssessor_Levels(t *testing.T) {
	rule, err := NewPricingRule("test", 0, RuleConfig{})
	require.NoError(t, err)

	tests := []struct {
		name           string
		remaining      int
		total          int
		wantLevel      ScarcityLevel
		wantMultiplier decimal.Decimal
	}{
		{"below low threshold", 25, 100, ScarcityLow, DefaultInventoryMultiplierLow},
		{"below medium threshold", 45, 100, ScarcityMedium, DefaultInventoryMultiplierMedium},
		{"below high threshold", 65, 100, ScarcityHigh, DefaultInventoryMultiplierHigh},
		{"ample availability", 90, 100, ScarcityAmple, decimal.NewFromInt(1)},
		{"sold out", 0, 100, ScarcityLow, DefaultInventoryMultiplierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockInventoryProvider)
			provider.On("GetCapacity", mock.Anything, mock.Anything, mock.Anything).
				Return(Capacity{Total: tt.total, Remaining: tt.remaining}, true, nil)

			assessment := NewInventoryAssessor(provider).
				Assess(context.Background(), uuid.New(), catalog.CabinInside, rule)

			assert.Equal(t, tt.wantLevel, assessment.Level)
			assert.True(t, tt.wantMultiplier.Equal(assessment.Multiplier),
				"want %s got %s", tt.wantMultiplier, assessment.Multiplier)
		})
	}
}

func TestInventoryAssessor_ThresholdBoundaryIsStrict(t *testing.T) {
	// Availability exactly on a threshold falls into the
	// higher-availability bucket: the comparison is <, not <=.
	rule, err := NewPricingRule("test", 0, RuleConfig{})
	require.NoError(t, err)

	tests := []struct {
		name      string
		remaining int
		wantLevel ScarcityLevel
	}{
		{"exactly at low threshold", 30, ScarcityMedium},
		{"exactly at medium threshold", 50, ScarcityHigh},
		{"exactly at high threshold", 70, ScarcityAmple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockInventoryProvider)
			provider.On("GetCapacity", mock.Anything, mock.Anything, mock.Anything).
				Return(Capacity{Total: 100, Remaining: tt.remaining}, true, nil)

			assessment := NewInventoryAssessor(provider).
				Assess(context.Background(), uuid.New(), catalog.CabinInside, rule)

			assert.Equal(t, tt.wantLevel, assessment.Level)
		})
	}
}

func TestInventoryAssessor_MissingDataIsNonPunitive(t *testing.T) {
	rule, err := NewPricingRule("test", 0, RuleConfig{})
	require.NoError(t, err)

	t.Run("no inventory tracked", func(t *testing.T) {
		provider := new(MockInventoryProvider)
		provider.On("GetCapacity", mock.Anything, mock.Anything, mock.Anything).
			Return(Capacity{}, false, nil)

		assessment := NewInventoryAssessor(provider).
			Assess(context.Background(), uuid.New(), catalog.CabinInside, rule)

		assert.Equal(t, ScarcityAmple, assessment.Level)
		assert.True(t, assessment.Multiplier.Equal(decimal.NewFromInt(1)))
	})

	t.Run("provider error", func(t *testing.T) {
		provider := new(MockInventoryProvider)
		provider.On("GetCapacity", mock.Anything, mock.Anything, mock.Anything).
			Return(Capacity{}, false, errors.New("store unavailable"))

		assessment := NewInventoryAssessor(provider).
			Assess(context.Background(), uuid.New(), catalog.CabinInside, rule)

		assert.Equal(t, ScarcityAmple, assessment.Level)
		assert.True(t, assessment.Multiplier.Equal(decimal.NewFromInt(1)))
	})
}
