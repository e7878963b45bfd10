package pricing

import (
	"context"
	"testing"

	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decimalPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestRuleService_Create(t *testing.T) {
	t.Run("creates rule with defaults for omitted knobs", func(t *testing.T) {
		repo := new(MockPricingRuleRepository)
		svc := NewRuleService(repo)

		repo.On("ExistsByName", mock.Anything, "early-bird").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*pricing.PricingRule")).Return(nil)

		resp, err := svc.Create(context.Background(), CreateRuleRequest{
			Name:     "early-bird",
			Priority: 10,
			Knobs: RuleKnobs{
				DemandMultiplierHigh: decimalPtr(1.40),
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "early-bird", resp.Name)
		assert.Equal(t, 10, resp.Priority)
		assert.True(t, resp.IsActive)
		assert.True(t, decimal.NewFromFloat(1.40).Equal(resp.DemandMultiplierHigh))
		assert.True(t, pricing.DefaultInventoryMultiplierLow.Equal(resp.InventoryMultiplierLow))
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		repo := new(MockPricingRuleRepository)
		svc := NewRuleService(repo)

		repo.On("ExistsByName", mock.Anything, "early-bird").Return(true, nil)

		_, err := svc.Create(context.Background(), CreateRuleRequest{Name: "early-bird"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid scope category", func(t *testing.T) {
		repo := new(MockPricingRuleRepository)
		svc := NewRuleService(repo)

		repo.On("ExistsByName", mock.Anything, "scoped").Return(false, nil)

		_, err := svc.Create(context.Background(), CreateRuleRequest{
			Name:                 "scoped",
			ApplicableCategories: []string{"penthouse"},
		})
		assert.ErrorIs(t, err, pricing.ErrInvalidCabinCategory)
	})
}

func TestRuleService_Update(t *testing.T) {
	t.Run("applies partial knob changes", func(t *testing.T) {
		repo := new(MockPricingRuleRepository)
		svc := NewRuleService(repo)

		rule, err := pricing.NewPricingRule("standard", 0, pricing.RuleConfig{})
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, rule.ID).Return(rule, nil)
		repo.On("Save", mock.Anything, rule).Return(nil)

		newPriority := 5
		resp, err := svc.Update(context.Background(), rule.ID, UpdateRuleRequest{
			Priority: &newPriority,
			Knobs: RuleKnobs{
				GroupDiscount11Plus: decimalPtr(0.20),
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 5, resp.Priority)
		assert.True(t, decimal.NewFromFloat(0.20).Equal(resp.GroupDiscount11Plus))
		assert.True(t, pricing.DefaultGroupDiscount3To5.Equal(resp.GroupDiscount3To5))
	})

	t.Run("rejects knobs that break invariants", func(t *testing.T) {
		repo := new(MockPricingRuleRepository)
		svc := NewRuleService(repo)

		rule, err := pricing.NewPricingRule("standard", 0, pricing.RuleConfig{})
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, rule.ID).Return(rule, nil)

		_, err = svc.Update(context.Background(), rule.ID, UpdateRuleRequest{
			Knobs: RuleKnobs{
				InventoryThresholdLow: decimalPtr(90),
			},
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("replaces scope when provided", func(t *testing.T) {
		repo := new(MockPricingRuleRepository)
		svc := NewRuleService(repo)

		rule, err := pricing.NewPricingRule("scoped", 0, pricing.RuleConfig{})
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, rule.ID).Return(rule, nil)
		repo.On("Save", mock.Anything, rule).Return(nil)

		cruiseID := uuid.New()
		cruises := []uuid.UUID{cruiseID}
		resp, err := svc.Update(context.Background(), rule.ID, UpdateRuleRequest{
			ApplicableCruises: &cruises,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{cruiseID.String()}, resp.ApplicableCruises)
	})
}

func TestRuleService_ActivateDeactivate(t *testing.T) {
	repo := new(MockPricingRuleRepository)
	svc := NewRuleService(repo)

	rule, err := pricing.NewPricingRule("standard", 0, pricing.RuleConfig{})
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, rule.ID).Return(rule, nil)
	repo.On("Save", mock.Anything, rule).Return(nil)

	resp, err := svc.Deactivate(context.Background(), rule.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	resp, err = svc.Activate(context.Background(), rule.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}
