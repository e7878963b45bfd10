package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validPromo(t *testing.T, code string) *PromotionCode {
	t.Helper()
	promo, err := NewPromotionCode(code, DiscountTypePercentage, decimal.NewFromInt(15),
		time.Now().Add(-time.Hour), time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	return promo
}

func newValidator() (*PromotionValidator, *MockPromotionCodeRepository, *MockPromotionUsageRepository) {
	promos := new(MockPromotionCodeRepository)
	usages := new(MockPromotionUsageRepository)
	return NewPromotionValidator(promos, usages), promos, usages
}

func TestPromotionValidator_ValidCode(t *testing.T) {
	validator, promos, _ := newValidator()
	promo := validPromo(t, "SUMMER2025")
	promos.On("FindByCode", mock.Anything, "SUMMER2025").Return(promo, nil)

	result, err := validator.Validate(context.Background(), PromotionValidationInput{
		Code:        "summer2025",
		CruiseID:    uuid.New(),
		Category:    catalog.CabinBalcony,
		TotalAmount: decimal.NewFromInt(2000),
	})

	require.NoError(t, err)
	assert.True(t, result.IsValid)
	// 15% of 2000
	assert.True(t, decimal.NewFromInt(300).Equal(result.DiscountAmount), "got %s", result.DiscountAmount)
}

func TestPromotionValidator_RejectionOrder(t *testing.T) {
	cruiseID := uuid.New()
	otherCruise := uuid.New()
	userID := uuid.New()
	maxUses := 10
	perUser := 1
	minOrder := decimal.NewFromInt(2000)

	tests := []struct {
		name       string
		setup      func(t *testing.T) *PromotionCode
		input      PromotionValidationInput
		userUsages int64
		wantReason string
	}{
		{
			name:       "unknown code",
			setup:      func(t *testing.T) *PromotionCode { return nil },
			input:      PromotionValidationInput{Code: "NOPE", TotalAmount: decimal.NewFromInt(100)},
			wantReason: PromoReasonNotFound,
		},
		{
			name: "inactive code",
			setup: func(t *testing.T) *PromotionCode {
				p := validPromo(t, "X")
				p.Deactivate()
				return p
			},
			input:      PromotionValidationInput{Code: "X", TotalAmount: decimal.NewFromInt(100)},
			wantReason: PromoReasonInactive,
		},
		{
			name: "expired window",
			setup: func(t *testing.T) *PromotionCode {
				p, err := NewPromotionCode("X", DiscountTypeFixed, decimal.NewFromInt(50),
					time.Now().Add(-48*time.Hour), time.Now().Add(-24*time.Hour))
				require.NoError(t, err)
				return p
			},
			input:      PromotionValidationInput{Code: "X", TotalAmount: decimal.NewFromInt(100)},
			wantReason: PromoReasonExpired,
		},
		{
			name: "not yet valid",
			setup: func(t *testing.T) *PromotionCode {
				p, err := NewPromotionCode("X", DiscountTypeFixed, decimal.NewFromInt(50),
					time.Now().Add(24*time.Hour), time.Now().Add(48*time.Hour))
				require.NoError(t, err)
				return p
			},
			input:      PromotionValidationInput{Code: "X", TotalAmount: decimal.NewFromInt(100)},
			wantReason: PromoReasonExpired,
		},
		{
			name: "usage cap exhausted",
			setup: func(t *testing.T) *PromotionCode {
				p := validPromo(t, "X")
				require.NoError(t, p.WithUsageCaps(&maxUses, nil))
				p.CurrentUses = 10
				return p
			},
			input:      PromotionValidationInput{Code: "X", TotalAmount: decimal.NewFromInt(100)},
			wantReason: PromoReasonUsageLimit,
		},
		{
			name: "per-user cap exhausted",
			setup: func(t *testing.T) *PromotionCode {
				p := validPromo(t, "X")
				require.NoError(t, p.WithUsageCaps(nil, &perUser))
				return p
			},
			input:      PromotionValidationInput{Code: "X", TotalAmount: decimal.NewFromInt(100), UserID: &userID},
			userUsages: 1,
			wantReason: PromoReasonUserLimit,
		},
		{
			name: "below minimum order",
			setup: func(t *testing.T) *PromotionCode {
				p := validPromo(t, "X")
				require.NoError(t, p.WithMinOrderAmount(&minOrder))
				return p
			},
			input:      PromotionValidationInput{Code: "X", TotalAmount: decimal.NewFromInt(1920)},
			wantReason: PromoReasonMinOrder,
		},
		{
			name: "out of cruise scope",
			setup: func(t *testing.T) *PromotionCode {
				p := validPromo(t, "X")
				require.NoError(t, p.ScopeTo([]uuid.UUID{otherCruise}, nil))
				return p
			},
			input:      PromotionValidationInput{Code: "X", CruiseID: cruiseID, TotalAmount: decimal.NewFromInt(100)},
			wantReason: PromoReasonCruiseScope,
		},
		{
			name: "out of category scope",
			setup: func(t *testing.T) *PromotionCode {
				p := validPromo(t, "X")
				require.NoError(t, p.ScopeTo(nil, []catalog.CabinCategory{catalog.CabinSuite}))
				return p
			},
			input: PromotionValidationInput{
				Code: "X", CruiseID: cruiseID,
				Category: catalog.CabinInside, TotalAmount: decimal.NewFromInt(100),
			},
			wantReason: PromoReasonCategoryScope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator, promos, usages := newValidator()
			promo := tt.setup(t)
			if promo == nil {
				promos.On("FindByCode", mock.Anything, mock.Anything).Return(nil, nil)
			} else {
				promos.On("FindByCode", mock.Anything, mock.Anything).Return(promo, nil)
			}
			usages.On("CountByUser", mock.Anything, mock.Anything, mock.Anything).
				Return(tt.userUsages, nil)

			result, err := validator.Validate(context.Background(), tt.input)

			require.NoError(t, err, "invalid promotions must not be errors")
			assert.False(t, result.IsValid)
			assert.Equal(t, tt.wantReason, result.Reason)
			assert.NotEmpty(t, result.Message)
			assert.True(t, result.DiscountAmount.IsZero())
		})
	}
}

func TestPromotionValidator_FixedDiscountAmount(t *testing.T) {
	validator, promos, _ := newValidator()
	promo, err := NewPromotionCode("FLAT50", DiscountTypeFixed, decimal.NewFromInt(50),
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	promos.On("FindByCode", mock.Anything, "FLAT50").Return(promo, nil)

	result, err := validator.Validate(context.Background(), PromotionValidationInput{
		Code:        "FLAT50",
		CruiseID:    uuid.New(),
		Category:    catalog.CabinInside,
		TotalAmount: decimal.NewFromInt(400),
	})

	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.True(t, decimal.NewFromInt(50).Equal(result.DiscountAmount))
}

func TestPromotionValidator_DeterministicWithinWindow(t *testing.T) {
	// A code valid at T stays valid at any later instant inside its
	// window absent state changes.
	validator, promos, _ := newValidator()
	promo := validPromo(t, "STEADY")
	promos.On("FindByCode", mock.Anything, "STEADY").Return(promo, nil)

	input := PromotionValidationInput{
		Code:        "STEADY",
		CruiseID:    uuid.New(),
		Category:    catalog.CabinInside,
		TotalAmount: decimal.NewFromInt(1000),
	}

	input.Now = time.Now()
	first, err := validator.Validate(context.Background(), input)
	require.NoError(t, err)

	input.Now = time.Now().Add(12 * time.Hour)
	second, err := validator.Validate(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, first.IsValid)
	assert.True(t, second.IsValid)
	assert.True(t, first.DiscountAmount.Equal(second.DiscountAmount))
}
