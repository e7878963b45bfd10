package pricing

import (
	"context"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/cruisehub/backend/internal/domain/shared/strategy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCatalogProvider is a mock implementation of CatalogProvider
type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) GetBasePrice(ctx context.Context, cruiseID uuid.UUID) (CruisePrice, error) {
	args := m.Called(ctx, cruiseID)
	return args.Get(0).(CruisePrice), args.Error(1)
}

func (m *MockCatalogProvider) GetCategoryMultiplier(ctx context.Context, category catalog.CabinCategory) (decimal.Decimal, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockInventoryProvider is a mock implementation of InventoryProvider
type MockInventoryProvider struct {
	mock.Mock
}

func (m *MockInventoryProvider) GetCapacity(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (Capacity, bool, error) {
	args := m.Called(ctx, cruiseID, category)
	return args.Get(0).(Capacity), args.Bool(1), args.Error(2)
}

// MockDemandProvider is a mock implementation of DemandProvider
type MockDemandProvider struct {
	mock.Mock
}

func (m *MockDemandProvider) GetDemandSignal(ctx context.Context, cruiseID uuid.UUID, departureDate *time.Time) (strategy.DemandSignal, error) {
	args := m.Called(ctx, cruiseID, departureDate)
	return args.Get(0).(strategy.DemandSignal), args.Error(1)
}

// MockPricingRuleRepository is a mock implementation of PricingRuleRepository
type MockPricingRuleRepository struct {
	mock.Mock
}

func (m *MockPricingRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*PricingRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PricingRule), args.Error(1)
}

func (m *MockPricingRuleRepository) FindByName(ctx context.Context, name string) (*PricingRule, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PricingRule), args.Error(1)
}

func (m *MockPricingRuleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]PricingRule, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]PricingRule), args.Error(1)
}

func (m *MockPricingRuleRepository) ListActive(ctx context.Context) ([]PricingRule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]PricingRule), args.Error(1)
}

func (m *MockPricingRuleRepository) Save(ctx context.Context, rule *PricingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPricingRuleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// MockPromotionCodeRepository is a mock implementation of PromotionCodeRepository
type MockPromotionCodeRepository struct {
	mock.Mock
}

func (m *MockPromotionCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*PromotionCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PromotionCode), args.Error(1)
}

func (m *MockPromotionCodeRepository) FindByCode(ctx context.Context, code string) (*PromotionCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PromotionCode), args.Error(1)
}

func (m *MockPromotionCodeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]PromotionCode, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]PromotionCode), args.Error(1)
}

func (m *MockPromotionCodeRepository) Save(ctx context.Context, promo *PromotionCode) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}

func (m *MockPromotionCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromotionCodeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromotionCodeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockPromotionCodeRepository) Redeem(ctx context.Context, promotionID uuid.UUID, usage *PromotionUsage) error {
	args := m.Called(ctx, promotionID, usage)
	return args.Error(0)
}

// MockPromotionUsageRepository is a mock implementation of PromotionUsageRepository
type MockPromotionUsageRepository struct {
	mock.Mock
}

func (m *MockPromotionUsageRepository) CountByUser(ctx context.Context, promotionID, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, promotionID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromotionUsageRepository) FindByPromotion(ctx context.Context, promotionID uuid.UUID, filter shared.Filter) ([]PromotionUsage, error) {
	args := m.Called(ctx, promotionID, filter)
	return args.Get(0).([]PromotionUsage), args.Error(1)
}
