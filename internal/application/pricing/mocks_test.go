package pricing

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/inventory"
	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCruiseRepository struct {
	mock.Mock
}

func (m *MockCruiseRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Cruise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Cruise), args.Error(1)
}

func (m *MockCruiseRepository) FindByCode(ctx context.Context, code string) (*catalog.Cruise, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Cruise), args.Error(1)
}

func (m *MockCruiseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Cruise, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Cruise), args.Error(1)
}

func (m *MockCruiseRepository) FindActive(ctx context.Context) ([]catalog.Cruise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Cruise), args.Error(1)
}

func (m *MockCruiseRepository) Save(ctx context.Context, cruise *catalog.Cruise) error {
	return m.Called(ctx, cruise).Error(0)
}

func (m *MockCruiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCruiseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCruiseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockCabinInventoryRepository struct {
	mock.Mock
}

func (m *MockCabinInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.CabinInventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.CabinInventory), args.Error(1)
}

func (m *MockCabinInventoryRepository) FindByCruiseAndCategory(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (*inventory.CabinInventory, error) {
	args := m.Called(ctx, cruiseID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.CabinInventory), args.Error(1)
}

func (m *MockCabinInventoryRepository) FindByCruise(ctx context.Context, cruiseID uuid.UUID) ([]inventory.CabinInventory, error) {
	args := m.Called(ctx, cruiseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.CabinInventory), args.Error(1)
}

func (m *MockCabinInventoryRepository) Save(ctx context.Context, inv *inventory.CabinInventory) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockCabinInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPricingRuleRepository struct {
	mock.Mock
}

func (m *MockPricingRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PricingRule), args.Error(1)
}

func (m *MockPricingRuleRepository) FindByName(ctx context.Context, name string) (*pricing.PricingRule, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PricingRule), args.Error(1)
}

func (m *MockPricingRuleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.PricingRule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.PricingRule), args.Error(1)
}

func (m *MockPricingRuleRepository) ListActive(ctx context.Context) ([]pricing.PricingRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.PricingRule), args.Error(1)
}

func (m *MockPricingRuleRepository) Save(ctx context.Context, rule *pricing.PricingRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *MockPricingRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPricingRuleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPricingRuleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockPromotionCodeRepository struct {
	mock.Mock
}

func (m *MockPromotionCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.PromotionCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PromotionCode), args.Error(1)
}

func (m *MockPromotionCodeRepository) FindByCode(ctx context.Context, code string) (*pricing.PromotionCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PromotionCode), args.Error(1)
}

func (m *MockPromotionCodeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.PromotionCode, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.PromotionCode), args.Error(1)
}

func (m *MockPromotionCodeRepository) Save(ctx context.Context, promo *pricing.PromotionCode) error {
	return m.Called(ctx, promo).Error(0)
}

func (m *MockPromotionCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPromotionCodeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromotionCodeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockPromotionCodeRepository) Redeem(ctx context.Context, promotionID uuid.UUID, usage *pricing.PromotionUsage) error {
	return m.Called(ctx, promotionID, usage).Error(0)
}

type MockPromotionUsageRepository struct {
	mock.Mock
}

func (m *MockPromotionUsageRepository) CountByUser(ctx context.Context, promotionID, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, promotionID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromotionUsageRepository) FindByPromotion(ctx context.Context, promotionID uuid.UUID, filter shared.Filter) ([]pricing.PromotionUsage, error) {
	args := m.Called(ctx, promotionID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.PromotionUsage), args.Error(1)
}

type MockPriceHistoryRepository struct {
	mock.Mock
}

func (m *MockPriceHistoryRepository) Append(ctx context.Context, record *pricing.PriceHistory) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockPriceHistoryRepository) FindByCruiseAndCategory(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, filter shared.Filter) ([]pricing.PriceHistory, error) {
	args := m.Called(ctx, cruiseID, category, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.PriceHistory), args.Error(1)
}

func (m *MockPriceHistoryRepository) CountByCruiseAndCategory(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (int64, error) {
	args := m.Called(ctx, cruiseID, category)
	return args.Get(0).(int64), args.Error(1)
}
