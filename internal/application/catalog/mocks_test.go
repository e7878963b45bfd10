package catalog

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/inventory"
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
