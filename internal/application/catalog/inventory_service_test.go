package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/inventory"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCruise(t *testing.T) *catalog.Cruise {
	t.Helper()
	cruise, err := catalog.NewCruise("C1", "Test", time.Now().Add(time.Hour), 7, decimal.NewFromInt(1000))
	require.NoError(t, err)
	return cruise
}

func TestInventoryService_Set(t *testing.T) {
	t.Run("creates inventory when pair is new", func(t *testing.T) {
		cruiseRepo := new(MockCruiseRepository)
		invRepo := new(MockCabinInventoryRepository)
		svc := NewInventoryService(cruiseRepo, invRepo)

		cruise := testCruise(t)
		cruiseRepo.On("FindByID", mock.Anything, cruise.ID).Return(cruise, nil)
		invRepo.On("FindByCruiseAndCategory", mock.Anything, cruise.ID, catalog.CabinBalcony).
			Return(nil, shared.ErrNotFound)
		invRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.CabinInventory")).Return(nil)

		resp, err := svc.Set(context.Background(), cruise.ID, SetInventoryRequest{
			Category:    "balcony",
			TotalCabins: 40,
		})

		require.NoError(t, err)
		assert.Equal(t, 40, resp.TotalCabins)
		assert.Equal(t, 40, resp.RemainingCabins)
		invRepo.AssertExpectations(t)
	})

	t.Run("resizes existing inventory preserving sold cabins", func(t *testing.T) {
		cruiseRepo := new(MockCruiseRepository)
		invRepo := new(MockCabinInventoryRepository)
		svc := NewInventoryService(cruiseRepo, invRepo)

		cruise := testCruise(t)
		inv, err := inventory.NewCabinInventory(cruise.ID, catalog.CabinBalcony, 40)
		require.NoError(t, err)
		require.NoError(t, inv.Reserve(10))

		cruiseRepo.On("FindByID", mock.Anything, cruise.ID).Return(cruise, nil)
		invRepo.On("FindByCruiseAndCategory", mock.Anything, cruise.ID, catalog.CabinBalcony).
			Return(inv, nil)
		invRepo.On("Save", mock.Anything, inv).Return(nil)

		resp, err := svc.Set(context.Background(), cruise.ID, SetInventoryRequest{
			Category:    "balcony",
			TotalCabins: 50,
		})

		require.NoError(t, err)
		assert.Equal(t, 50, resp.TotalCabins)
		assert.Equal(t, 40, resp.RemainingCabins)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		cruiseRepo := new(MockCruiseRepository)
		invRepo := new(MockCabinInventoryRepository)
		svc := NewInventoryService(cruiseRepo, invRepo)

		cruise := testCruise(t)
		cruiseRepo.On("FindByID", mock.Anything, cruise.ID).Return(cruise, nil)

		_, err := svc.Set(context.Background(), cruise.ID, SetInventoryRequest{
			Category:    "penthouse",
			TotalCabins: 10,
		})
		assert.Error(t, err)
	})
}

func TestInventoryService_ReserveRelease(t *testing.T) {
	cruiseRepo := new(MockCruiseRepository)
	invRepo := new(MockCabinInventoryRepository)
	svc := NewInventoryService(cruiseRepo, invRepo)

	cruise := testCruise(t)
	inv, err := inventory.NewCabinInventory(cruise.ID, catalog.CabinSuite, 10)
	require.NoError(t, err)

	invRepo.On("FindByCruiseAndCategory", mock.Anything, cruise.ID, catalog.CabinSuite).Return(inv, nil)
	invRepo.On("Save", mock.Anything, inv).Return(nil)

	resp, err := svc.Reserve(context.Background(), cruise.ID, catalog.CabinSuite, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, resp.RemainingCabins)

	_, err = svc.Reserve(context.Background(), cruise.ID, catalog.CabinSuite, 7)
	assert.ErrorIs(t, err, shared.ErrInsufficientCabins)

	resp, err = svc.Release(context.Background(), cruise.ID, catalog.CabinSuite, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, resp.RemainingCabins)
}
