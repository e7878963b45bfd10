package catalog

import (
	"context"
	"errors"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/inventory"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InventoryService handles cabin inventory administration
type InventoryService struct {
	cruiseRepo    catalog.CruiseRepository
	inventoryRepo inventory.CabinInventoryRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(cruiseRepo catalog.CruiseRepository, inventoryRepo inventory.CabinInventoryRepository) *InventoryService {
	return &InventoryService{
		cruiseRepo:    cruiseRepo,
		inventoryRepo: inventoryRepo,
	}
}

// ListByCruise returns all inventory rows for a cruise
func (s *InventoryService) ListByCruise(ctx context.Context, cruiseID uuid.UUID) ([]InventoryResponse, error) {
	if _, err := s.cruiseRepo.FindByID(ctx, cruiseID); err != nil {
		return nil, err
	}

	rows, err := s.inventoryRepo.FindByCruise(ctx, cruiseID)
	if err != nil {
		return nil, err
	}

	responses := make([]InventoryResponse, len(rows))
	for i, row := range rows {
		responses[i] = *ToInventoryResponse(&row)
	}
	return responses, nil
}

// Set creates inventory for a cruise/category pair, or resizes it if it
// already exists. Resizing preserves cabins already sold.
func (s *InventoryService) Set(ctx context.Context, cruiseID uuid.UUID, req SetInventoryRequest) (*InventoryResponse, error) {
	if _, err := s.cruiseRepo.FindByID(ctx, cruiseID); err != nil {
		return nil, err
	}

	category := catalog.CabinCategory(req.Category)
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CABIN_CATEGORY", "Unknown cabin category")
	}

	inv, err := s.inventoryRepo.FindByCruiseAndCategory(ctx, cruiseID, category)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		inv, err = inventory.NewCabinInventory(cruiseID, category, req.TotalCabins)
		if err != nil {
			return nil, err
		}
	} else if err := inv.Resize(req.TotalCabins); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	return ToInventoryResponse(inv), nil
}

// Reserve removes cabins from the remaining pool
func (s *InventoryService) Reserve(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, count int) (*InventoryResponse, error) {
	inv, err := s.inventoryRepo.FindByCruiseAndCategory(ctx, cruiseID, category)
	if err != nil {
		return nil, err
	}
	if err := inv.Reserve(count); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	return ToInventoryResponse(inv), nil
}

// Release returns cabins to the remaining pool
func (s *InventoryService) Release(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, count int) (*InventoryResponse, error) {
	inv, err := s.inventoryRepo.FindByCruiseAndCategory(ctx, cruiseID, category)
	if err != nil {
		return nil, err
	}
	if err := inv.Release(count); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	return ToInventoryResponse(inv), nil
}
