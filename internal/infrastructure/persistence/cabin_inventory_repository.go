package persistence

import (
	"context"
	"errors"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/inventory"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCabinInventoryRepository implements inventory.CabinInventoryRepository using GORM
type GormCabinInventoryRepository struct {
	db *gorm.DB
}

// NewGormCabinInventoryRepository creates a new GormCabinInventoryRepository
func NewGormCabinInventoryRepository(db *gorm.DB) *GormCabinInventoryRepository {
	return &GormCabinInventoryRepository{db: db}
}

// FindByID finds inventory by its ID
func (r *GormCabinInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.CabinInventory, error) {
	var inv inventory.CabinInventory
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindByCruiseAndCategory finds inventory for a cruise/category pair
func (r *GormCabinInventoryRepository) FindByCruiseAndCategory(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (*inventory.CabinInventory, error) {
	var inv inventory.CabinInventory
	if err := r.db.WithContext(ctx).
		Where("cruise_id = ? AND category = ?", cruiseID, category).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindByCruise finds all inventory rows for a cruise
func (r *GormCabinInventoryRepository) FindByCruise(ctx context.Context, cruiseID uuid.UUID) ([]inventory.CabinInventory, error) {
	var rows []inventory.CabinInventory
	if err := r.db.WithContext(ctx).
		Where("cruise_id = ?", cruiseID).
		Order("category ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Save creates or updates an inventory row
func (r *GormCabinInventoryRepository) Save(ctx context.Context, inv *inventory.CabinInventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

// Delete deletes an inventory row
func (r *GormCabinInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.CabinInventory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCabinInventoryRepository implements CabinInventoryRepository
var _ inventory.CabinInventoryRepository = (*GormCabinInventoryRepository)(nil)
