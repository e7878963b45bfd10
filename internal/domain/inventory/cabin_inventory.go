package inventory

import (
	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CabinInventory tracks cabin capacity for one cruise/category pair
type CabinInventory struct {
	shared.BaseAggregateRoot
	CruiseID        uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_cruise_category,priority:1"`
	Category        catalog.CabinCategory `gorm:"type:varchar(20);not null;uniqueIndex:idx_inventory_cruise_category,priority:2"`
	TotalCabins     int                   `gorm:"not null"`
	RemainingCabins int                   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CabinInventory) TableName() string {
	return "cabin_inventory"
}

// NewCabinInventory creates inventory for a cruise/category pair
func NewCabinInventory(cruiseID uuid.UUID, category catalog.CabinCategory, totalCabins int) (*CabinInventory, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CABIN_CATEGORY", "Unknown cabin category")
	}
	if totalCabins <= 0 {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Total cabins must be positive")
	}

	return &CabinInventory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CruiseID:          cruiseID,
		Category:          category,
		TotalCabins:       totalCabins,
		RemainingCabins:   totalCabins,
	}, nil
}

// PercentageAvailable returns remaining capacity as a percentage (0-100)
func (i *CabinInventory) PercentageAvailable() decimal.Decimal {
	if i.TotalCabins <= 0 {
		return decimal.NewFromInt(100)
	}
	return decimal.NewFromInt(int64(i.RemainingCabins)).
		Div(decimal.NewFromInt(int64(i.TotalCabins))).
		Mul(decimal.NewFromInt(100))
}

// Reserve removes cabins from the remaining pool
func (i *CabinInventory) Reserve(count int) error {
	if count <= 0 {
		return shared.ErrInvalidInput
	}
	if count > i.RemainingCabins {
		return shared.ErrInsufficientCabins
	}
	i.RemainingCabins -= count
	i.Touch()
	i.IncrementVersion()
	return nil
}

// Release returns cabins to the remaining pool, capped at total capacity
func (i *CabinInventory) Release(count int) error {
	if count <= 0 {
		return shared.ErrInvalidInput
	}
	i.RemainingCabins += count
	if i.RemainingCabins > i.TotalCabins {
		i.RemainingCabins = i.TotalCabins
	}
	i.Touch()
	i.IncrementVersion()
	return nil
}

// Resize changes total capacity, preserving the number of sold cabins
func (i *CabinInventory) Resize(totalCabins int) error {
	if totalCabins <= 0 {
		return shared.NewDomainError("INVALID_CAPACITY", "Total cabins must be positive")
	}
	sold := i.TotalCabins - i.RemainingCabins
	if totalCabins < sold {
		return shared.NewDomainError("INVALID_CAPACITY", "Total cabins cannot be less than cabins already sold")
	}
	i.TotalCabins = totalCabins
	i.RemainingCabins = totalCabins - sold
	i.Touch()
	i.IncrementVersion()
	return nil
}
