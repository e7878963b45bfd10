package catalog

import (
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCruiseRequest is the input for creating a cruise
type CreateCruiseRequest struct {
	Code           string          `json:"code" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	DeparturePort  string          `json:"departure_port"`
	DepartureDate  time.Time       `json:"departure_date" binding:"required"`
	DurationNights int             `json:"duration_nights" binding:"required,min=1"`
	BasePrice      decimal.Decimal `json:"base_price" binding:"required"`
}

// UpdateCruiseRequest is the input for updating a cruise's descriptive fields
type UpdateCruiseRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	DeparturePort string `json:"departure_port"`
}

// UpdateBasePriceRequest is the input for changing a cruise's list price
type UpdateBasePriceRequest struct {
	BasePrice decimal.Decimal `json:"base_price" binding:"required"`
}

// CruiseResponse is the API representation of a cruise
type CruiseResponse struct {
	ID             uuid.UUID       `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	DeparturePort  string          `json:"departure_port,omitempty"`
	DepartureDate  time.Time       `json:"departure_date"`
	DurationNights int             `json:"duration_nights"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToCruiseResponse converts a domain cruise to its API representation
func ToCruiseResponse(c *catalog.Cruise) *CruiseResponse {
	return &CruiseResponse{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		Description:    c.Description,
		DeparturePort:  c.DeparturePort,
		DepartureDate:  c.DepartureDate,
		DurationNights: c.DurationNights,
		BasePrice:      c.BasePrice,
		Currency:       c.Currency,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// CruiseListFilter carries list query options
type CruiseListFilter struct {
	Search   string
	Status   string
	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}

// SetInventoryRequest creates or resizes inventory for a cabin category
type SetInventoryRequest struct {
	Category    string `json:"category" binding:"required,cabincategory"`
	TotalCabins int    `json:"total_cabins" binding:"required,min=1"`
}

// AdjustInventoryRequest reserves or releases cabins
type AdjustInventoryRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

// InventoryResponse is the API representation of cabin inventory
type InventoryResponse struct {
	ID                  uuid.UUID       `json:"id"`
	CruiseID            uuid.UUID       `json:"cruise_id"`
	Category            string          `json:"category"`
	TotalCabins         int             `json:"total_cabins"`
	RemainingCabins     int             `json:"remaining_cabins"`
	PercentageAvailable decimal.Decimal `json:"percentage_available"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ToInventoryResponse converts domain inventory to its API representation
func ToInventoryResponse(inv *inventory.CabinInventory) *InventoryResponse {
	return &InventoryResponse{
		ID:                  inv.ID,
		CruiseID:            inv.CruiseID,
		Category:            inv.Category.String(),
		TotalCabins:         inv.TotalCabins,
		RemainingCabins:     inv.RemainingCabins,
		PercentageAvailable: inv.PercentageAvailable().Round(2),
		UpdatedAt:           inv.UpdatedAt,
	}
}
