package catalog

import (
	"strings"
	"time"

	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CruiseStatus represents the lifecycle status of a cruise
type CruiseStatus string

const (
	CruiseStatusActive   CruiseStatus = "active"
	CruiseStatusInactive CruiseStatus = "inactive"
)

// Cruise represents a sailing that can be priced and booked
type Cruise struct {
	shared.BaseAggregateRoot
	Code           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string          `gorm:"type:varchar(200);not null"`
	Description    string          `gorm:"type:text"`
	DeparturePort  string          `gorm:"type:varchar(100)"`
	DepartureDate  time.Time       `gorm:"not null;index"`
	DurationNights int             `gorm:"not null"`
	BasePrice      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Status         CruiseStatus    `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Cruise) TableName() string {
	return "cruises"
}

// NewCruise creates a new cruise with the given base price per inside cabin
func NewCruise(code, name string, departureDate time.Time, durationNights int, basePrice decimal.Decimal) (*Cruise, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CRUISE_CODE", "Cruise code is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CRUISE_NAME", "Cruise name is required")
	}
	if durationNights <= 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Cruise duration must be at least one night")
	}
	if basePrice.IsNegative() || basePrice.IsZero() {
		return nil, shared.NewDomainError("INVALID_BASE_PRICE", "Base price must be positive")
	}

	return &Cruise{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		DepartureDate:     departureDate.UTC(),
		DurationNights:    durationNights,
		BasePrice:         basePrice,
		Currency:          "USD",
		Status:            CruiseStatusActive,
	}, nil
}

// UpdateBasePrice changes the list price for the cruise
func (c *Cruise) UpdateBasePrice(price decimal.Decimal) error {
	if price.IsNegative() || price.IsZero() {
		return shared.NewDomainError("INVALID_BASE_PRICE", "Base price must be positive")
	}
	c.BasePrice = price
	c.Touch()
	c.IncrementVersion()
	return nil
}

// Update updates the cruise's descriptive fields
func (c *Cruise) Update(name, description, departurePort string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_CRUISE_NAME", "Cruise name is required")
	}
	c.Name = name
	c.Description = description
	c.DeparturePort = departurePort
	c.Touch()
	c.IncrementVersion()
	return nil
}

// Deactivate removes the cruise from sale without deleting it
func (c *Cruise) Deactivate() {
	c.Status = CruiseStatusInactive
	c.Touch()
	c.IncrementVersion()
}

// Activate puts the cruise back on sale
func (c *Cruise) Activate() {
	c.Status = CruiseStatusActive
	c.Touch()
	c.IncrementVersion()
}

// IsActive returns true if the cruise is on sale
func (c *Cruise) IsActive() bool {
	return c.Status == CruiseStatusActive
}

// DaysUntilDeparture returns the number of whole days between now and departure.
// Returns 0 for departures in the past.
func (c *Cruise) DaysUntilDeparture(now time.Time) int {
	days := int(c.DepartureDate.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
