package pricing

import (
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteRequest is the input for a price calculation. DepartureDate,
// when set, overrides the cruise's stored sailing date for demand
// scoring.
type QuoteRequest struct {
	CruiseID      uuid.UUID  `json:"cruise_id" binding:"required"`
	Category      string     `json:"category" binding:"required,cabincategory"`
	NumCabins     int        `json:"num_cabins" binding:"omitempty,min=1"`
	PromoCode     string     `json:"promo_code"`
	UserID        *uuid.UUID `json:"user_id"`
	DepartureDate *time.Time `json:"departure_date"`
}

// PriceResponse is the fully itemized quote returned to the caller
type PriceResponse struct {
	CruiseID     uuid.UUID              `json:"cruise_id"`
	Category     string                 `json:"category"`
	NumCabins    int                    `json:"num_cabins"`
	FinalPrice   decimal.Decimal        `json:"final_price"`
	Currency     string                 `json:"currency"`
	Breakdown    pricing.PriceBreakdown `json:"breakdown"`
	AppliedRules []string               `json:"applied_rules"`
	CalculatedAt time.Time              `json:"calculated_at"`
}

// RuleKnobs carries the optional pricing rule knobs. Nil fields take
// the documented system default on create, or keep the current value on
// update.
type RuleKnobs struct {
	InventoryThresholdLow    *decimal.Decimal `json:"inventory_threshold_low"`
	InventoryThresholdMedium *decimal.Decimal `json:"inventory_threshold_medium"`
	InventoryThresholdHigh   *decimal.Decimal `json:"inventory_threshold_high"`

	InventoryMultiplierLow    *decimal.Decimal `json:"inventory_multiplier_low"`
	InventoryMultiplierMedium *decimal.Decimal `json:"inventory_multiplier_medium"`
	InventoryMultiplierHigh   *decimal.Decimal `json:"inventory_multiplier_high"`

	DemandMultiplierHigh   *decimal.Decimal `json:"demand_multiplier_high"`
	DemandMultiplierMedium *decimal.Decimal `json:"demand_multiplier_medium"`
	DemandMultiplierLow    *decimal.Decimal `json:"demand_multiplier_low"`

	GroupDiscount3To5   *decimal.Decimal `json:"group_discount_3_to_5"`
	GroupDiscount6To10  *decimal.Decimal `json:"group_discount_6_to_10"`
	GroupDiscount11Plus *decimal.Decimal `json:"group_discount_11_plus"`
}

func (k RuleKnobs) toConfig() pricing.RuleConfig {
	return pricing.RuleConfig{
		InventoryThresholdLow:    k.InventoryThresholdLow,
		InventoryThresholdMedium: k.InventoryThresholdMedium,
		InventoryThresholdHigh:   k.InventoryThresholdHigh,

		InventoryMultiplierLow:    k.InventoryMultiplierLow,
		InventoryMultiplierMedium: k.InventoryMultiplierMedium,
		InventoryMultiplierHigh:   k.InventoryMultiplierHigh,

		DemandMultiplierHigh:   k.DemandMultiplierHigh,
		DemandMultiplierMedium: k.DemandMultiplierMedium,
		DemandMultiplierLow:    k.DemandMultiplierLow,

		GroupDiscount3To5:   k.GroupDiscount3To5,
		GroupDiscount6To10:  k.GroupDiscount6To10,
		GroupDiscount11Plus: k.GroupDiscount11Plus,
	}
}

// CreateRuleRequest is the input for creating a pricing rule
type CreateRuleRequest struct {
	Name                 string      `json:"name" binding:"required"`
	Description          string      `json:"description"`
	Priority             int         `json:"priority"`
	Knobs                RuleKnobs   `json:"knobs"`
	ApplicableCruises    []uuid.UUID `json:"applicable_cruises"`
	ApplicableCategories []string    `json:"applicable_categories"`
}

// UpdateRuleRequest is the input for updating a pricing rule. Nil
// fields are left unchanged; scope slices, when present, replace the
// current scope entirely.
type UpdateRuleRequest struct {
	Description          *string      `json:"description"`
	Priority             *int         `json:"priority"`
	IsActive             *bool        `json:"is_active"`
	Knobs                RuleKnobs    `json:"knobs"`
	ApplicableCruises    *[]uuid.UUID `json:"applicable_cruises"`
	ApplicableCategories *[]string    `json:"applicable_categories"`
}

// RuleResponse is the API representation of a pricing rule
type RuleResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	Priority             int       `json:"priority"`
	IsActive             bool      `json:"is_active"`
	ApplicableCruises    []string  `json:"applicable_cruises"`
	ApplicableCategories []string  `json:"applicable_categories"`

	InventoryThresholdLow    decimal.Decimal `json:"inventory_threshold_low"`
	InventoryThresholdMedium decimal.Decimal `json:"inventory_threshold_medium"`
	InventoryThresholdHigh   decimal.Decimal `json:"inventory_threshold_high"`

	InventoryMultiplierLow    decimal.Decimal `json:"inventory_multiplier_low"`
	InventoryMultiplierMedium decimal.Decimal `json:"inventory_multiplier_medium"`
	InventoryMultiplierHigh   decimal.Decimal `json:"inventory_multiplier_high"`

	DemandMultiplierHigh   decimal.Decimal `json:"demand_multiplier_high"`
	DemandMultiplierMedium decimal.Decimal `json:"demand_multiplier_medium"`
	DemandMultiplierLow    decimal.Decimal `json:"demand_multiplier_low"`

	GroupDiscount3To5   decimal.Decimal `json:"group_discount_3_to_5"`
	GroupDiscount6To10  decimal.Decimal `json:"group_discount_6_to_10"`
	GroupDiscount11Plus decimal.Decimal `json:"group_discount_11_plus"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRuleResponse converts a domain rule to its API representation
func ToRuleResponse(r *pricing.PricingRule) *RuleResponse {
	return &RuleResponse{
		ID:                   r.ID,
		Name:                 r.Name,
		Description:          r.Description,
		Priority:             r.Priority,
		IsActive:             r.IsActive,
		ApplicableCruises:    r.ApplicableCruises.Members(),
		ApplicableCategories: r.ApplicableCategories.Members(),

		InventoryThresholdLow:    r.InventoryThresholdLow,
		InventoryThresholdMedium: r.InventoryThresholdMedium,
		InventoryThresholdHigh:   r.InventoryThresholdHigh,

		InventoryMultiplierLow:    r.InventoryMultiplierLow,
		InventoryMultiplierMedium: r.InventoryMultiplierMedium,
		InventoryMultiplierHigh:   r.InventoryMultiplierHigh,

		DemandMultiplierHigh:   r.DemandMultiplierHigh,
		DemandMultiplierMedium: r.DemandMultiplierMedium,
		DemandMultiplierLow:    r.DemandMultiplierLow,

		GroupDiscount3To5:   r.GroupDiscount3To5,
		GroupDiscount6To10:  r.GroupDiscount6To10,
		GroupDiscount11Plus: r.GroupDiscount11Plus,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreatePromotionRequest is the input for creating a promotion code
type CreatePromotionRequest struct {
	Code                 string           `json:"code" binding:"required"`
	Description          string           `json:"description"`
	Type                 string           `json:"type" binding:"required,oneof=percentage fixed"`
	Value                decimal.Decimal  `json:"value" binding:"required"`
	ValidFrom            time.Time        `json:"valid_from" binding:"required"`
	ValidUntil           time.Time        `json:"valid_until" binding:"required"`
	MaxUses              *int             `json:"max_uses"`
	MaxUsesPerUser       *int             `json:"max_uses_per_user"`
	MinOrderAmount       *decimal.Decimal `json:"min_order_amount"`
	ApplicableCruises    []uuid.UUID      `json:"applicable_cruises"`
	ApplicableCategories []string         `json:"applicable_categories"`
}

// UpdatePromotionRequest is the input for updating a promotion code.
// Nil fields are left unchanged; the code, type and value are fixed at
// creation so redeemed discounts stay auditable.
type UpdatePromotionRequest struct {
	Description          *string          `json:"description"`
	ValidFrom            *time.Time       `json:"valid_from"`
	ValidUntil           *time.Time       `json:"valid_until"`
	MaxUses              *int             `json:"max_uses"`
	MaxUsesPerUser       *int             `json:"max_uses_per_user"`
	MinOrderAmount       *decimal.Decimal `json:"min_order_amount"`
	IsActive             *bool            `json:"is_active"`
	ApplicableCruises    *[]uuid.UUID     `json:"applicable_cruises"`
	ApplicableCategories *[]string        `json:"applicable_categories"`
}

// PromotionResponse is the API representation of a promotion code
type PromotionResponse struct {
	ID                   uuid.UUID        `json:"id"`
	Code                 string           `json:"code"`
	Description          string           `json:"description,omitempty"`
	Type                 string           `json:"type"`
	Value                decimal.Decimal  `json:"value"`
	ValidFrom            time.Time        `json:"valid_from"`
	ValidUntil           time.Time        `json:"valid_until"`
	MaxUses              *int             `json:"max_uses,omitempty"`
	CurrentUses          int              `json:"current_uses"`
	MaxUsesPerUser       *int             `json:"max_uses_per_user,omitempty"`
	MinOrderAmount       *decimal.Decimal `json:"min_order_amount,omitempty"`
	ApplicableCruises    []string         `json:"applicable_cruises"`
	ApplicableCategories []string         `json:"applicable_categories"`
	IsActive             bool             `json:"is_active"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// ToPromotionResponse converts a domain promotion to its API representation
func ToPromotionResponse(p *pricing.PromotionCode) *PromotionResponse {
	return &PromotionResponse{
		ID:                   p.ID,
		Code:                 p.Code,
		Description:          p.Description,
		Type:                 string(p.Type),
		Value:                p.Value,
		ValidFrom:            p.ValidFrom,
		ValidUntil:           p.ValidUntil,
		MaxUses:              p.MaxUses,
		CurrentUses:          p.CurrentUses,
		MaxUsesPerUser:       p.MaxUsesPerUser,
		MinOrderAmount:       p.MinOrderAmount,
		ApplicableCruises:    p.ApplicableCruises.Members(),
		ApplicableCategories: p.ApplicableCategories.Members(),
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// ValidatePromotionRequest is the input for checking a promotion code
// against an order without redeeming it
type ValidatePromotionRequest struct {
	CruiseID    uuid.UUID       `json:"cruise_id" binding:"required"`
	Category    string          `json:"category" binding:"required,cabincategory"`
	TotalAmount decimal.Decimal `json:"total_amount" binding:"required"`
	UserID      *uuid.UUID      `json:"user_id"`
}

// RedeemPromotionRequest is the input for redeeming a promotion code
type RedeemPromotionRequest struct {
	UserID      uuid.UUID       `json:"user_id" binding:"required"`
	CruiseID    uuid.UUID       `json:"cruise_id" binding:"required"`
	Category    string          `json:"category" binding:"required,cabincategory"`
	TotalAmount decimal.Decimal `json:"total_amount" binding:"required"`
}

// RedeemPromotionResponse reports the redemption outcome. A rejected
// code is a normal outcome, reported with the rejection reason rather
// than an error.
type RedeemPromotionResponse struct {
	Redeemed        bool            `json:"redeemed"`
	DiscountApplied decimal.Decimal `json:"discount_applied"`
	Reason          string          `json:"reason,omitempty"`
	Message         string          `json:"message"`
}

// HistoryEntry is the API representation of one price change record
type HistoryEntry struct {
	ID            uuid.UUID       `json:"id"`
	CruiseID      uuid.UUID       `json:"cruise_id"`
	Category      string          `json:"category"`
	OldPrice      decimal.Decimal `json:"old_price"`
	NewPrice      decimal.Decimal `json:"new_price"`
	ChangeReason  string          `json:"change_reason"`
	ChangeDetails string          `json:"change_details,omitempty"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

// ToHistoryEntry converts a domain history record to its API representation
func ToHistoryEntry(h *pricing.PriceHistory) HistoryEntry {
	return HistoryEntry{
		ID:            h.ID,
		CruiseID:      h.CruiseID,
		Category:      h.Category.String(),
		OldPrice:      h.OldPrice,
		NewPrice:      h.NewPrice,
		ChangeReason:  string(h.ChangeReason),
		ChangeDetails: h.ChangeDetails,
		RecordedAt:    h.RecordedAt,
	}
}

// parseCategory validates and converts a category string
func parseCategory(s string) (catalog.CabinCategory, error) {
	category := catalog.CabinCategory(s)
	if !category.IsValid() {
		return "", pricing.ErrInvalidCabinCategory
	}
	return category, nil
}

// parseCategories validates and converts a category string slice
func parseCategories(ss []string) ([]catalog.CabinCategory, error) {
	categories := make([]catalog.CabinCategory, len(ss))
	for i, s := range ss {
		category, err := parseCategory(s)
		if err != nil {
			return nil, err
		}
		categories[i] = category
	}
	return categories, nil
}

// ListFilter carries common list query options
type ListFilter struct {
	Search   string
	IsActive *bool
	Page     int
	PageSize int
}

func (f ListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	filter.Search = f.Search
	if f.IsActive != nil {
		filter.Filters["is_active"] = *f.IsActive
	}
	if f.Page > 0 && f.PageSize > 0 {
		filter.Page = f.Page
		filter.PageSize = f.PageSize
	}
	return filter
}
