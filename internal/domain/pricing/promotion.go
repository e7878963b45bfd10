package pricing

import (
	"strings"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// normalizeCode upper-cases and trims a promo code for case-insensitive
// matching
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiscountType distinguishes percentage and fixed-amount promotions
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// IsValid returns true if the discount type is known
func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// PromotionCode is a redeemable discount code. Codes are stored
// upper-cased and matched case-insensitively.
type PromotionCode struct {
	shared.BaseAggregateRoot
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string          `gorm:"type:text"`
	Type        DiscountType    `gorm:"type:varchar(20);not null"`
	Value       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	ValidFrom  time.Time `gorm:"not null"`
	ValidUntil time.Time `gorm:"not null"`

	// MaxUses nil means unlimited. CurrentUses is only ever incremented
	// through the guarded redemption update; this aggregate never
	// mutates it directly.
	MaxUses        *int `gorm:"default:null"`
	CurrentUses    int  `gorm:"not null;default:0"`
	MaxUsesPerUser *int `gorm:"default:null"`

	MinOrderAmount *decimal.Decimal `gorm:"type:decimal(12,2);default:null"`

	ApplicableCruises    StringSet `gorm:"type:jsonb"`
	ApplicableCategories StringSet `gorm:"type:jsonb"`

	IsActive bool `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PromotionCode) TableName() string {
	return "promotion_codes"
}

// NewPromotionCode creates a promotion code with write-time invariants
// enforced: known type, percentage value in (0, 100], positive fixed
// amount, and a non-empty validity window
func NewPromotionCode(code string, discountType DiscountType, value decimal.Decimal, validFrom, validUntil time.Time) (*PromotionCode, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_PROMO_CODE", "Promotion code is required")
	}
	if !discountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_TYPE", "Discount type must be percentage or fixed")
	}
	if !value.IsPositive() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_VALUE", "Discount value must be positive")
	}
	if discountType == DiscountTypePercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_VALUE", "Percentage discount cannot exceed 100")
	}
	if !validFrom.Before(validUntil) {
		return nil, shared.NewDomainError("INVALID_VALIDITY_WINDOW", "validFrom must be before validUntil")
	}

	return &PromotionCode{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		Code:                 code,
		Type:                 discountType,
		Value:                value,
		ValidFrom:            validFrom.UTC(),
		ValidUntil:           validUntil.UTC(),
		ApplicableCruises:    NewStringSet(),
		ApplicableCategories: NewStringSet(),
		IsActive:             true,
	}, nil
}

// WithUsageCaps sets the global and per-user usage limits
func (p *PromotionCode) WithUsageCaps(maxUses, maxUsesPerUser *int) error {
	if maxUses != nil && *maxUses <= 0 {
		return shared.NewDomainError("INVALID_USAGE_CAP", "maxUses must be positive when set")
	}
	if maxUsesPerUser != nil && *maxUsesPerUser <= 0 {
		return shared.NewDomainError("INVALID_USAGE_CAP", "maxUsesPerUser must be positive when set")
	}
	p.MaxUses = maxUses
	p.MaxUsesPerUser = maxUsesPerUser
	return nil
}

// WithMinOrderAmount sets the pre-discount total the order must meet
func (p *PromotionCode) WithMinOrderAmount(min *decimal.Decimal) error {
	if min != nil && !min.IsPositive() {
		return shared.NewDomainError("INVALID_MIN_ORDER", "minOrderAmount must be positive when set")
	}
	p.MinOrderAmount = min
	return nil
}

// ScopeTo restricts the promotion to the given cruises and/or
// categories. Empty slices leave that dimension unscoped.
func (p *PromotionCode) ScopeTo(cruiseIDs []uuid.UUID, categories []catalog.CabinCategory) error {
	cruises := NewStringSet()
	for _, id := range cruiseIDs {
		cruises[id.String()] = struct{}{}
	}
	cats := NewStringSet()
	for _, c := range categories {
		if !c.IsValid() {
			return ErrInvalidCabinCategory
		}
		cats[c.String()] = struct{}{}
	}
	p.ApplicableCruises = cruises
	p.ApplicableCategories = cats
	p.Touch()
	p.IncrementVersion()
	return nil
}

// Activate enables the promotion
func (p *PromotionCode) Activate() {
	p.IsActive = true
	p.Touch()
	p.IncrementVersion()
}

// Deactivate disables the promotion without deleting it
func (p *PromotionCode) Deactivate() {
	p.IsActive = false
	p.Touch()
	p.IncrementVersion()
}

// IsWithinWindow reports whether now falls in [validFrom, validUntil]
func (p *PromotionCode) IsWithinWindow(now time.Time) bool {
	return !now.Before(p.ValidFrom) && !now.After(p.ValidUntil)
}

// IsExhausted reports whether the global usage cap has been reached
func (p *PromotionCode) IsExhausted() bool {
	return p.MaxUses != nil && p.CurrentUses >= *p.MaxUses
}

// DiscountFor computes the discount amount against the given total,
// rounded to 2 decimals. It does not check validity; use the validator.
func (p *PromotionCode) DiscountFor(total decimal.Decimal) decimal.Decimal {
	if p.Type == DiscountTypePercentage {
		return total.Mul(p.Value).Div(decimal.NewFromInt(100)).Round(2)
	}
	return p.Value.Round(2)
}
