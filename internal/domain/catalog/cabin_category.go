package catalog

import "github.com/shopspring/decimal"

// CabinCategory represents the class of a cabin on a cruise
type CabinCategory string

const (
	CabinInside    CabinCategory = "inside"
	CabinOceanview CabinCategory = "oceanview"
	CabinBalcony   CabinCategory = "balcony"
	CabinSuite     CabinCategory = "suite"
)

// String returns the string representation of the cabin category
func (c CabinCategory) String() string {
	return string(c)
}

// IsValid returns true if the cabin category is one of the known classes
func (c CabinCategory) IsValid() bool {
	switch c {
	case CabinInside, CabinOceanview, CabinBalcony, CabinSuite:
		return true
	default:
		return false
	}
}

// AllCabinCategories returns all valid cabin categories
func AllCabinCategories() []CabinCategory {
	return []CabinCategory{CabinInside, CabinOceanview, CabinBalcony, CabinSuite}
}

// defaultCategoryMultipliers reflects the intrinsic price tier of each
// cabin class relative to the cruise base price. These are catalog data,
// not pricing rules, and apply before any dynamic adjustment.
var defaultCategoryMultipliers = map[CabinCategory]decimal.Decimal{
	CabinInside:    decimal.NewFromFloat(1.0),
	CabinOceanview: decimal.NewFromFloat(1.3),
	CabinBalcony:   decimal.NewFromFloat(1.6),
	CabinSuite:     decimal.NewFromFloat(2.5),
}

// Multiplier returns the intrinsic price multiplier for the cabin class.
// Unknown categories fall back to 1.0; callers are expected to have
// validated the category first.
func (c CabinCategory) Multiplier() decimal.Decimal {
	if m, ok := defaultCategoryMultipliers[c]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}
