package pricing

import (
	"sort"
	"strings"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/cruisehub/backend/internal/domain/shared/strategy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// System defaults for pricing rule knobs. Any knob omitted at creation
// time falls back to these; the fallback is part of the admin API
// contract, not an implementation accident.
var (
	DefaultInventoryThresholdLow    = decimal.NewFromInt(30)
	DefaultInventoryThresholdMedium = decimal.NewFromInt(50)
	DefaultInventoryThresholdHigh   = decimal.NewFromInt(70)

	DefaultInventoryMultiplierLow    = decimal.NewFromFloat(1.20)
	DefaultInventoryMultiplierMedium = decimal.NewFromFloat(1.10)
	DefaultInventoryMultiplierHigh   = decimal.NewFromFloat(1.05)

	DefaultDemandMultiplierHigh   = decimal.NewFromFloat(1.25)
	DefaultDemandMultiplierMedium = decimal.NewFromFloat(1.10)
	DefaultDemandMultiplierLow    = decimal.NewFromInt(1)

	DefaultGroupDiscount3To5   = decimal.NewFromFloat(0.05)
	DefaultGroupDiscount6To10  = decimal.NewFromFloat(0.10)
	DefaultGroupDiscount11Plus = decimal.NewFromFloat(0.15)
)

// RuleConfig carries the optional knobs for building a pricing rule.
// Nil fields take the documented system default.
type RuleConfig struct {
	InventoryThresholdLow    *decimal.Decimal
	InventoryThresholdMedium *decimal.Decimal
	InventoryThresholdHigh   *decimal.Decimal

	InventoryMultiplierLow    *decimal.Decimal
	InventoryMultiplierMedium *decimal.Decimal
	InventoryMultiplierHigh   *decimal.Decimal

	DemandMultiplierHigh   *decimal.Decimal
	DemandMultiplierMedium *decimal.Decimal
	DemandMultiplierLow    *decimal.Decimal

	GroupDiscount3To5   *decimal.Decimal
	GroupDiscount6To10  *decimal.Decimal
	GroupDiscount11Plus *decimal.Decimal
}

// PricingRule is a named, prioritized pricing configuration. Scoping
// sets are cruise IDs and cabin categories; an empty set means the rule
// is unscoped for that dimension.
type PricingRule struct {
	shared.BaseAggregateRoot
	Name                 string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description          string    `gorm:"type:text"`
	ApplicableCruises    StringSet `gorm:"type:jsonb"`
	ApplicableCategories StringSet `gorm:"type:jsonb"`

	// Ascending capacity-percentage cutoffs. A multiplier applies when
	// remaining capacity falls strictly below its threshold.
	InventoryThresholdLow    decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	InventoryThresholdMedium decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	InventoryThresholdHigh   decimal.Decimal `gorm:"type:decimal(5,2);not null"`

	InventoryMultiplierLow    decimal.Decimal `gorm:"type:decimal(6,4);not null"`
	InventoryMultiplierMedium decimal.Decimal `gorm:"type:decimal(6,4);not null"`
	InventoryMultiplierHigh   decimal.Decimal `gorm:"type:decimal(6,4);not null"`

	DemandMultiplierHigh   decimal.Decimal `gorm:"type:decimal(6,4);not null"`
	DemandMultiplierMedium decimal.Decimal `gorm:"type:decimal(6,4);not null"`
	DemandMultiplierLow    decimal.Decimal `gorm:"type:decimal(6,4);not null"`

	// Discount rates as fractions in [0, 1)
	GroupDiscount3To5   decimal.Decimal `gorm:"type:decimal(5,4);not null"`
	GroupDiscount6To10  decimal.Decimal `gorm:"type:decimal(5,4);not null"`
	GroupDiscount11Plus decimal.Decimal `gorm:"type:decimal(5,4);not null"`

	Priority int  `gorm:"not null;default:0;index"`
	IsActive bool `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PricingRule) TableName() string {
	return "pricing_rules"
}

// NewPricingRule creates a rule with the given name and knobs, applying
// system defaults for any knob left nil
func NewPricingRule(name string, priority int, cfg RuleConfig) (*PricingRule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_RULE_NAME", "Rule name is required")
	}

	rule := &PricingRule{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		Name:                 name,
		ApplicableCruises:    NewStringSet(),
		ApplicableCategories: NewStringSet(),

		InventoryThresholdLow:    orDefault(cfg.InventoryThresholdLow, DefaultInventoryThresholdLow),
		InventoryThresholdMedium: orDefault(cfg.InventoryThresholdMedium, DefaultInventoryThresholdMedium),
		InventoryThresholdHigh:   orDefault(cfg.InventoryThresholdHigh, DefaultInventoryThresholdHigh),

		InventoryMultiplierLow:    orDefault(cfg.InventoryMultiplierLow, DefaultInventoryMultiplierLow),
		InventoryMultiplierMedium: orDefault(cfg.InventoryMultiplierMedium, DefaultInventoryMultiplierMedium),
		InventoryMultiplierHigh:   orDefault(cfg.InventoryMultiplierHigh, DefaultInventoryMultiplierHigh),

		DemandMultiplierHigh:   orDefault(cfg.DemandMultiplierHigh, DefaultDemandMultiplierHigh),
		DemandMultiplierMedium: orDefault(cfg.DemandMultiplierMedium, DefaultDemandMultiplierMedium),
		DemandMultiplierLow:    orDefault(cfg.DemandMultiplierLow, DefaultDemandMultiplierLow),

		GroupDiscount3To5:   orDefault(cfg.GroupDiscount3To5, DefaultGroupDiscount3To5),
		GroupDiscount6To10:  orDefault(cfg.GroupDiscount6To10, DefaultGroupDiscount6To10),
		GroupDiscount11Plus: orDefault(cfg.GroupDiscount11Plus, DefaultGroupDiscount11Plus),

		Priority: priority,
		IsActive: true,
	}

	if err := rule.validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

func orDefault(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

// validate enforces the write-time invariants on the rule's knobs
func (r *PricingRule) validate() error {
	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)

	if r.InventoryThresholdLow.GreaterThanOrEqual(r.InventoryThresholdMedium) ||
		r.InventoryThresholdMedium.GreaterThanOrEqual(r.InventoryThresholdHigh) {
		return shared.NewDomainError("INVALID_THRESHOLDS", "Inventory thresholds must be strictly ascending")
	}
	if r.InventoryThresholdLow.IsNegative() || r.InventoryThresholdHigh.GreaterThan(hundred) {
		return shared.NewDomainError("INVALID_THRESHOLDS", "Inventory thresholds must be percentages between 0 and 100")
	}

	for _, m := range []decimal.Decimal{
		r.InventoryMultiplierLow, r.InventoryMultiplierMedium, r.InventoryMultiplierHigh,
		r.DemandMultiplierHigh, r.DemandMultiplierMedium, r.DemandMultiplierLow,
	} {
		if m.LessThan(one) {
			return shared.NewDomainError("INVALID_MULTIPLIER", "Price multipliers must be at least 1.0")
		}
	}

	for _, d := range []decimal.Decimal{r.GroupDiscount3To5, r.GroupDiscount6To10, r.GroupDiscount11Plus} {
		if d.IsNegative() || d.GreaterThanOrEqual(one) {
			return shared.NewDomainError("INVALID_DISCOUNT_RATE", "Group discount rates must be in [0, 1)")
		}
	}

	return nil
}

// ScopeTo restricts the rule to the given cruises and/or categories.
// An empty slice leaves that dimension unscoped.
func (r *PricingRule) ScopeTo(cruiseIDs []uuid.UUID, categories []catalog.CabinCategory) error {
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
	r.ApplicableCruises = cruises
	r.ApplicableCategories = cats
	r.Touch()
	r.IncrementVersion()
	return nil
}

// ApplyConfig overwrites the knobs given in cfg, keeping current values
// for nil fields, and revalidates the result
func (r *PricingRule) ApplyConfig(cfg RuleConfig) error {
	updated := *r

	updated.InventoryThresholdLow = orDefault(cfg.InventoryThresholdLow, r.InventoryThresholdLow)
	updated.InventoryThresholdMedium = orDefault(cfg.InventoryThresholdMedium, r.InventoryThresholdMedium)
	updated.InventoryThresholdHigh = orDefault(cfg.InventoryThresholdHigh, r.InventoryThresholdHigh)
	updated.InventoryMultiplierLow = orDefault(cfg.InventoryMultiplierLow, r.InventoryMultiplierLow)
	updated.InventoryMultiplierMedium = orDefault(cfg.InventoryMultiplierMedium, r.InventoryMultiplierMedium)
	updated.InventoryMultiplierHigh = orDefault(cfg.InventoryMultiplierHigh, r.InventoryMultiplierHigh)
	updated.DemandMultiplierHigh = orDefault(cfg.DemandMultiplierHigh, r.DemandMultiplierHigh)
	updated.DemandMultiplierMedium = orDefault(cfg.DemandMultiplierMedium, r.DemandMultiplierMedium)
	updated.DemandMultiplierLow = orDefault(cfg.DemandMultiplierLow, r.DemandMultiplierLow)
	updated.GroupDiscount3To5 = orDefault(cfg.GroupDiscount3To5, r.GroupDiscount3To5)
	updated.GroupDiscount6To10 = orDefault(cfg.GroupDiscount6To10, r.GroupDiscount6To10)
	updated.GroupDiscount11Plus = orDefault(cfg.GroupDiscount11Plus, r.GroupDiscount11Plus)

	if err := updated.validate(); err != nil {
		return err
	}

	*r = updated
	r.Touch()
	r.IncrementVersion()
	return nil
}

// Activate makes the rule eligible for selection
func (r *PricingRule) Activate() {
	r.IsActive = true
	r.Touch()
	r.IncrementVersion()
}

// Deactivate removes the rule from selection without deleting it
func (r *PricingRule) Deactivate() {
	r.IsActive = false
	r.Touch()
	r.IncrementVersion()
}

// AppliesTo reports whether the rule's scope covers the cruise/category
// pair. Unscoped dimensions cover everything.
func (r *PricingRule) AppliesTo(cruiseID uuid.UUID, category catalog.CabinCategory) bool {
	if !r.ApplicableCruises.IsEmpty() && !r.ApplicableCruises.Contains(cruiseID.String()) {
		return false
	}
	if !r.ApplicableCategories.IsEmpty() && !r.ApplicableCategories.Contains(category.String()) {
		return false
	}
	return true
}

// DemandMultiplier returns the rule's multiplier for a demand level.
// Unknown levels resolve to the low-demand multiplier.
func (r *PricingRule) DemandMultiplier(level strategy.DemandLevel) decimal.Decimal {
	switch level {
	case strategy.DemandLevelHigh:
		return r.DemandMultiplierHigh
	case strategy.DemandLevelMedium:
		return r.DemandMultiplierMedium
	default:
		return r.DemandMultiplierLow
	}
}

// SelectRule picks the applicable rule for a cruise/category pair from
// the given active rules: highest priority wins; ties break by most
// recent creation time, then by descending ID so ordering is total and
// selection stays deterministic across identical inputs.
func SelectRule(rules []PricingRule, cruiseID uuid.UUID, category catalog.CabinCategory) (*PricingRule, error) {
	candidates := make([]PricingRule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive && r.AppliesTo(cruiseID, category) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoApplicableRule
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() > b.ID.String()
	})

	selected := candidates[0]
	return &selected, nil
}
