package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Engine composes inventory scarcity, demand, group-size and promotion
// adjustments into a final price with an itemized breakdown.
//
// Calculation is pure: no side effects, no shared mutable state.
// Concurrent calls never interfere; callers needing audit persistence
// append a PriceHistory record themselves from the returned breakdown.
type Engine struct {
	catalog   CatalogProvider
	rules     PricingRuleRepository
	inventory *InventoryAssessor
	demand    *DemandAssessor
	promotion *PromotionValidator
}

// NewEngine creates a pricing engine
func NewEngine(
	catalog CatalogProvider,
	rules PricingRuleRepository,
	inventory *InventoryAssessor,
	demand *DemandAssessor,
	promotion *PromotionValidator,
) *Engine {
	return &Engine{
		catalog:   catalog,
		rules:     rules,
		inventory: inventory,
		demand:    demand,
		promotion: promotion,
	}
}

// CalculatePrice computes the price for the given parameters.
//
// Adjustments stack in a fixed order: inventory and demand multipliers
// apply to the base, the group discount applies to the subtotal after
// those adjustments (never to the raw base), and the promotion applies
// last against the subtotal before promotion, capped so the price can
// never go negative. Each component is rounded to 2 decimals as it is
// computed, so the breakdown always sums exactly to the final price.
//
// An invalid promo code does not fail the calculation: pricing degrades
// to the no-promotion result and the rejection is recorded in
// AppliedRules so the caller can explain why the discount did not apply.
func (e *Engine) CalculatePrice(ctx context.Context, params PriceParams) (Price, error) {
	if !params.Category.IsValid() {
		return Price{}, ErrInvalidCabinCategory
	}
	numCabins := params.NumCabins
	if numCabins == 0 {
		numCabins = 1
	}
	if numCabins < 0 {
		return Price{}, ErrInvalidCabinCount
	}

	cruisePrice, err := e.catalog.GetBasePrice(ctx, params.CruiseID)
	if err != nil {
		return Price{}, err
	}
	categoryMultiplier, err := e.catalog.GetCategoryMultiplier(ctx, params.Category)
	if err != nil {
		return Price{}, err
	}

	activeRules, err := e.rules.ListActive(ctx)
	if err != nil {
		return Price{}, fmt.Errorf("loading pricing rules: %w", err)
	}
	rule, err := SelectRule(activeRules, params.CruiseID, params.Category)
	if err != nil {
		return Price{}, err
	}

	base := cruisePrice.BasePrice.
		Mul(categoryMultiplier).
		Mul(decimal.NewFromInt(int64(numCabins))).
		Round(2)

	one := decimal.NewFromInt(1)
	appliedRules := []string{fmt.Sprintf("rule:%s", rule.Name)}

	// Inventory and demand lookups are independent; either may miss and
	// resolve to its safe default.
	invAssessment := e.inventory.Assess(ctx, params.CruiseID, params.Category, rule)
	inventoryAdjustment := base.Mul(invAssessment.Multiplier.Sub(one)).Round(2)
	if !inventoryAdjustment.IsZero() {
		appliedRules = append(appliedRules, fmt.Sprintf("inventory:%s(%s%%)",
			invAssessment.Level, invAssessment.PercentageAvailable.Round(0)))
	}

	demandAssessment := e.demand.Assess(ctx, params.CruiseID, params.DepartureDate, rule)
	demandAdjustment := base.Mul(demandAssessment.Multiplier.Sub(one)).Round(2)
	if !demandAdjustment.IsZero() {
		appliedRules = append(appliedRules, fmt.Sprintf("demand:%s", demandAssessment.Level))
	}

	adjustedSubtotal := base.Add(inventoryAdjustment).Add(demandAdjustment)

	group := ResolveGroupDiscount(numCabins, rule)
	groupDiscount := decimal.Zero
	if group.Rate.IsPositive() {
		groupDiscount = adjustedSubtotal.Mul(group.Rate).Round(2).Neg()
		appliedRules = append(appliedRules, fmt.Sprintf("group:%s(%s%%)",
			group.Band, group.Rate.Mul(decimal.NewFromInt(100)).Round(0)))
	}

	promoSubtotal := adjustedSubtotal.Add(groupDiscount)

	promotionDiscount := decimal.Zero
	if params.PromoCode != "" {
		validation, err := e.promotion.Validate(ctx, PromotionValidationInput{
			Code:        params.PromoCode,
			CruiseID:    params.CruiseID,
			Category:    params.Category,
			TotalAmount: promoSubtotal,
			UserID:      params.UserID,
			Now:         time.Now().UTC(),
		})
		if err != nil {
			return Price{}, fmt.Errorf("validating promotion: %w", err)
		}
		if validation.IsValid {
			discount := decimal.Min(validation.DiscountAmount, promoSubtotal)
			promotionDiscount = discount.Round(2).Neg()
			appliedRules = append(appliedRules, fmt.Sprintf("promo:%s", validation.Promotion.Code))
		} else {
			appliedRules = append(appliedRules, fmt.Sprintf("promo:%s:rejected(%s)",
				normalizeCode(params.PromoCode), validation.Reason))
		}
	}

	finalPrice := base.
		Add(inventoryAdjustment).
		Add(demandAdjustment).
		Add(groupDiscount).
		Add(promotionDiscount).
		Round(2)
	if finalPrice.IsNegative() {
		finalPrice = decimal.Zero
	}

	return Price{
		FinalPrice: finalPrice,
		Currency:   cruisePrice.Currency,
		Breakdown: PriceBreakdown{
			Base:                base,
			InventoryAdjustment: inventoryAdjustment,
			DemandAdjustment:    demandAdjustment,
			GroupDiscount:       groupDiscount,
			PromotionDiscount:   promotionDiscount,
		},
		AppliedRules: appliedRules,
	}, nil
}
