package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rejection reason codes. Stable identifiers for the audit trail; the
// Message field carries the human-readable explanation.
const (
	PromoReasonNotFound      = "NOT_FOUND"
	PromoReasonInactive      = "INACTIVE"
	PromoReasonExpired       = "EXPIRED"
	PromoReasonUsageLimit    = "USAGE_LIMIT"
	PromoReasonUserLimit     = "USER_LIMIT"
	PromoReasonMinOrder      = "MIN_ORDER"
	PromoReasonCruiseScope   = "CRUISE_SCOPE"
	PromoReasonCategoryScope = "CATEGORY_SCOPE"
)

// PromotionValidation is the structured outcome of validating a code.
// Invalid promotions are an expected, common outcome, so validation
// never returns an error for them.
type PromotionValidation struct {
	IsValid        bool            `json:"is_valid"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Reason         string          `json:"reason,omitempty"`
	Message        string          `json:"message"`
	Promotion      *PromotionCode  `json:"-"`
}

// PromotionValidationInput carries everything the validator checks a
// code against. UserID nil skips the per-user cap.
type PromotionValidationInput struct {
	Code        string
	CruiseID    uuid.UUID
	Category    catalog.CabinCategory
	TotalAmount decimal.Decimal
	UserID      *uuid.UUID
	Now         time.Time
}

// PromotionValidator checks promotion codes against their validity
// window, usage caps, minimum order, and scoping constraints
type PromotionValidator struct {
	promotions PromotionCodeRepository
	usages     PromotionUsageRepository
}

// NewPromotionValidator creates a promotion validator
func NewPromotionValidator(promotions PromotionCodeRepository, usages PromotionUsageRepository) *PromotionValidator {
	return &PromotionValidator{
		promotions: promotions,
		usages:     usages,
	}
}

// Validate checks the code and computes the discount against the given
// total. Checks run in a fixed order and the first failure wins. The
// result reflects counter state at read time only; redemption re-checks
// under a transactional guard.
func (v *PromotionValidator) Validate(ctx context.Context, in PromotionValidationInput) (PromotionValidation, error) {
	promo, err := v.promotions.FindByCode(ctx, normalizeCode(in.Code))
	if err != nil {
		return PromotionValidation{}, err
	}
	if promo == nil {
		return rejected(PromoReasonNotFound, "Invalid promotion code"), nil
	}

	if !promo.IsActive {
		return rejected(PromoReasonInactive, "Promotion code is not active"), nil
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	if !promo.IsWithinWindow(now) {
		return rejected(PromoReasonExpired, "Promotion code has expired"), nil
	}

	if promo.IsExhausted() {
		return rejected(PromoReasonUsageLimit, "Promotion code usage limit reached"), nil
	}

	if promo.MaxUsesPerUser != nil && in.UserID != nil {
		used, err := v.usages.CountByUser(ctx, promo.ID, *in.UserID)
		if err != nil {
			return PromotionValidation{}, err
		}
		if used >= int64(*promo.MaxUsesPerUser) {
			return rejected(PromoReasonUserLimit, "Promotion code usage limit reached for this user"), nil
		}
	}

	if promo.MinOrderAmount != nil && in.TotalAmount.LessThan(*promo.MinOrderAmount) {
		return rejected(PromoReasonMinOrder,
			fmt.Sprintf("Order total must be at least %s to use this promotion", promo.MinOrderAmount.StringFixed(2))), nil
	}

	if !promo.ApplicableCruises.IsEmpty() && !promo.ApplicableCruises.Contains(in.CruiseID.String()) {
		return rejected(PromoReasonCruiseScope, "Promotion code is not applicable to this cruise"), nil
	}

	if !promo.ApplicableCategories.IsEmpty() && !promo.ApplicableCategories.Contains(in.Category.String()) {
		return rejected(PromoReasonCategoryScope, "Promotion code is not applicable to this cabin category"), nil
	}

	return PromotionValidation{
		IsValid:        true,
		DiscountAmount: promo.DiscountFor(in.TotalAmount),
		Message:        "Promotion code applied",
		Promotion:      promo,
	}, nil
}

func rejected(reason, message string) PromotionValidation {
	return PromotionValidation{
		IsValid:        false,
		DiscountAmount: decimal.Zero,
		Reason:         reason,
		Message:        message,
	}
}
