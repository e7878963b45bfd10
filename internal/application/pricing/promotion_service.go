package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PromotionService handles promotion code administration, validation
// and redemption
type PromotionService struct {
	promoRepo pricing.PromotionCodeRepository
	usageRepo pricing.PromotionUsageRepository
	validator *pricing.PromotionValidator
}

// NewPromotionService creates a promotion service
func NewPromotionService(
	promoRepo pricing.PromotionCodeRepository,
	usageRepo pricing.PromotionUsageRepository,
	validator *pricing.PromotionValidator,
) *PromotionService {
	return &PromotionService{
		promoRepo: promoRepo,
		usageRepo: usageRepo,
		validator: validator,
	}
}

// Create creates a new promotion code
func (s *PromotionService) Create(ctx context.Context, req CreatePromotionRequest) (*PromotionResponse, error) {
	exists, err := s.promoRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A promotion with this code already exists")
	}

	promo, err := pricing.NewPromotionCode(req.Code, pricing.DiscountType(req.Type), req.Value, req.ValidFrom, req.ValidUntil)
	if err != nil {
		return nil, err
	}
	promo.Description = req.Description

	if err := promo.WithUsageCaps(req.MaxUses, req.MaxUsesPerUser); err != nil {
		return nil, err
	}
	if err := promo.WithMinOrderAmount(req.MinOrderAmount); err != nil {
		return nil, err
	}

	if len(req.ApplicableCruises) > 0 || len(req.ApplicableCategories) > 0 {
		categories, err := parseCategories(req.ApplicableCategories)
		if err != nil {
			return nil, err
		}
		if err := promo.ScopeTo(req.ApplicableCruises, categories); err != nil {
			return nil, err
		}
	}

	if err := s.promoRepo.Save(ctx, promo); err != nil {
		return nil, err
	}
	return ToPromotionResponse(promo), nil
}

// GetByID returns a promotion by ID
func (s *PromotionService) GetByID(ctx context.Context, id uuid.UUID) (*PromotionResponse, error) {
	promo, err := s.promoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPromotionResponse(promo), nil
}

// GetByCode returns a promotion by its code. Unlike validation, an
// unknown code here is a lookup failure for the admin API.
func (s *PromotionService) GetByCode(ctx context.Context, code string) (*PromotionResponse, error) {
	promo, err := s.promoRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, shared.ErrNotFound
	}
	return ToPromotionResponse(promo), nil
}

// List returns promotions matching the filter, with the total count
func (s *PromotionService) List(ctx context.Context, f ListFilter) (*shared.Paginated[PromotionResponse], error) {
	filter := f.toDomain()

	promos, err := s.promoRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.promoRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]PromotionResponse, len(promos))
	for i, promo := range promos {
		responses[i] = *ToPromotionResponse(&promo)
	}
	paginated := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &paginated, nil
}

// Update applies the given changes to a promotion. The code, discount
// type and value are immutable; create a new promotion instead.
func (s *PromotionService) Update(ctx context.Context, id uuid.UUID, req UpdatePromotionRequest) (*PromotionResponse, error) {
	promo, err := s.promoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		promo.Description = *req.Description
	}
	if req.ValidFrom != nil || req.ValidUntil != nil {
		validFrom := promo.ValidFrom
		validUntil := promo.ValidUntil
		if req.ValidFrom != nil {
			validFrom = req.ValidFrom.UTC()
		}
		if req.ValidUntil != nil {
			validUntil = req.ValidUntil.UTC()
		}
		if !validFrom.Before(validUntil) {
			return nil, shared.NewDomainError("INVALID_VALIDITY_WINDOW", "validFrom must be before validUntil")
		}
		promo.ValidFrom = validFrom
		promo.ValidUntil = validUntil
	}
	if req.MaxUses != nil || req.MaxUsesPerUser != nil {
		maxUses := promo.MaxUses
		maxUsesPerUser := promo.MaxUsesPerUser
		if req.MaxUses != nil {
			maxUses = req.MaxUses
		}
		if req.MaxUsesPerUser != nil {
			maxUsesPerUser = req.MaxUsesPerUser
		}
		if err := promo.WithUsageCaps(maxUses, maxUsesPerUser); err != nil {
			return nil, err
		}
	}
	if req.MinOrderAmount != nil {
		if err := promo.WithMinOrderAmount(req.MinOrderAmount); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			promo.Activate()
		} else {
			promo.Deactivate()
		}
	}

	if req.ApplicableCruises != nil || req.ApplicableCategories != nil {
		var cruiseIDs []uuid.UUID
		if req.ApplicableCruises != nil {
			cruiseIDs = *req.ApplicableCruises
		} else {
			for _, raw := range promo.ApplicableCruises.Members() {
				parsed, err := uuid.Parse(raw)
				if err != nil {
					continue
				}
				cruiseIDs = append(cruiseIDs, parsed)
			}
		}

		categoryStrs := promo.ApplicableCategories.Members()
		if req.ApplicableCategories != nil {
			categoryStrs = *req.ApplicableCategories
		}
		categories, err := parseCategories(categoryStrs)
		if err != nil {
			return nil, err
		}

		if err := promo.ScopeTo(cruiseIDs, categories); err != nil {
			return nil, err
		}
	}

	promo.Touch()
	promo.IncrementVersion()
	if err := s.promoRepo.Save(ctx, promo); err != nil {
		return nil, err
	}
	return ToPromotionResponse(promo), nil
}

// Activate enables a promotion
func (s *PromotionService) Activate(ctx context.Context, id uuid.UUID) (*PromotionResponse, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate disables a promotion without deleting it
func (s *PromotionService) Deactivate(ctx context.Context, id uuid.UUID) (*PromotionResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *PromotionService) setActive(ctx context.Context, id uuid.UUID, active bool) (*PromotionResponse, error) {
	promo, err := s.promoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		promo.Activate()
	} else {
		promo.Deactivate()
	}
	if err := s.promoRepo.Save(ctx, promo); err != nil {
		return nil, err
	}
	return ToPromotionResponse(promo), nil
}

// Delete removes a promotion permanently
func (s *PromotionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.promoRepo.Delete(ctx, id)
}

// Validate checks a code against an order without consuming a use
func (s *PromotionService) Validate(ctx context.Context, code string, req ValidatePromotionRequest) (*pricing.PromotionValidation, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	validation, err := s.validator.Validate(ctx, pricing.PromotionValidationInput{
		Code:        code,
		CruiseID:    req.CruiseID,
		Category:    category,
		TotalAmount: req.TotalAmount,
		UserID:      req.UserID,
		Now:         time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return &validation, nil
}

// Redeem validates a code and consumes one use atomically. A code that
// fails validation, or loses the race for the last remaining use, is
// reported as a rejection rather than an error.
func (s *PromotionService) Redeem(ctx context.Context, code string, req RedeemPromotionRequest) (*RedeemPromotionResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	validation, err := s.validator.Validate(ctx, pricing.PromotionValidationInput{
		Code:        code,
		CruiseID:    req.CruiseID,
		Category:    category,
		TotalAmount: req.TotalAmount,
		UserID:      &req.UserID,
		Now:         time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if !validation.IsValid {
		return &RedeemPromotionResponse{
			Redeemed: false,
			Reason:   validation.Reason,
			Message:  validation.Message,
		}, nil
	}

	usage := pricing.NewPromotionUsage(validation.Promotion.ID, req.UserID, validation.DiscountAmount)
	if err := s.promoRepo.Redeem(ctx, validation.Promotion.ID, usage); err != nil {
		if errors.Is(err, shared.ErrInvalidState) {
			return &RedeemPromotionResponse{
				Redeemed: false,
				Reason:   pricing.PromoReasonUsageLimit,
				Message:  "Promotion code usage limit reached",
			}, nil
		}
		return nil, err
	}

	return &RedeemPromotionResponse{
		Redeemed:        true,
		DiscountApplied: validation.DiscountAmount,
		Message:         "Promotion code redeemed",
	}, nil
}

// ListUsages lists redemptions of a promotion, most recent first
func (s *PromotionService) ListUsages(ctx context.Context, promotionID uuid.UUID, f ListFilter) ([]pricing.PromotionUsage, error) {
	if _, err := s.promoRepo.FindByID(ctx, promotionID); err != nil {
		return nil, err
	}
	return s.usageRepo.FindByPromotion(ctx, promotionID, f.toDomain())
}
