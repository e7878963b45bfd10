package pricing

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RuleService handles pricing rule administration
type RuleService struct {
	ruleRepo pricing.PricingRuleRepository
}

// NewRuleService creates a rule service
func NewRuleService(ruleRepo pricing.PricingRuleRepository) *RuleService {
	return &RuleService{ruleRepo: ruleRepo}
}

// Create creates a new pricing rule. Knobs left nil take the system
// defaults; rule names are unique.
func (s *RuleService) Create(ctx context.Context, req CreateRuleRequest) (*RuleResponse, error) {
	exists, err := s.ruleRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A pricing rule with this name already exists")
	}

	rule, err := pricing.NewPricingRule(req.Name, req.Priority, req.Knobs.toConfig())
	if err != nil {
		return nil, err
	}
	rule.Description = req.Description

	if len(req.ApplicableCruises) > 0 || len(req.ApplicableCategories) > 0 {
		categories, err := parseCategories(req.ApplicableCategories)
		if err != nil {
			return nil, err
		}
		if err := rule.ScopeTo(req.ApplicableCruises, categories); err != nil {
			return nil, err
		}
	}

	if err := s.ruleRepo.Save(ctx, rule); err != nil {
		return nil, err
	}
	return ToRuleResponse(rule), nil
}

// GetByID returns a rule by ID
func (s *RuleService) GetByID(ctx context.Context, id uuid.UUID) (*RuleResponse, error) {
	rule, err := s.ruleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRuleResponse(rule), nil
}

// List returns rules matching the filter, with the total count
func (s *RuleService) List(ctx context.Context, f ListFilter) (*shared.Paginated[RuleResponse], error) {
	filter := f.toDomain()

	rules, err := s.ruleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ruleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]RuleResponse, len(rules))
	for i, rule := range rules {
		responses[i] = *ToRuleResponse(&rule)
	}
	paginated := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &paginated, nil
}

// Update applies the given changes to a rule. Nil fields keep their
// current value; scope slices, when present, replace the current scope.
func (s *RuleService) Update(ctx context.Context, id uuid.UUID, req UpdateRuleRequest) (*RuleResponse, error) {
	rule, err := s.ruleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		rule.Description = *req.Description
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		if *req.IsActive {
			rule.Activate()
		} else {
			rule.Deactivate()
		}
	}

	if err := rule.ApplyConfig(req.Knobs.toConfig()); err != nil {
		return nil, err
	}

	if req.ApplicableCruises != nil || req.ApplicableCategories != nil {
		var cruiseIDs []uuid.UUID
		if req.ApplicableCruises != nil {
			cruiseIDs = *req.ApplicableCruises
		} else {
			for _, raw := range rule.ApplicableCruises.Members() {
				parsed, err := uuid.Parse(raw)
				if err != nil {
					continue
				}
				cruiseIDs = append(cruiseIDs, parsed)
			}
		}

		categoryStrs := rule.ApplicableCategories.Members()
		if req.ApplicableCategories != nil {
			categoryStrs = *req.ApplicableCategories
		}
		categories, err := parseCategories(categoryStrs)
		if err != nil {
			return nil, err
		}

		if err := rule.ScopeTo(cruiseIDs, categories); err != nil {
			return nil, err
		}
	}

	if err := s.ruleRepo.Save(ctx, rule); err != nil {
		return nil, err
	}
	return ToRuleResponse(rule), nil
}

// Activate makes a rule eligible for selection
func (s *RuleService) Activate(ctx context.Context, id uuid.UUID) (*RuleResponse, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate removes a rule from selection without deleting it
func (s *RuleService) Deactivate(ctx context.Context, id uuid.UUID) (*RuleResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *RuleService) setActive(ctx context.Context, id uuid.UUID, active bool) (*RuleResponse, error) {
	rule, err := s.ruleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		rule.Activate()
	} else {
		rule.Deactivate()
	}
	if err := s.ruleRepo.Save(ctx, rule); err != nil {
		return nil, err
	}
	return ToRuleResponse(rule), nil
}

// Delete removes a rule permanently. Deactivation is usually the better
// operation since deleted rules disappear from the audit trail.
func (s *RuleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.ruleRepo.Delete(ctx, id)
}
