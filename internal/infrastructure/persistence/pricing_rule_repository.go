package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPricingRuleRepository implements pricing.PricingRuleRepository using GORM
type GormPricingRuleRepository struct {
	db *gorm.DB
}

// NewGormPricingRuleRepository creates a new GormPricingRuleRepository
func NewGormPricingRuleRepository(db *gorm.DB) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{db: db}
}

// FindByID finds a rule by its ID
func (r *GormPricingRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error) {
	var rule pricing.PricingRule
	if err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rule, nil
}

// FindByName finds a rule by its unique name
func (r *GormPricingRuleRepository) FindByName(ctx context.Context, name string) (*pricing.PricingRule, error) {
	var rule pricing.PricingRule
	if err := r.db.WithContext(ctx).
		Where("name = ?", strings.TrimSpace(name)).
		First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rule, nil
}

// FindAll finds all rules matching the filter
func (r *GormPricingRuleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.PricingRule, error) {
	var rules []pricing.PricingRule
	query := r.applySearch(r.db.WithContext(ctx).Model(&pricing.PricingRule{}), filter).
		Offset(filter.Offset()).Limit(filter.Limit())

	if filter.OrderBy != "" {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	} else {
		query = query.Order("priority DESC, created_at DESC")
	}

	if err := query.Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// ListActive returns all active rules ordered by priority descending.
// Ordering matches the in-memory selection tiebreak so the first
// applicable row is also the one selection would pick.
func (r *GormPricingRuleRepository) ListActive(ctx context.Context) ([]pricing.PricingRule, error) {
	var rules []pricing.PricingRule
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC, created_at DESC, id DESC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// Save creates or updates a rule
func (r *GormPricingRuleRepository) Save(ctx context.Context, rule *pricing.PricingRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

// Delete deletes a rule
func (r *GormPricingRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&pricing.PricingRule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts rules matching the filter
func (r *GormPricingRuleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&pricing.PricingRule{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a rule with the given name exists
func (r *GormPricingRuleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&pricing.PricingRule{}).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPricingRuleRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ?", pattern)
	}
	for key, value := range filter.Filters {
		if key == "is_active" {
			query = query.Where("is_active = ?", value)
		}
	}
	return query
}

// Ensure GormPricingRuleRepository implements PricingRuleRepository
var _ pricing.PricingRuleRepository = (*GormPricingRuleRepository)(nil)
