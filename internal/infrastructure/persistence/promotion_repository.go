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

// GormPromotionCodeRepository implements pricing.PromotionCodeRepository using GORM
type GormPromotionCodeRepository struct {
	db *gorm.DB
}

// NewGormPromotionCodeRepository creates a new GormPromotionCodeRepository
func NewGormPromotionCodeRepository(db *gorm.DB) *GormPromotionCodeRepository {
	return &GormPromotionCodeRepository{db: db}
}

// FindByID finds a promotion by its ID
func (r *GormPromotionCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.PromotionCode, error) {
	var promo pricing.PromotionCode
	if err := r.db.WithContext(ctx).First(&promo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &promo, nil
}

// FindByCode finds a promotion by code. Codes are stored upper-cased, so
// matching upper-cases the input. An unknown code returns (nil, nil)
// rather than an error.
func (r *GormPromotionCodeRepository) FindByCode(ctx context.Context, code string) (*pricing.PromotionCode, error) {
	var promo pricing.PromotionCode
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promo, nil
}

// FindAll finds all promotions matching the filter
func (r *GormPromotionCodeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.PromotionCode, error) {
	var promos []pricing.PromotionCode
	query := r.applySearch(r.db.WithContext(ctx).Model(&pricing.PromotionCode{}), filter).
		Offset(filter.Offset()).Limit(filter.Limit()).
		Order("created_at DESC")

	if err := query.Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// Save creates or updates a promotion
func (r *GormPromotionCodeRepository) Save(ctx context.Context, promo *pricing.PromotionCode) error {
	return r.db.WithContext(ctx).Save(promo).Error
}

// Delete deletes a promotion
func (r *GormPromotionCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&pricing.PromotionCode{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts promotions matching the filter
func (r *GormPromotionCodeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&pricing.PromotionCode{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a promotion with the given code exists
func (r *GormPromotionCodeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&pricing.PromotionCode{}).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Redeem increments current_uses under a guard that re-checks both the
// global and the per-user cap in SQL, then appends the usage ledger row.
// Both statements run in one transaction so a lost race leaves no
// partial state. The row lock taken by the update serializes racing
// redemptions of the same code, so the per-user subquery counts
// committed ledger rows.
func (r *GormPromotionCodeRepository) Redeem(ctx context.Context, promotionID uuid.UUID, usage *pricing.PromotionUsage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&pricing.PromotionCode{}).
			Where("id = ? AND (max_uses IS NULL OR current_uses < max_uses)", promotionID).
			Where("(max_uses_per_user IS NULL OR (SELECT COUNT(*) FROM promotion_usages WHERE promotion_id = ? AND user_id = ?) < max_uses_per_user)",
				promotionID, usage.UserID).
			UpdateColumn("current_uses", gorm.Expr("current_uses + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrInvalidState
		}
		return tx.Create(usage).Error
	})
}

func (r *GormPromotionCodeRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToUpper(filter.Search) + "%"
		query = query.Where("code LIKE ?", pattern)
	}
	for key, value := range filter.Filters {
		if key == "is_active" {
			query = query.Where("is_active = ?", value)
		}
	}
	return query
}

// Ensure GormPromotionCodeRepository implements PromotionCodeRepository
var _ pricing.PromotionCodeRepository = (*GormPromotionCodeRepository)(nil)

// GormPromotionUsageRepository implements pricing.PromotionUsageRepository using GORM
type GormPromotionUsageRepository struct {
	db *gorm.DB
}

// NewGormPromotionUsageRepository creates a new GormPromotionUsageRepository
func NewGormPromotionUsageRepository(db *gorm.DB) *GormPromotionUsageRepository {
	return &GormPromotionUsageRepository{db: db}
}

// CountByUser counts redemptions of a promotion by one user
func (r *GormPromotionUsageRepository) CountByUser(ctx context.Context, promotionID, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&pricing.PromotionUsage{}).
		Where("promotion_id = ? AND user_id = ?", promotionID, userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByPromotion lists redemptions of a promotion, most recent first
func (r *GormPromotionUsageRepository) FindByPromotion(ctx context.Context, promotionID uuid.UUID, filter shared.Filter) ([]pricing.PromotionUsage, error) {
	var usages []pricing.PromotionUsage
	if err := r.db.WithContext(ctx).
		Where("promotion_id = ?", promotionID).
		Order("redeemed_at DESC").
		Offset(filter.Offset()).Limit(filter.Limit()).
		Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}

// Ensure GormPromotionUsageRepository implements PromotionUsageRepository
var _ pricing.PromotionUsageRepository = (*GormPromotionUsageRepository)(nil)
