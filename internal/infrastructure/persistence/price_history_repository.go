package persistence

import (
	"context"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPriceHistoryRepository implements pricing.PriceHistoryRepository
// using GORM. Append-only: there is no update or delete path.
type GormPriceHistoryRepository struct {
	db *gorm.DB
}

// NewGormPriceHistoryRepository creates a new GormPriceHistoryRepository
func NewGormPriceHistoryRepository(db *gorm.DB) *GormPriceHistoryRepository {
	return &GormPriceHistoryRepository{db: db}
}

// Append stores a new history record
func (r *GormPriceHistoryRepository) Append(ctx context.Context, record *pricing.PriceHistory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByCruiseAndCategory lists history for a cruise/category pair, most recent first
func (r *GormPriceHistoryRepository) FindByCruiseAndCategory(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, filter shared.Filter) ([]pricing.PriceHistory, error) {
	var records []pricing.PriceHistory
	if err := r.db.WithContext(ctx).
		Where("cruise_id = ? AND category = ?", cruiseID, category).
		Order("recorded_at DESC").
		Offset(filter.Offset()).Limit(filter.Limit()).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CountByCruiseAndCategory counts history rows for a pair
func (r *GormPriceHistoryRepository) CountByCruiseAndCategory(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&pricing.PriceHistory{}).
		Where("cruise_id = ? AND category = ?", cruiseID, category).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormPriceHistoryRepository implements PriceHistoryRepository
var _ pricing.PriceHistoryRepository = (*GormPriceHistoryRepository)(nil)
