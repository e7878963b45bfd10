package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCruiseRepository implements catalog.CruiseRepository using GORM
type GormCruiseRepository struct {
	db *gorm.DB
}

// NewGormCruiseRepository creates a new GormCruiseRepository
func NewGormCruiseRepository(db *gorm.DB) *GormCruiseRepository {
	return &GormCruiseRepository{db: db}
}

// FindByID finds a cruise by its ID
func (r *GormCruiseRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Cruise, error) {
	var cruise catalog.Cruise
	if err := r.db.WithContext(ctx).First(&cruise, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cruise, nil
}

// FindByCode finds a cruise by its code
func (r *GormCruiseRepository) FindByCode(ctx context.Context, code string) (*catalog.Cruise, error) {
	var cruise catalog.Cruise
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&cruise).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cruise, nil
}

// FindAll finds all cruises matching the filter
func (r *GormCruiseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Cruise, error) {
	var cruises []catalog.Cruise
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Cruise{}), filter)
	if err := query.Find(&cruises).Error; err != nil {
		return nil, err
	}
	return cruises, nil
}

// FindActive finds all cruises currently on sale
func (r *GormCruiseRepository) FindActive(ctx context.Context) ([]catalog.Cruise, error) {
	var cruises []catalog.Cruise
	if err := r.db.WithContext(ctx).
		Where("status = ?", catalog.CruiseStatusActive).
		Order("departure_date ASC").
		Find(&cruises).Error; err != nil {
		return nil, err
	}
	return cruises, nil
}

// Save creates or updates a cruise
func (r *GormCruiseRepository) Save(ctx context.Context, cruise *catalog.Cruise) error {
	return r.db.WithContext(ctx).Save(cruise).Error
}

// Delete deletes a cruise
func (r *GormCruiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Cruise{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts cruises matching the filter
func (r *GormCruiseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&catalog.Cruise{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a cruise with the given code exists
func (r *GormCruiseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Cruise{}).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCruiseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)
	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if filter.OrderBy != "" {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	} else {
		query = query.Order("departure_date ASC")
	}
	return query
}

func (r *GormCruiseRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "departure_port":
			query = query.Where("departure_port = ?", value)
		}
	}
	return query
}

// Ensure GormCruiseRepository implements CruiseRepository
var _ catalog.CruiseRepository = (*GormCruiseRepository)(nil)
