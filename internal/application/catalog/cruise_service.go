package catalog

import (
	"context"
	"strings"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CruiseService handles cruise catalog administration
type CruiseService struct {
	cruiseRepo catalog.CruiseRepository
}

// NewCruiseService creates a new CruiseService
func NewCruiseService(cruiseRepo catalog.CruiseRepository) *CruiseService {
	return &CruiseService{cruiseRepo: cruiseRepo}
}

// Create creates a new cruise
func (s *CruiseService) Create(ctx context.Context, req CreateCruiseRequest) (*CruiseResponse, error) {
	exists, err := s.cruiseRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Cruise with this code already exists")
	}

	cruise, err := catalog.NewCruise(req.Code, req.Name, req.DepartureDate, req.DurationNights, req.BasePrice)
	if err != nil {
		return nil, err
	}
	cruise.Description = req.Description
	cruise.DeparturePort = req.DeparturePort

	if err := s.cruiseRepo.Save(ctx, cruise); err != nil {
		return nil, err
	}
	return ToCruiseResponse(cruise), nil
}

// GetByID retrieves a cruise by ID
func (s *CruiseService) GetByID(ctx context.Context, id uuid.UUID) (*CruiseResponse, error) {
	cruise, err := s.cruiseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCruiseResponse(cruise), nil
}

// GetByCode retrieves a cruise by its code
func (s *CruiseService) GetByCode(ctx context.Context, code string) (*CruiseResponse, error) {
	cruise, err := s.cruiseRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return ToCruiseResponse(cruise), nil
}

// List retrieves cruises matching the filter
func (s *CruiseService) List(ctx context.Context, filter CruiseListFilter) ([]CruiseResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	if filter.SortBy != "" {
		domainFilter.OrderBy = filter.SortBy
		if filter.SortDesc {
			domainFilter.OrderDir = "desc"
		} else {
			domainFilter.OrderDir = "asc"
		}
	} else {
		domainFilter.OrderBy = ""
	}

	cruises, err := s.cruiseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.cruiseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CruiseResponse, len(cruises))
	for i, c := range cruises {
		responses[i] = *ToCruiseResponse(&c)
	}
	return responses, total, nil
}

// Update updates a cruise's descriptive fields
func (s *CruiseService) Update(ctx context.Context, id uuid.UUID, req UpdateCruiseRequest) (*CruiseResponse, error) {
	cruise, err := s.cruiseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cruise.Update(req.Name, req.Description, req.DeparturePort); err != nil {
		return nil, err
	}
	if err := s.cruiseRepo.Save(ctx, cruise); err != nil {
		return nil, err
	}
	return ToCruiseResponse(cruise), nil
}

// UpdateBasePrice changes a cruise's list price. The recalculation
// sweep picks the movement up and records it in the price history.
func (s *CruiseService) UpdateBasePrice(ctx context.Context, id uuid.UUID, req UpdateBasePriceRequest) (*CruiseResponse, error) {
	cruise, err := s.cruiseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cruise.UpdateBasePrice(req.BasePrice); err != nil {
		return nil, err
	}
	if err := s.cruiseRepo.Save(ctx, cruise); err != nil {
		return nil, err
	}
	return ToCruiseResponse(cruise), nil
}

// SetStatus activates or deactivates a cruise
func (s *CruiseService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*CruiseResponse, error) {
	cruise, err := s.cruiseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(status) {
	case string(catalog.CruiseStatusActive):
		cruise.Activate()
	case string(catalog.CruiseStatusInactive):
		cruise.Deactivate()
	default:
		return nil, shared.NewDomainError("INVALID_STATUS", "Status must be active or inactive")
	}

	if err := s.cruiseRepo.Save(ctx, cruise); err != nil {
		return nil, err
	}
	return ToCruiseResponse(cruise), nil
}

// Delete deletes a cruise
func (s *CruiseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.cruiseRepo.Delete(ctx, id)
}
