package pricing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/domain/inventory"
	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/cruisehub/backend/internal/infrastructure/cache"
	"github.com/cruisehub/backend/internal/infrastructure/scheduler"
	"github.com/cruisehub/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// PriceService serves price quotes, exposes the price change history
// and runs the periodic repricing sweep
type PriceService struct {
	engine      *pricing.Engine
	cruiseRepo  catalog.CruiseRepository
	invRepo     inventory.CabinInventoryRepository
	historyRepo pricing.PriceHistoryRepository
	snapshots   cache.PriceSnapshotStore
	snapshotTTL time.Duration
	logger      *zap.Logger
}

var _ scheduler.Recalculator = (*PriceService)(nil)

// NewPriceService creates a price service
func NewPriceService(
	engine *pricing.Engine,
	cruiseRepo catalog.CruiseRepository,
	invRepo inventory.CabinInventoryRepository,
	historyRepo pricing.PriceHistoryRepository,
	snapshots cache.PriceSnapshotStore,
	snapshotTTL time.Duration,
	logger *zap.Logger,
) *PriceService {
	return &PriceService{
		engine:      engine,
		cruiseRepo:  cruiseRepo,
		invRepo:     invRepo,
		historyRepo: historyRepo,
		snapshots:   snapshots,
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

// Quote computes the price for the requested booking. Single cabin
// quotes without a promo code or departure date override are served
// from the snapshot cache when a fresh snapshot exists; anything
// personalized, multi-cabin or date-overridden is always computed live.
func (s *PriceService) Quote(ctx context.Context, req QuoteRequest) (*PriceResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	numCabins := req.NumCabins
	if numCabins == 0 {
		numCabins = 1
	}
	if numCabins < 0 {
		return nil, pricing.ErrInvalidCabinCount
	}

	cacheable := numCabins == 1 && req.PromoCode == "" && req.DepartureDate == nil
	if cacheable {
		snapshot, ok, err := s.snapshots.Get(ctx, req.CruiseID, category)
		if err != nil {
			s.logger.Warn("Price snapshot lookup failed",
				zap.String("cruise_id", req.CruiseID.String()),
				zap.String("category", category.String()),
				zap.Error(err),
			)
		} else if ok {
			return s.toResponse(req.CruiseID, category, numCabins, snapshot.Price, snapshot.ComputedAt), nil
		}
	}

	price, err := s.calculate(ctx, pricing.PriceParams{
		CruiseID:      req.CruiseID,
		Category:      category,
		NumCabins:     numCabins,
		PromoCode:     req.PromoCode,
		UserID:        req.UserID,
		DepartureDate: req.DepartureDate,
	})
	if err != nil {
		return nil, err
	}

	computedAt := time.Now().UTC()
	if cacheable {
		snapshot := cache.PriceSnapshot{Price: price, ComputedAt: computedAt}
		if err := s.snapshots.Set(ctx, req.CruiseID, category, snapshot, s.snapshotTTL); err != nil {
			s.logger.Warn("Price snapshot store failed",
				zap.String("cruise_id", req.CruiseID.String()),
				zap.String("category", category.String()),
				zap.Error(err),
			)
		}
	}

	return s.toResponse(req.CruiseID, category, numCabins, price, computedAt), nil
}

// calculate runs the pricing engine inside a trace span so slow quotes
// can be attributed to a cruise/category pair
func (s *PriceService) calculate(ctx context.Context, params pricing.PriceParams) (pricing.Price, error) {
	ctx, span := telemetry.StartSpan(ctx, "pricing.engine.calculate")
	defer span.End()
	span.SetAttributes(
		attribute.String("cruise.id", params.CruiseID.String()),
		attribute.String("cabin.category", params.Category.String()),
		attribute.Int("cabin.count", params.NumCabins),
	)

	price, err := s.engine.CalculatePrice(ctx, params)
	if err != nil {
		span.RecordError(err)
	}
	return price, err
}

func (s *PriceService) toResponse(cruiseID uuid.UUID, category catalog.CabinCategory, numCabins int, price pricing.Price, computedAt time.Time) *PriceResponse {
	return &PriceResponse{
		CruiseID:     cruiseID,
		Category:     category.String(),
		NumCabins:    numCabins,
		FinalPrice:   price.FinalPrice,
		Currency:     price.Currency,
		Breakdown:    price.Breakdown,
		AppliedRules: price.AppliedRules,
		CalculatedAt: computedAt,
	}
}

// GetHistory lists recorded price changes for a cruise/category pair,
// most recent first
func (s *PriceService) GetHistory(ctx context.Context, cruiseID uuid.UUID, categoryStr string, page, pageSize int) (*shared.Paginated[HistoryEntry], error) {
	category, err := parseCategory(categoryStr)
	if err != nil {
		return nil, err
	}

	filter := shared.DefaultFilter()
	if page > 0 && pageSize > 0 {
		filter.Page = page
		filter.PageSize = pageSize
	}

	records, err := s.historyRepo.FindByCruiseAndCategory(ctx, cruiseID, category, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.historyRepo.CountByCruiseAndCategory(ctx, cruiseID, category)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, len(records))
	for i, record := range records {
		entries[i] = ToHistoryEntry(&record)
	}
	paginated := shared.NewPaginated(entries, total, filter.Page, filter.PageSize)
	return &paginated, nil
}

// RecalculateAll reprices every active cruise/category pair with a
// single-cabin, no-promotion quote, compares against the cached
// snapshot, and appends a history record for every movement. Pairs
// without a cached snapshot seed one silently; the movement cannot be
// attributed without a previous breakdown.
func (s *PriceService) RecalculateAll(ctx context.Context) (scheduler.RecalculationResult, error) {
	var result scheduler.RecalculationResult

	cruises, err := s.cruiseRepo.FindActive(ctx)
	if err != nil {
		return result, err
	}

	for _, cruise := range cruises {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		rows, err := s.invRepo.FindByCruise(ctx, cruise.ID)
		if err != nil {
			s.logger.Warn("Recalculation inventory lookup failed",
				zap.String("cruise_id", cruise.ID.String()), zap.Error(err))
			result.Errors++
			continue
		}

		for _, row := range rows {
			result.PairsChecked++
			if err := s.recalculatePair(ctx, cruise.ID, row.Category, &result); err != nil {
				result.Errors++
			}
		}
	}

	return result, nil
}

func (s *PriceService) recalculatePair(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, result *scheduler.RecalculationResult) error {
	price, err := s.calculate(ctx, pricing.PriceParams{
		CruiseID:  cruiseID,
		Category:  category,
		NumCabins: 1,
	})
	if err != nil {
		if errors.Is(err, pricing.ErrNoApplicableRule) {
			// Not priceable until an admin activates a rule covering it
			return nil
		}
		s.logger.Warn("Recalculation pricing failed",
			zap.String("cruise_id", cruiseID.String()),
			zap.String("category", category.String()),
			zap.Error(err),
		)
		return err
	}

	previous, ok, err := s.snapshots.Get(ctx, cruiseID, category)
	if err != nil {
		s.logger.Warn("Recalculation snapshot lookup failed",
			zap.String("cruise_id", cruiseID.String()),
			zap.String("category", category.String()),
			zap.Error(err),
		)
		ok = false
	}

	if ok && !previous.Price.FinalPrice.Equal(price.FinalPrice) {
		record := pricing.NewPriceHistory(
			cruiseID,
			category,
			previous.Price.FinalPrice,
			price.FinalPrice,
			classifyReason(previous.Price.Breakdown, price.Breakdown),
			strings.Join(price.AppliedRules, "; "),
		)
		if err := s.historyRepo.Append(ctx, record); err != nil {
			s.logger.Error("Recalculation history append failed",
				zap.String("cruise_id", cruiseID.String()),
				zap.String("category", category.String()),
				zap.Error(err),
			)
			return err
		}
		result.PriceChanges++
	}

	snapshot := cache.PriceSnapshot{Price: price, ComputedAt: time.Now().UTC()}
	if err := s.snapshots.Set(ctx, cruiseID, category, snapshot, s.snapshotTTL); err != nil {
		s.logger.Warn("Recalculation snapshot store failed",
			zap.String("cruise_id", cruiseID.String()),
			zap.String("category", category.String()),
			zap.Error(err),
		)
	}
	return nil
}

// classifyReason attributes a price movement to the breakdown component
// that moved the most. A base movement means the list price itself was
// changed by an operator, so it classifies as manual.
func classifyReason(old, new pricing.PriceBreakdown) pricing.ChangeReason {
	baseDelta := new.Base.Sub(old.Base).Abs()
	invDelta := new.InventoryAdjustment.Sub(old.InventoryAdjustment).Abs()
	demandDelta := new.DemandAdjustment.Sub(old.DemandAdjustment).Abs()

	reason := pricing.ChangeReasonManual
	largest := baseDelta
	if invDelta.GreaterThan(largest) {
		reason = pricing.ChangeReasonInventory
		largest = invDelta
	}
	if demandDelta.GreaterThan(largest) {
		reason = pricing.ChangeReasonDemand
	}
	return reason
}
