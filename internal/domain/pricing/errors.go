package pricing

import "github.com/cruisehub/backend/internal/domain/shared"

// Engine-level errors. These are hard failures: pricing cannot proceed.
// Degraded outcomes (bad promo code, missing inventory signal) are never
// errors; they resolve to safe defaults recorded in the breakdown.
var (
	// ErrCruiseNotFound is returned when the cruise ID does not resolve
	// to a known base price
	ErrCruiseNotFound = shared.NewDomainError("CRUISE_NOT_FOUND", "Cruise not found")

	// ErrInvalidCabinCategory is returned for a cabin category outside
	// {inside, oceanview, balcony, suite}
	ErrInvalidCabinCategory = shared.NewDomainError("INVALID_CABIN_CATEGORY", "Unknown cabin category")

	// ErrNoApplicableRule is returned when no active pricing rule covers
	// the cruise/category and no unscoped default rule exists. Pricing
	// without a rule is undefined and must not silently fall back to
	// "no adjustment".
	ErrNoApplicableRule = shared.NewDomainError("NO_APPLICABLE_RULE", "No applicable pricing rule")

	// ErrInvalidCabinCount is returned for a non-positive cabin count
	ErrInvalidCabinCount = shared.NewDomainError("INVALID_CABIN_COUNT", "Number of cabins must be positive")
)
