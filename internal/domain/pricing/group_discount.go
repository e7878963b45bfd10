package pricing

import "github.com/shopspring/decimal"

// Group booking starts at 3 cabins; the band boundaries are fixed by
// convention while the rates come from the rule.
const groupBookingMinCabins = 3

// GroupDiscount is the resolved tier for a cabin count
type GroupDiscount struct {
	Rate decimal.Decimal // fraction in [0, 1)
	Band string          // "3-5", "6-10", "11+" or "" when no tier applies
}

// ResolveGroupDiscount maps a cabin count to the rule's tiered discount
// rate. Counts below 3 get no discount. Never fails.
func ResolveGroupDiscount(numCabins int, rule *PricingRule) GroupDiscount {
	switch {
	case numCabins < groupBookingMinCabins:
		return GroupDiscount{Rate: decimal.Zero}
	case numCabins <= 5:
		return GroupDiscount{Rate: rule.GroupDiscount3To5, Band: "3-5"}
	case numCabins <= 10:
		return GroupDiscount{Rate: rule.GroupDiscount6To10, Band: "6-10"}
	default:
		return GroupDiscount{Rate: rule.GroupDiscount11Plus, Band: "11+"}
	}
}
