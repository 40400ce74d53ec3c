/*
Package pricing implements the seasonal rate engine for the charter fleet.

PURPOSE:
  This package contains the deterministic core behind every price shown on
  the site: normalizing raw CMS rate fields into a seasonal rate table,
  resolving the weekly rate in effect on any calendar date, and pricing a
  stay between arbitrary check-in/check-out dates.

KEY CONCEPTS IN THIS FILE (types.go):
  - SeasonalPrice: One rate rule, bound to a month or an explicit day range
  - RateTable: Ordered rule list with a default rate fallback chain
  - StaySegment / StayPriceBreakdown: Priced stay output, per-month buckets

DESIGN PRINCIPLES:
  1. Purity: Every function is a pure function of its arguments
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Defensive parsing: Malformed source data degrades, never crashes
  4. First match wins: Rules evaluate in source order

SEE ALSO:
  - parser.go: Raw CMS text to RateTable conversion
  - stay.go: Stay pricing across rate periods
*/
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONTH-DAY - Year-agnostic point in the season calendar
// =============================================================================

// MonthDay is a day of the year without a year, the unit seasonal ranges
// are expressed in ("01-01 to 03-31" recurs every year).
type MonthDay struct {
	Month int // 1-12
	Day   int // 1-31
}

// Composite returns month*100+day, the integer encoding used for range
// comparison. Inclusive on both ends by construction.
func (md MonthDay) Composite() int { return md.Month*100 + md.Day }

func (md MonthDay) Valid() bool {
	return md.Month >= 1 && md.Month <= 12 && md.Day >= 1 && md.Day <= 31
}

// =============================================================================
// SEASONAL PRICE - One rate rule
// =============================================================================

// SeasonalPrice binds a period of the year to a weekly (7-night) rate.
// Exactly one of two forms is active:
//   - Range rule:  Start and End are both set (always paired)
//   - Month rule:  BoundMonth is set, matching any date in that month
//
// A rule with neither (an unrecognized month label) is retained but inert:
// it never matches any date. That is the defined degrade path for garbage
// source data, not an error.
type SeasonalPrice struct {
	PeriodLabel string
	Start       *MonthDay
	End         *MonthDay
	BoundMonth  time.Month // 0 when range-based or inert
	WeeklyRate  decimal.Decimal
}

// Matches reports whether the rule applies to the given date.
// Range comparison uses the composite month*100+day encoding, inclusive on
// both ends. A range whose end sorts before its start (a Dec-Jan wrap)
// never matches under this encoding; that is a known limitation of the
// source data format, not silently handled.
func (sp SeasonalPrice) Matches(d Date) bool {
	if sp.Start != nil && sp.End != nil {
		v := d.MonthDayValue()
		return sp.Start.Composite() <= v && v <= sp.End.Composite()
	}
	if sp.BoundMonth != 0 {
		return d.Month() == sp.BoundMonth
	}
	return false
}

// =============================================================================
// RATE TABLE - Ordered rules plus default fallback
// =============================================================================

// BaselineWeeklyRate is the last-resort weekly rate when a property carries
// neither a matching rule nor a usable default. It exists so that a listing
// with broken rate data still sorts and quotes as something rather than as
// free.
var BaselineWeeklyRate = decimal.NewFromInt(15000)

// RateTable is a property's normalized seasonal price list. Rules are
// evaluated in the order provided; when ranges overlap (a data-entry
// anomaly) the first match wins.
type RateTable struct {
	Rules             []SeasonalPrice
	DefaultWeeklyRate decimal.Decimal
}

// RateFor returns the weekly rate in effect on the given date: the first
// matching rule's rate, else the resolved default.
func (t RateTable) RateFor(d Date) decimal.Decimal {
	for _, rule := range t.Rules {
		if rule.Matches(d) {
			return rule.WeeklyRate
		}
	}
	return t.ResolvedDefault()
}

// ResolvedDefault returns the table's default rate, falling back to
// BaselineWeeklyRate when the table carries no usable default (zero is the
// "price unknown" sentinel from ParsePrice, never a real rate).
func (t RateTable) ResolvedDefault() decimal.Decimal {
	if t.DefaultWeeklyRate.IsPositive() {
		return t.DefaultWeeklyRate
	}
	return BaselineWeeklyRate
}

// WithDefault returns a copy of the table using rate as the default when
// rate is a known price. An unknown (zero) rate leaves the table unchanged,
// preserving the fallback chain: table default, caller default, baseline.
func (t RateTable) WithDefault(rate decimal.Decimal) RateTable {
	if rate.IsPositive() {
		t.DefaultWeeklyRate = rate
	}
	return t
}

// CheapestWeeklyRate returns the lowest priced rule or the resolved
// default, whichever is cheaper. Listing cards use this as the "from"
// price and the grid sorts on it.
func (t RateTable) CheapestWeeklyRate() decimal.Decimal {
	cheapest := t.ResolvedDefault()
	for _, rule := range t.Rules {
		if rule.WeeklyRate.IsPositive() && rule.WeeklyRate.LessThan(cheapest) {
			cheapest = rule.WeeklyRate
		}
	}
	return cheapest
}

// =============================================================================
// STAY BREAKDOWN - Output of the stay price calculator
// =============================================================================

// StaySegment is one accounting bucket of a priced stay, keyed by calendar
// month. Subtotal is round(nights/7 * rate), rounded per segment.
type StaySegment struct {
	PeriodLabel string
	Nights      int
	WeeklyRate  decimal.Decimal
	Subtotal    decimal.Decimal
}

// StayPriceBreakdown is the full quote for a stay. Total is the sum of the
// already-rounded segment subtotals; rounding happens per segment, not on
// the grand total, so displayed segments always add up to the displayed
// total exactly.
type StayPriceBreakdown struct {
	TotalNights int
	Segments    []StaySegment
	Total       decimal.Decimal
}
