/*
parser.go - Defensive parsing of raw CMS rate fields

PURPOSE:
  Converts the untyped text the CMS exports (currency strings with stray
  symbols and separators, pipe-delimited lists, free-text season labels)
  into a normalized RateTable.

FAILURE SEMANTICS:
  Nothing in this file ever returns an error. Source data is uncontrolled
  spreadsheet input; a malformed entry degrades to "no rule" and pricing
  falls through to the default rate. Surfacing a parse error to a visitor
  browsing a villa is strictly worse than quoting the default.

SEE ALSO:
  - types.go: RateTable and the default fallback chain
*/
package pricing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PRICE STRINGS
// =============================================================================

// ParsePrice extracts an integer amount from a currency-formatted string
// ("€ 35 000", "35,000", "$12500"). Every non-digit rune is stripped and
// the remainder parsed as an integer. Empty or unparseable input yields
// zero, the "price unknown" sentinel; callers must never read zero as free.
func ParsePrice(raw string) decimal.Decimal {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return decimal.Zero
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(n)
}

// =============================================================================
// PIPE-DELIMITED LISTS
// =============================================================================

// SplitPipeList splits a CMS multi-value field on "|", trimming each entry
// and dropping empties. Used for images, amenities, rate rules, occupied
// dates and arrival policies alike.
func SplitPipeList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// =============================================================================
// RANGE-BASED RATE RULES
// =============================================================================

// rangeRulePattern matches one "MM-DD to MM-DD: €amount" entry. The amount
// tail is parsed separately by ParsePrice so internal thousands separators
// and currency symbols survive.
var rangeRulePattern = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})\s*to\s*(\d{1,2})-(\d{1,2})\s*:\s*(.+)$`)

// ParseRangeRates builds a RateTable from a pipe-delimited list of explicit
// day-range entries, e.g.
//
//	"01-01 to 03-31: €4 800 | 04-01 to 06-30: €5 400"
//
// Entries that do not match the expected shape, carry an out-of-range
// month/day, or parse to an unknown price are silently dropped. Input
// order is preserved; it is the evaluation order.
func ParseRangeRates(raw string) RateTable {
	var table RateTable
	for _, entry := range SplitPipeList(raw) {
		m := rangeRulePattern.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		start := MonthDay{Month: mustInt(m[1]), Day: mustInt(m[2])}
		end := MonthDay{Month: mustInt(m[3]), Day: mustInt(m[4])}
		if !start.Valid() || !end.Valid() {
			continue
		}
		rate := ParsePrice(m[5])
		if !rate.IsPositive() {
			continue
		}
		table.Rules = append(table.Rules, SeasonalPrice{
			PeriodLabel: entry,
			Start:       &start,
			End:         &end,
			WeeklyRate:  rate,
		})
	}
	return table
}

// mustInt converts a regex digit capture. The pattern guarantees digits.
func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// =============================================================================
// MONTH-LABEL RATE RULES
// =============================================================================

// MonthPrice is one raw CMS row binding a free-text season label to a
// price string, e.g. {"July / August", "€35 000"}.
type MonthPrice struct {
	Label string
	Price string
}

// ParseMonthLabelRates builds a RateTable from month-label rows. The label
// is matched by substring against the canonical month names (full names
// and 3-letter abbreviations, case-insensitive); the first month found
// anywhere in the label binds the rule. Labels naming no known month are
// retained as inert rules: they never match a date, and pricing falls
// through to the default. Degrade-to-noop, not a crash.
func ParseMonthLabelRates(rows []MonthPrice) RateTable {
	var table RateTable
	for _, row := range rows {
		rule := SeasonalPrice{
			PeriodLabel: row.Label,
			WeeklyRate:  ParsePrice(row.Price),
		}
		if m, ok := MonthInText(row.Label); ok {
			rule.BoundMonth = m
		}
		table.Rules = append(table.Rules, rule)
	}
	return table
}

// MonthInText scans free text for the first recognizable month name,
// checking January through December in order. Matching on the 3-letter
// abbreviation as a substring also covers the full name.
func MonthInText(text string) (time.Month, bool) {
	lower := strings.ToLower(text)
	for m := time.January; m <= time.December; m++ {
		abbr := strings.ToLower(m.String()[:3])
		if strings.Contains(lower, abbr) {
			return m, true
		}
	}
	return 0, false
}

// MentionsMonth reports whether free text names the given month, by full
// name or 3-letter abbreviation. Arrival policies scope their clauses this
// way ("July and August: Saturday to Saturday").
func MentionsMonth(text string, m time.Month) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(m.String()[:3]))
}
