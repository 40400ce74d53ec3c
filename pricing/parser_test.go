package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridian/rate-engine/pricing"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) pricing.Date {
	return pricing.NewDate(year, month, day)
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// =============================================================================
// PRICE STRING TESTS
// =============================================================================

func TestParsePrice_CurrencyFormats(t *testing.T) {
	// GIVEN: The currency string shapes the CMS actually exports
	// THEN: Each parses to its integer amount
	cases := []struct {
		raw  string
		want int64
	}{
		{"€4800", 4800},
		{"€4,800", 4800},
		{"€15 000", 15000},
		{"  €  35 000  ", 35000},
		{"$12500", 12500},
		{"22000", 22000},
	}
	for _, tc := range cases {
		got := pricing.ParsePrice(tc.raw)
		if !got.Equal(dec(tc.want)) {
			t.Errorf("ParsePrice(%q) = %v, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestParsePrice_UnparseableIsZeroSentinel(t *testing.T) {
	// GIVEN: Empty or digit-free input
	// THEN: Zero, the "price unknown" sentinel - not an error, not free
	for _, raw := range []string{"", "   ", "on request", "€"} {
		if got := pricing.ParsePrice(raw); !got.IsZero() {
			t.Errorf("ParsePrice(%q) = %v, want 0", raw, got)
		}
	}
}

// =============================================================================
// PIPE LIST TESTS
// =============================================================================

func TestSplitPipeList(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"a | b|c ", []string{"a", "b", "c"}},
		{" | a || ", []string{"a"}},
		{"", nil},
		{"   ", nil},
	}
	for _, tc := range cases {
		got := pricing.SplitPipeList(tc.raw)
		if len(got) != len(tc.want) {
			t.Fatalf("SplitPipeList(%q) = %v, want %v", tc.raw, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("SplitPipeList(%q)[%d] = %q, want %q", tc.raw, i, got[i], tc.want[i])
			}
		}
	}
}

// =============================================================================
// RANGE RATE TESTS
// =============================================================================

func TestParseRangeRates_WellFormed(t *testing.T) {
	// GIVEN: Two well-formed entries with spaced thousands separators
	table := pricing.ParseRangeRates("01-01 to 03-31: €4 800 | 04-01 to 04-30: €5 400")

	// THEN: Both rules parse, in input order
	if len(table.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(table.Rules))
	}
	if !table.Rules[0].WeeklyRate.Equal(dec(4800)) {
		t.Errorf("first rule rate = %v, want 4800", table.Rules[0].WeeklyRate)
	}
	if table.Rules[0].Start == nil || table.Rules[0].End == nil {
		t.Fatal("range rule must carry paired start/end")
	}
	if table.Rules[0].Start.Composite() != 101 || table.Rules[0].End.Composite() != 331 {
		t.Errorf("first rule range = %d..%d, want 101..331",
			table.Rules[0].Start.Composite(), table.Rules[0].End.Composite())
	}
}

func TestParseRangeRates_MalformedEntryDropped(t *testing.T) {
	// GIVEN: One garbage entry ahead of one valid entry
	table := pricing.ParseRangeRates("garbage | 01-01 to 02-01: €1000")

	// THEN: Exactly the valid rule survives, no error
	if len(table.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(table.Rules))
	}
	if !table.Rules[0].WeeklyRate.Equal(dec(1000)) {
		t.Errorf("rule rate = %v, want 1000", table.Rules[0].WeeklyRate)
	}
}

func TestParseRangeRates_OutOfRangeComponentsDropped(t *testing.T) {
	table := pricing.ParseRangeRates("13-01 to 14-31: €1000 | 01-00 to 02-01: €2000")
	if len(table.Rules) != 0 {
		t.Errorf("expected invalid month/day entries dropped, got %d rules", len(table.Rules))
	}
}

// =============================================================================
// MONTH LABEL TESTS
// =============================================================================

func TestParseMonthLabelRates_FullNamesAndAbbreviations(t *testing.T) {
	table := pricing.ParseMonthLabelRates([]pricing.MonthPrice{
		{Label: "July / August", Price: "€35 000"},
		{Label: "sep - early autumn", Price: "€22 000"},
	})

	if len(table.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(table.Rules))
	}
	if table.Rules[0].BoundMonth != time.July {
		t.Errorf("first rule month = %v, want July", table.Rules[0].BoundMonth)
	}
	if table.Rules[1].BoundMonth != time.September {
		t.Errorf("second rule month = %v, want September", table.Rules[1].BoundMonth)
	}
}

func TestParseMonthLabelRates_UnknownLabelIsInert(t *testing.T) {
	// GIVEN: A label naming no known month
	table := pricing.ParseMonthLabelRates([]pricing.MonthPrice{
		{Label: "Shoulder season", Price: "€8 000"},
	})

	// THEN: The rule is retained but matches nothing; pricing falls
	// through to the default
	if len(table.Rules) != 1 {
		t.Fatalf("expected rule retained, got %d rules", len(table.Rules))
	}
	for m := time.January; m <= time.December; m++ {
		if table.Rules[0].Matches(date(2025, m, 15)) {
			t.Errorf("inert rule matched %v", m)
		}
	}
}

func TestMonthInText_NoFalseMatch(t *testing.T) {
	if _, ok := pricing.MonthInText("peak weeks"); ok {
		t.Error("expected no month in 'peak weeks'")
	}
	if m, ok := pricing.MonthInText("Late October escape"); !ok || m != time.October {
		t.Errorf("MonthInText = %v,%v, want October,true", m, ok)
	}
}
