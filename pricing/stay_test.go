package pricing_test

import (
	"testing"
	"time"

	"github.com/meridian/rate-engine/pricing"
)

// =============================================================================
// STAY PRICING TESTS
// =============================================================================

func TestComputeStayPrice_SingleRatePeriod(t *testing.T) {
	// GIVEN: A flat table with weekly rate 14000
	table := pricing.RateTable{}.WithDefault(dec(14000))

	// WHEN: Pricing a 10-night stay
	b := pricing.ComputeStayPrice(date(2025, time.March, 1), date(2025, time.March, 11), table)
	if b == nil {
		t.Fatal("expected breakdown, got nil")
	}

	// THEN: total == round(10/7*14000) == 20000
	if b.TotalNights != 10 {
		t.Errorf("nights = %d, want 10", b.TotalNights)
	}
	if !b.Total.Equal(dec(20000)) {
		t.Errorf("total = %v, want 20000", b.Total)
	}
}

func TestComputeStayPrice_ExactWeekCostsWeeklyRate(t *testing.T) {
	// GIVEN: 7 nights at weekly rate R
	table := pricing.RateTable{}.WithDefault(dec(22000))

	b := pricing.ComputeStayPrice(date(2025, time.June, 1), date(2025, time.June, 8), table)
	if b == nil {
		t.Fatal("expected breakdown, got nil")
	}

	// THEN: total == R exactly
	if b.TotalNights != 7 {
		t.Errorf("nights = %d, want 7", b.TotalNights)
	}
	if !b.Total.Equal(dec(22000)) {
		t.Errorf("total = %v, want exactly 22000", b.Total)
	}
}

func TestComputeStayPrice_InvalidRangeReturnsNil(t *testing.T) {
	table := pricing.RateTable{}.WithDefault(dec(10000))

	// Zero-length stay is not a valid query
	if b := pricing.ComputeStayPrice(date(2025, time.June, 10), date(2025, time.June, 10), table); b != nil {
		t.Errorf("zero-length stay = %+v, want nil", b)
	}
	// Reversed dates neither
	if b := pricing.ComputeStayPrice(date(2025, time.June, 12), date(2025, time.June, 10), table); b != nil {
		t.Errorf("reversed stay = %+v, want nil", b)
	}
	// Unset dates neither
	if b := pricing.ComputeStayPrice(pricing.Date{}, date(2025, time.June, 10), table); b != nil {
		t.Errorf("unset check-in = %+v, want nil", b)
	}
}

func TestComputeStayPrice_CrossSeasonScenario(t *testing.T) {
	// GIVEN: Month rules May 15000 / June 22000 / July 35000, default 15000
	table := pricing.ParseMonthLabelRates([]pricing.MonthPrice{
		{Label: "May / October", Price: "€15 000"},
		{Label: "June / September", Price: "€22 000"},
		{Label: "July / August", Price: "€35 000"},
	}).WithDefault(dec(15000))

	// WHEN: 2025-06-26 to 2025-07-06, 10 nights spanning the peak boundary
	b := pricing.ComputeStayPrice(date(2025, time.June, 26), date(2025, time.July, 6), table)
	if b == nil {
		t.Fatal("expected breakdown, got nil")
	}

	// THEN: 5 June nights at 22000 and 5 July nights at 35000, rounded
	// per segment: 15714 + 25000 = 40714
	if b.TotalNights != 10 {
		t.Errorf("nights = %d, want 10", b.TotalNights)
	}
	if len(b.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(b.Segments))
	}

	june, july := b.Segments[0], b.Segments[1]
	if june.PeriodLabel != "June" || june.Nights != 5 || !june.Subtotal.Equal(dec(15714)) {
		t.Errorf("june segment = %+v, want 5 nights subtotal 15714", june)
	}
	if july.PeriodLabel != "July" || july.Nights != 5 || !july.Subtotal.Equal(dec(25000)) {
		t.Errorf("july segment = %+v, want 5 nights subtotal 25000", july)
	}
	if !b.Total.Equal(dec(40714)) {
		t.Errorf("total = %v, want 40714", b.Total)
	}
}

func TestComputeStayPrice_PerSegmentRoundingBeforeSum(t *testing.T) {
	// GIVEN: Two months whose exact subtotals both carry fractions
	table := pricing.ParseMonthLabelRates([]pricing.MonthPrice{
		{Label: "June", Price: "10000"},
		{Label: "July", Price: "20000"},
	})

	// WHEN: 2 June nights + 2 July nights
	b := pricing.ComputeStayPrice(date(2025, time.June, 29), date(2025, time.July, 3), table)
	if b == nil {
		t.Fatal("expected breakdown, got nil")
	}

	// THEN: Each segment rounds independently: round(2/7*10000)=2857,
	// round(2/7*20000)=5714, total 8571. Rounding the exact grand total
	// once would also give 8571 here; the point is the displayed segments
	// sum to the displayed total.
	if !b.Segments[0].Subtotal.Equal(dec(2857)) || !b.Segments[1].Subtotal.Equal(dec(5714)) {
		t.Errorf("segments = %v / %v, want 2857 / 5714",
			b.Segments[0].Subtotal, b.Segments[1].Subtotal)
	}
	sum := b.Segments[0].Subtotal.Add(b.Segments[1].Subtotal)
	if !b.Total.Equal(sum) {
		t.Errorf("total %v != segment sum %v", b.Total, sum)
	}
}

func TestComputeStayPrice_MidMonthRuleBoundary(t *testing.T) {
	// GIVEN: A range boundary inside June (rule ends 06-15)
	table := pricing.ParseRangeRates("06-01 to 06-15: €7000 | 06-16 to 06-30: €14000")

	// WHEN: 4 nights straddling the boundary, all within June
	b := pricing.ComputeStayPrice(date(2025, time.June, 14), date(2025, time.June, 18), table)
	if b == nil {
		t.Fatal("expected breakdown, got nil")
	}

	// THEN: One segment (month-keyed), and the recorded rate is the last
	// night's. This is the preserved aggregation quirk; see DESIGN.md.
	if len(b.Segments) != 1 {
		t.Fatalf("segments = %d, want 1 (month-keyed)", len(b.Segments))
	}
	if !b.Segments[0].WeeklyRate.Equal(dec(14000)) {
		t.Errorf("recorded rate = %v, want 14000 (last night wins)", b.Segments[0].WeeklyRate)
	}
	if b.Segments[0].Nights != 4 {
		t.Errorf("nights = %d, want 4", b.Segments[0].Nights)
	}
}

func TestNights_CeilsPartialDays(t *testing.T) {
	// Midnight pair: plain difference
	if n := pricing.Nights(date(2025, time.June, 1), date(2025, time.June, 4)); n != 3 {
		t.Errorf("nights = %d, want 3", n)
	}
	// A non-midnight check-out still counts the partial day as a night
	late := pricing.Date{Time: time.Date(2025, time.June, 4, 10, 0, 0, 0, time.UTC)}
	if n := pricing.Nights(date(2025, time.June, 1), late); n != 4 {
		t.Errorf("nights = %d, want 4 (ceiling)", n)
	}
}
