/*
stay.go - Stay pricing across seasonal rate periods

PURPOSE:
  Prices a stay between arbitrary check-in/check-out dates against a
  RateTable: one night per calendar date, nights bucketed by calendar
  month, weekly rates converted to nightly equivalents per bucket.

ROUNDING POLICY:
  Each segment's subtotal is rounded independently before summing. This
  can differ by a currency unit from rounding the grand total once, but it
  guarantees the displayed segments add up to the displayed total. Guests
  check that arithmetic; do not change this without a product decision.

SEGMENT KEYING:
  Segments are keyed by calendar-month name, not by which rule matched.
  When a range boundary falls inside a month every night still prices at
  its own date's rate, but the rate recorded on the month's segment is the
  last night processed. With well-formed (non-overlapping) rules a month
  sees one rate and the distinction is invisible; see DESIGN.md for why
  the quirk is kept.
*/
package pricing

import "github.com/shopspring/decimal"

var sevenNights = decimal.NewFromInt(7)

// ComputeStayPrice prices the stay [checkIn, checkOut) against the table.
// Returns nil when either date is unset or checkOut is not strictly after
// checkIn: that is the caller's "no valid stay selected yet" sentinel, not
// an error, and is distinct from a computed-but-zero stay.
func ComputeStayPrice(checkIn, checkOut Date, table RateTable) *StayPriceBreakdown {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return nil
	}

	totalNights := Nights(checkIn, checkOut)

	// One night per date, checkout day excluded. Buckets keep
	// first-encountered month order.
	type bucket struct {
		label  string
		nights int
		rate   decimal.Decimal
	}
	var order []*bucket
	byMonth := make(map[string]*bucket)

	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		label := d.Month().String()
		b, ok := byMonth[label]
		if !ok {
			b = &bucket{label: label}
			byMonth[label] = b
			order = append(order, b)
		}
		b.nights++
		b.rate = table.RateFor(d) // last night in the month wins
	}

	breakdown := &StayPriceBreakdown{
		TotalNights: totalNights,
		Total:       decimal.Zero,
	}
	for _, b := range order {
		subtotal := b.rate.
			Mul(decimal.NewFromInt(int64(b.nights))).
			Div(sevenNights).
			Round(0)
		breakdown.Segments = append(breakdown.Segments, StaySegment{
			PeriodLabel: b.label,
			Nights:      b.nights,
			WeeklyRate:  b.rate,
			Subtotal:    subtotal,
		})
		breakdown.Total = breakdown.Total.Add(subtotal)
	}
	return breakdown
}
