/*
Package availability implements booking-side date checks for the fleet.

PURPOSE:
  Determines whether a candidate stay is bookable: no night in the range
  may already be occupied, and peak-season arrival policies (Saturday to
  Saturday turnover) must hold.

KEY CONCEPTS:
  - OccupiedSet: Opaque set of ISO date strings already booked
  - IsRangeAvailable: Inclusive-endpoint scan of the candidate range
  - CheckArrivalPolicy: Free-text, month-scoped day-of-week rules

INCLUSIVE CHECKOUT:
  IsRangeAvailable checks the checkout date itself, even though the guest
  does not sleep there that night. The pricing side excludes checkout from
  the night count. The asymmetry acts as a turnover buffer and is kept as
  is; see DESIGN.md before unifying the two conventions.
*/
package availability

import (
	"sort"

	"github.com/meridian/rate-engine/pricing"
)

// =============================================================================
// OCCUPIED DATES
// =============================================================================

// OccupiedSet holds the nights already booked for a property, as ISO
// YYYY-MM-DD strings. Membership is exact string equality; no timezone
// normalization happens here, so callers must populate and query with the
// same local representation.
type OccupiedSet map[string]struct{}

// NewOccupiedSet builds a set from raw date strings, typically the output
// of pricing.SplitPipeList over the CMS occupied-dates field.
func NewOccupiedSet(dates []string) OccupiedSet {
	set := make(OccupiedSet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// IsOccupied reports whether the given ISO date string is booked.
func (s OccupiedSet) IsOccupied(date string) bool {
	_, ok := s[date]
	return ok
}

func (s OccupiedSet) Len() int { return len(s) }

// Dates returns the occupied dates in ascending order, for calendar
// rendering.
func (s OccupiedSet) Dates() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// IsRangeAvailable reports whether no day from checkIn through checkOut,
// inclusive of both endpoints, is occupied. Vacuously true when either
// date is unset (the UI's "no dates selected yet" state).
func IsRangeAvailable(checkIn, checkOut pricing.Date, occupied OccupiedSet) bool {
	if checkIn.IsZero() || checkOut.IsZero() {
		return true
	}
	for d := checkIn; d.BeforeOrEqual(checkOut); d = d.AddDays(1) {
		if occupied.IsOccupied(d.String()) {
			return false
		}
	}
	return true
}
