package availability_test

import (
	"testing"
	"time"

	"github.com/meridian/rate-engine/availability"
	"github.com/meridian/rate-engine/pricing"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) pricing.Date {
	return pricing.NewDate(year, month, day)
}

func occupied(dates ...string) availability.OccupiedSet {
	return availability.NewOccupiedSet(dates)
}

// =============================================================================
// OCCUPIED RANGE TESTS
// =============================================================================

func TestIsRangeAvailable_OccupiedDayBlocks(t *testing.T) {
	// GIVEN: July 10 is booked
	set := occupied("2025-07-10")

	// THEN: A range whose checkout touches it is blocked (checkout day is
	// checked too), a range ending the day before is free
	if availability.IsRangeAvailable(date(2025, time.July, 8), date(2025, time.July, 10), set) {
		t.Error("range ending on occupied checkout should be blocked")
	}
	if !availability.IsRangeAvailable(date(2025, time.July, 8), date(2025, time.July, 9), set) {
		t.Error("range clear of the occupied day should be available")
	}
}

func TestIsRangeAvailable_InclusiveEndpoints(t *testing.T) {
	set := occupied("2025-07-08")
	// Check-in day itself occupied
	if availability.IsRangeAvailable(date(2025, time.July, 8), date(2025, time.July, 12), set) {
		t.Error("occupied check-in day should block")
	}
}

func TestIsRangeAvailable_VacuouslyTrueWithoutDates(t *testing.T) {
	set := occupied("2025-07-10")
	if !availability.IsRangeAvailable(pricing.Date{}, date(2025, time.July, 12), set) {
		t.Error("unset check-in should be vacuously available")
	}
	if !availability.IsRangeAvailable(date(2025, time.July, 8), pricing.Date{}, set) {
		t.Error("unset check-out should be vacuously available")
	}
}

func TestOccupiedSet_ExactStringMembership(t *testing.T) {
	set := occupied("2025-07-10")
	if !set.IsOccupied("2025-07-10") {
		t.Error("exact match should be occupied")
	}
	// No normalization: a differently-formatted day is a different key
	if set.IsOccupied("2025-7-10") {
		t.Error("membership is exact string equality, no normalization")
	}
}

func TestOccupiedSet_DatesSorted(t *testing.T) {
	set := occupied("2025-08-02", "2025-07-10", "2025-07-09")
	got := set.Dates()
	want := []string{"2025-07-09", "2025-07-10", "2025-08-02"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Dates() = %v, want %v", got, want)
		}
	}
}

// =============================================================================
// ARRIVAL POLICY TESTS
// =============================================================================

func TestCheckArrivalPolicy_PermissiveDefaults(t *testing.T) {
	// Tuesday to Tuesday, mid-July
	checkIn := date(2025, time.July, 8)
	checkOut := date(2025, time.July, 15)

	// Empty policy never blocks
	if !availability.CheckArrivalPolicy(checkIn, checkOut, "") {
		t.Error("empty policy should pass")
	}
	// "flexible" anywhere disarms the whole policy, whatever else it says
	if !availability.CheckArrivalPolicy(checkIn, checkOut, "Rest of year: Flexible") {
		t.Error("'flexible' should pass regardless of day-of-week")
	}
	if !availability.CheckArrivalPolicy(checkIn, checkOut,
		"July and August: Saturday to Saturday | Rest of year: Flexible") {
		t.Error("'flexible' in any clause should pass")
	}
	// Unrecognized clauses never block
	if !availability.CheckArrivalPolicy(checkIn, checkOut, "minimum stay 5 nights") {
		t.Error("unrecognized clause should pass")
	}
}

func TestCheckArrivalPolicy_SaturdayTurnoverEnforced(t *testing.T) {
	policy := "July and August: Saturday to Saturday"

	// 2025-07-05 and 2025-07-12 are Saturdays
	if !availability.CheckArrivalPolicy(date(2025, time.July, 5), date(2025, time.July, 12), policy) {
		t.Error("Saturday-to-Saturday in July should pass")
	}
	// Tuesday check-in in July fails
	if availability.CheckArrivalPolicy(date(2025, time.July, 8), date(2025, time.July, 15), policy) {
		t.Error("Tuesday check-in in July should fail")
	}
	// Saturday check-in but mid-week check-out fails too
	if availability.CheckArrivalPolicy(date(2025, time.July, 5), date(2025, time.July, 16), policy) {
		t.Error("non-Saturday check-out in July should fail")
	}
	// The clause is scoped to July/August: a May stay is unconstrained
	if !availability.CheckArrivalPolicy(date(2025, time.May, 6), date(2025, time.May, 13), policy) {
		t.Error("May stay should not be constrained by a July clause")
	}
}
