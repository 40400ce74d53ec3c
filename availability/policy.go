package availability

import (
	"strings"
	"time"

	"github.com/meridian/rate-engine/pricing"
)

// =============================================================================
// ARRIVAL POLICY - Month-scoped check-in day rules
// =============================================================================

// CheckArrivalPolicy validates a candidate stay against a free-text,
// pipe-delimited arrival policy, e.g.
//
//	"July and August: Saturday to Saturday"
//
// Empty text, or text containing "flexible" anywhere (even in a single
// clause), always passes. Otherwise a clause scoped to check-in's month
// that mentions Saturday requires both check-in and check-out to fall on
// a Saturday. Clauses scoped to other months are ignored, and
// unrecognized clauses never block a booking: policy text is uncontrolled
// CMS content, so the default is permissive.
func CheckArrivalPolicy(checkIn, checkOut pricing.Date, policyText string) bool {
	if strings.TrimSpace(policyText) == "" {
		return true
	}
	if strings.Contains(strings.ToLower(policyText), "flexible") {
		return true
	}
	for _, clause := range pricing.SplitPipeList(policyText) {
		if !pricing.MentionsMonth(clause, checkIn.Month()) {
			continue
		}
		if !strings.Contains(strings.ToLower(clause), "saturday") {
			continue
		}
		if checkIn.Weekday() != time.Saturday || checkOut.Weekday() != time.Saturday {
			return false
		}
	}
	return true
}
