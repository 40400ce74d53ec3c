package pricing

import (
	"math"
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar date
// =============================================================================

// Date is a calendar date with day granularity, normalized to midnight UTC.
// All pricing and availability logic operates on whole nights, so hours and
// timezones never enter the comparison path.
type Date struct {
	Time time.Time
}

const isoDate = "2006-01-02"

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.Time.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int             { return d.Time.Year() }
func (d Date) Month() time.Month     { return d.Time.Month() }
func (d Date) Day() int              { return d.Time.Day() }
func (d Date) Weekday() time.Weekday { return d.Time.Weekday() }
func (d Date) IsZero() bool          { return d.Time.IsZero() }

// MonthDayValue returns the composite month*100+day integer used for
// comparing a date against a seasonal range. Ranges spanning a year
// boundary do not work under this encoding (see SeasonalPrice.Matches).
func (d Date) MonthDayValue() int { return int(d.Time.Month())*100 + d.Time.Day() }

func (d Date) String() string { return d.Time.Format(isoDate) }

// Nights returns the number of nights between check-in and check-out,
// rounding any partial day up to a full night. For two midnight dates this
// is the plain calendar difference; the ceiling keeps a non-midnight input
// from silently losing a night.
func Nights(checkIn, checkOut Date) int {
	return int(math.Ceil(checkOut.Time.Sub(checkIn.Time).Hours() / 24))
}
