/*
Package catalog turns raw CMS property records into bookable listings.

PURPOSE:
  The marketing site lists villas and yachts whose data arrives as untyped
  text fields (price strings, pipe-delimited lists, free-text policies).
  This package normalizes a Record once into a Listing carrying a ready
  RateTable and OccupiedSet, and exposes the listing-grid operations the
  UI needs: from-price display, price sorting, quoting, availability.

KEY CONCEPTS:
  - Record: One raw CMS row, fields exactly as exported
  - Listing: The normalized, queryable form of a Record
  - Cache: Explicit read-through TTL cache over a record Source

SEE ALSO:
  - pricing: Rate parsing and stay pricing
  - availability: Occupied-date and arrival-policy checks
  - store/sqlite: The persistent record Source
*/
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/meridian/rate-engine/availability"
	"github.com/meridian/rate-engine/pricing"
)

// =============================================================================
// PROPERTY KIND
// =============================================================================

type Kind string

const (
	KindVilla Kind = "villa"
	KindYacht Kind = "yacht"
)

// =============================================================================
// RECORD - Raw CMS row
// =============================================================================

// MonthRate is one row of the month-label rate shape some CMS records use
// instead of explicit day ranges.
type MonthRate struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

// Record is a property exactly as the CMS exports it: every field untyped
// text in whatever shape the spreadsheet held. Nothing here is validated;
// Normalize parses defensively and degrades per field.
type Record struct {
	ID       string
	Name     string
	Kind     Kind
	Location string
	Guests   int
	Cabins   int

	// BaseWeeklyPrice is the headline price string, e.g. "€15 000".
	// It becomes the rate table's default when it parses.
	BaseWeeklyPrice string

	// RangeRates holds pipe-delimited "MM-DD to MM-DD: €amount" entries.
	// When present it takes precedence over MonthRates.
	RangeRates string

	// MonthRates holds month-label rate rows for records priced per month.
	MonthRates []MonthRate

	// Pipe-delimited lists.
	Images        string
	Amenities     string
	OccupiedDates string

	// ArrivalPolicy is free text, e.g. "July and August: Saturday to Saturday".
	ArrivalPolicy string
}

// =============================================================================
// LISTING - Normalized record
// =============================================================================

// Listing is the parsed, queryable form of a Record. It is derived fresh
// from the record on each normalization; nothing mutates it afterwards.
type Listing struct {
	ID       string
	Name     string
	Kind     Kind
	Location string
	Guests   int
	Cabins   int

	Table    pricing.RateTable
	Occupied availability.OccupiedSet

	Images    []string
	Amenities []string

	ArrivalPolicy string

	// FromWeeklyRate is the cheapest seasonal rate, used for card display
	// and grid sorting.
	FromWeeklyRate decimal.Decimal
}

// Normalize runs the parsers over the raw record. Whichever rate shape the
// record carries wins: explicit day ranges when present, otherwise month
// labels. The headline price becomes the table default when it parses; a
// record with no usable price data at all still lists, priced at the
// baseline.
func (r Record) Normalize() Listing {
	var table pricing.RateTable
	if len(pricing.SplitPipeList(r.RangeRates)) > 0 {
		table = pricing.ParseRangeRates(r.RangeRates)
	} else {
		table = pricing.ParseMonthLabelRates(monthPrices(r.MonthRates))
	}
	table = table.WithDefault(pricing.ParsePrice(r.BaseWeeklyPrice))

	return Listing{
		ID:             r.ID,
		Name:           r.Name,
		Kind:           r.Kind,
		Location:       r.Location,
		Guests:         r.Guests,
		Cabins:         r.Cabins,
		Table:          table,
		Occupied:       availability.NewOccupiedSet(pricing.SplitPipeList(r.OccupiedDates)),
		Images:         pricing.SplitPipeList(r.Images),
		Amenities:      pricing.SplitPipeList(r.Amenities),
		ArrivalPolicy:  r.ArrivalPolicy,
		FromWeeklyRate: table.CheapestWeeklyRate(),
	}
}

func monthPrices(rows []MonthRate) []pricing.MonthPrice {
	out := make([]pricing.MonthPrice, len(rows))
	for i, row := range rows {
		out[i] = pricing.MonthPrice{Label: row.Label, Price: row.Price}
	}
	return out
}

// Quote prices a stay against the listing's rate table. Nil means "no
// valid stay selected", mirroring pricing.ComputeStayPrice.
func (l Listing) Quote(checkIn, checkOut pricing.Date) *pricing.StayPriceBreakdown {
	return pricing.ComputeStayPrice(checkIn, checkOut, l.Table)
}

// IsAvailable reports whether no day of the candidate range, checkout day
// included, is already booked.
func (l Listing) IsAvailable(checkIn, checkOut pricing.Date) bool {
	return availability.IsRangeAvailable(checkIn, checkOut, l.Occupied)
}

// ArrivalOK validates the stay against the listing's arrival policy.
func (l Listing) ArrivalOK(checkIn, checkOut pricing.Date) bool {
	return availability.CheckArrivalPolicy(checkIn, checkOut, l.ArrivalPolicy)
}

// =============================================================================
// GRID OPERATIONS
// =============================================================================

// NormalizeAll maps records to listings, preserving order.
func NormalizeAll(records []Record) []Listing {
	listings := make([]Listing, len(records))
	for i, r := range records {
		listings[i] = r.Normalize()
	}
	return listings
}

// SortByFromRate orders listings cheapest first (stable, so CMS order
// breaks ties).
func SortByFromRate(listings []Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].FromWeeklyRate.LessThan(listings[j].FromWeeklyRate)
	})
}

// FilterKind returns the listings of the given kind, all when kind is empty.
func FilterKind(listings []Listing, kind Kind) []Listing {
	if kind == "" {
		return listings
	}
	var out []Listing
	for _, l := range listings {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}
