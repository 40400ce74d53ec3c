/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY:
  Rates and totals are whole currency units; they cross the wire as JSON
  integers, converted from decimal at the boundary.

SEE ALSO:
  - handlers.go: Uses these types
  - catalog/record.go: The domain types these project
*/
package api

import (
	"github.com/meridian/rate-engine/catalog"
	"github.com/meridian/rate-engine/pricing"
)

// =============================================================================
// PROPERTY TYPES
// =============================================================================

// PropertyDTO represents a listing in API responses.
type PropertyDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Kind           string   `json:"kind"`
	Location       string   `json:"location"`
	Guests         int      `json:"guests"`
	Cabins         int      `json:"cabins"`
	FromWeeklyRate int64    `json:"from_weekly_rate"`
	Images         []string `json:"images"`
	Amenities      []string `json:"amenities"`
	ArrivalPolicy  string   `json:"arrival_policy,omitempty"`
}

// CreatePropertyRequest carries a raw CMS record. Fields arrive in the
// same untyped text shapes the CMS exports.
type CreatePropertyRequest struct {
	ID              string              `json:"id,omitempty"`
	Name            string              `json:"name"`
	Kind            string              `json:"kind"`
	Location        string              `json:"location"`
	Guests          int                 `json:"guests"`
	Cabins          int                 `json:"cabins"`
	BaseWeeklyPrice string              `json:"base_weekly_price"`
	RangeRates      string              `json:"range_rates"`
	MonthRates      []catalog.MonthRate `json:"month_rates"`
	Images          string              `json:"images"`
	Amenities       string              `json:"amenities"`
	OccupiedDates   string              `json:"occupied_dates"`
	ArrivalPolicy   string              `json:"arrival_policy"`
}

func (req CreatePropertyRequest) toRecord() catalog.Record {
	return catalog.Record{
		ID:              req.ID,
		Name:            req.Name,
		Kind:            catalog.Kind(req.Kind),
		Location:        req.Location,
		Guests:          req.Guests,
		Cabins:          req.Cabins,
		BaseWeeklyPrice: req.BaseWeeklyPrice,
		RangeRates:      req.RangeRates,
		MonthRates:      req.MonthRates,
		Images:          req.Images,
		Amenities:       req.Amenities,
		OccupiedDates:   req.OccupiedDates,
		ArrivalPolicy:   req.ArrivalPolicy,
	}
}

func toPropertyDTO(l catalog.Listing) PropertyDTO {
	return PropertyDTO{
		ID:             l.ID,
		Name:           l.Name,
		Kind:           string(l.Kind),
		Location:       l.Location,
		Guests:         l.Guests,
		Cabins:         l.Cabins,
		FromWeeklyRate: l.FromWeeklyRate.IntPart(),
		Images:         l.Images,
		Amenities:      l.Amenities,
		ArrivalPolicy:  l.ArrivalPolicy,
	}
}

// =============================================================================
// QUOTE TYPES
// =============================================================================

// StaySegmentDTO is one month bucket of a quote.
type StaySegmentDTO struct {
	Period     string `json:"period"`
	Nights     int    `json:"nights"`
	WeeklyRate int64  `json:"weekly_rate"`
	Subtotal   int64  `json:"subtotal"`
}

// QuoteDTO is the priced stay returned to the UI. The total is a display
// quote only; nothing is booked or confirmed by requesting one.
type QuoteDTO struct {
	PropertyID  string           `json:"property_id"`
	CheckIn     string           `json:"check_in"`
	CheckOut    string           `json:"check_out"`
	TotalNights int              `json:"total_nights"`
	Segments    []StaySegmentDTO `json:"segments"`
	Total       int64            `json:"total"`
}

func toQuoteDTO(propertyID string, checkIn, checkOut pricing.Date, b *pricing.StayPriceBreakdown) QuoteDTO {
	dto := QuoteDTO{
		PropertyID:  propertyID,
		CheckIn:     checkIn.String(),
		CheckOut:    checkOut.String(),
		TotalNights: b.TotalNights,
		Segments:    make([]StaySegmentDTO, len(b.Segments)),
		Total:       b.Total.IntPart(),
	}
	for i, s := range b.Segments {
		dto.Segments[i] = StaySegmentDTO{
			Period:     s.PeriodLabel,
			Nights:     s.Nights,
			WeeklyRate: s.WeeklyRate.IntPart(),
			Subtotal:   s.Subtotal.IntPart(),
		}
	}
	return dto
}

// =============================================================================
// AVAILABILITY TYPES
// =============================================================================

// AvailabilityDTO reports whether a candidate range can be booked.
// Bookable is the conjunction the booking gate actually uses.
type AvailabilityDTO struct {
	PropertyID      string `json:"property_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Available       bool   `json:"available"`
	ArrivalPolicyOK bool   `json:"arrival_policy_ok"`
	Bookable        bool   `json:"bookable"`
}

// CalendarDTO lists a property's occupied dates for calendar rendering.
type CalendarDTO struct {
	PropertyID    string   `json:"property_id"`
	OccupiedDates []string `json:"occupied_dates"`
}

// =============================================================================
// MISC
// =============================================================================

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SeedResponse reports how many demo records were loaded.
type SeedResponse struct {
	Loaded int `json:"loaded"`
}
