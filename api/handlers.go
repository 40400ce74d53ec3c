/*
handlers.go - HTTP API handlers for the charter rate engine

PURPOSE:
  Exposes the fleet catalog, stay quoting, and availability checks via
  REST. Handles HTTP request/response and JSON serialization, delegating
  every decision to the pricing/availability/catalog packages.

ENDPOINTS:
  Properties:
    GET    /api/properties                      List listings (?kind=, ?sort=price)
    POST   /api/properties                      Import a raw CMS record
    GET    /api/properties/{id}                 Get one listing
    DELETE /api/properties/{id}                 Remove a record
    GET    /api/properties/{id}/quote           Price a stay (?check_in=&check_out=)
    GET    /api/properties/{id}/availability    Check a range (?check_in=&check_out=)
    GET    /api/properties/{id}/calendar        Occupied dates

  Admin:
    POST   /api/admin/seed                      Load the demo fleet
    POST   /api/admin/cache/invalidate          Drop the record cache

ERROR HANDLING:
  - 400: Missing or unparseable dates, bad request body
  - 404: Unknown property
  - 422: Valid dates that do not form a stay (checkOut <= checkIn); this
         mirrors the engine's nil-breakdown sentinel so the UI can show
         its "select dates" prompt instead of an error toast
  - 500: Store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/meridian/rate-engine/catalog"
	"github.com/meridian/rate-engine/pricing"
	"github.com/meridian/rate-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
	Cache *catalog.Cache
	Log   *slog.Logger
}

// NewHandler creates a handler backed by the given store, with a
// read-through record cache of the given TTL.
func NewHandler(store *sqlite.Store, cacheTTL time.Duration, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		Store: store,
		Cache: catalog.NewCache(store, cacheTTL),
		Log:   log,
	}
}

// =============================================================================
// PROPERTY HANDLERS
// =============================================================================

// ListProperties returns the fleet, optionally filtered by kind and
// sorted cheapest first.
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	records, err := h.Cache.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load properties", err)
		return
	}

	listings := catalog.FilterKind(catalog.NormalizeAll(records), catalog.Kind(r.URL.Query().Get("kind")))
	if r.URL.Query().Get("sort") == "price" {
		catalog.SortByFromRate(listings)
	}

	dtos := make([]PropertyDTO, len(listings))
	for i, l := range listings {
		dtos[i] = toPropertyDTO(l)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateProperty imports a raw CMS record. An omitted ID gets a generated
// one.
func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	record := req.toRecord()
	if err := h.Store.SaveProperty(r.Context(), record); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to save property", err)
		return
	}
	h.Cache.Invalidate()
	h.Log.Info("property saved", "id", record.ID, "kind", record.Kind)

	writeJSON(w, http.StatusCreated, toPropertyDTO(record.Normalize()))
}

// GetProperty returns one listing.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	listing, ok := h.listing(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toPropertyDTO(listing))
}

// DeleteProperty removes a record.
func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteProperty(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if catalog.IsNotFound(err) {
			status = http.StatusNotFound
		}
		writeError(w, status, "Failed to delete property", err)
		return
	}
	h.Cache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// QUOTE & AVAILABILITY HANDLERS
// =============================================================================

// GetQuote prices a stay. The quoted total is display-only and
// non-binding.
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	listing, ok := h.listing(w, r)
	if !ok {
		return
	}
	checkIn, checkOut, ok := stayDates(w, r)
	if !ok {
		return
	}

	breakdown := listing.Quote(checkIn, checkOut)
	if breakdown == nil {
		// The engine's "no valid stay selected" sentinel.
		writeError(w, http.StatusUnprocessableEntity, "Check-out must be after check-in", nil)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteDTO(listing.ID, checkIn, checkOut, breakdown))
}

// GetAvailability checks a candidate range against occupied dates and the
// arrival policy.
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	listing, ok := h.listing(w, r)
	if !ok {
		return
	}
	checkIn, checkOut, ok := stayDates(w, r)
	if !ok {
		return
	}

	available := listing.IsAvailable(checkIn, checkOut)
	arrivalOK := listing.ArrivalOK(checkIn, checkOut)
	writeJSON(w, http.StatusOK, AvailabilityDTO{
		PropertyID:      listing.ID,
		CheckIn:         checkIn.String(),
		CheckOut:        checkOut.String(),
		Available:       available,
		ArrivalPolicyOK: arrivalOK,
		Bookable:        available && arrivalOK,
	})
}

// GetCalendar returns the property's occupied dates.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	listing, ok := h.listing(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, CalendarDTO{
		PropertyID:    listing.ID,
		OccupiedDates: listing.Occupied.Dates(),
	})
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// SeedDemo loads the built-in demo fleet.
func (h *Handler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	fleet := catalog.DemoFleet()
	for _, record := range fleet {
		if err := h.Store.SaveProperty(r.Context(), record); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed demo fleet", err)
			return
		}
	}
	h.Cache.Invalidate()
	h.Log.Info("demo fleet seeded", "records", len(fleet))
	writeJSON(w, http.StatusOK, SeedResponse{Loaded: len(fleet)})
}

// InvalidateCache drops the record cache; the next read hits the store.
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.Cache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

// listing loads and normalizes the property addressed by the URL,
// writing the error response itself when that fails.
func (h *Handler) listing(w http.ResponseWriter, r *http.Request) (catalog.Listing, bool) {
	id := chi.URLParam(r, "id")
	record, err := h.Store.GetProperty(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if catalog.IsNotFound(err) {
			status = http.StatusNotFound
		}
		writeError(w, status, "Failed to load property", err)
		return catalog.Listing{}, false
	}
	return record.Normalize(), true
}

// stayDates parses the check_in/check_out query parameters. Missing or
// malformed dates are a 400; date-order problems are left to the engine.
func stayDates(w http.ResponseWriter, r *http.Request) (pricing.Date, pricing.Date, bool) {
	checkIn, err := pricing.ParseDate(r.URL.Query().Get("check_in"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid check_in date, want YYYY-MM-DD", err)
		return pricing.Date{}, pricing.Date{}, false
	}
	checkOut, err := pricing.ParseDate(r.URL.Query().Get("check_out"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid check_out date, want YYYY-MM-DD", err)
		return pricing.Date{}, pricing.Date{}, false
	}
	return checkIn, checkOut, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
