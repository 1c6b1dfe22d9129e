/*
handlers.go - HTTP handlers for the calendar engine API

PURPOSE:

	Thin HTTP layer over the calendar/adjust/schedule packages. Each handler:
	1. Parses and validates the request
	2. Resolves calendars (built-in registry first, then the sqlite store)
	3. Calls the pure domain logic
	4. Serializes the response

ERROR HANDLING:

	Errors are returned as JSON with appropriate HTTP status:
	- 400: Validation errors, invalid input
	- 404: Unknown calendar
	- 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/factory"
	"github.com/warp/calendar-engine/schedule"
	"github.com/warp/calendar-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Factory *factory.AdjustmentFactory
}

// NewHandler creates a handler over the given store. Calendar names resolve
// against the in-process registry first and fall back to the store.
func NewHandler(store *sqlite.Store) *Handler {
	h := &Handler{Store: store, Factory: factory.NewAdjustmentFactory()}
	h.Factory.ResolveCalendar = h.resolveCalendar
	return h
}

// resolveCalendar checks the in-process registry, then the store. Store
// lookups use a background context because factory resolution does not
// thread the request context through.
func (h *Handler) resolveCalendar(name string) (calendar.Calendar, error) {
	if cal, err := calendar.ByName(name); err == nil {
		return cal, nil
	}
	return h.Store.LoadCalendar(context.Background(), name)
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// ListCalendars returns built-in and stored calendar names.
func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	names := calendar.RegisteredNames()
	stored, err := h.Store.ListCalendars(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range stored {
		if !seen[n] {
			names = append(names, n)
		}
	}

	out := make([]CalendarDTO, len(names))
	for i, n := range names {
		out[i] = CalendarDTO{Name: n}
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateCalendar stores a new calendar definition.
func (h *Handler) CreateCalendar(w http.ResponseWriter, r *http.Request) {
	var req CreateCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" {
		writeErrorMsg(w, http.StatusBadRequest, "calendar name is required")
		return
	}

	weekend := make([]time.Weekday, 0, len(req.WeekendDays))
	for _, n := range req.WeekendDays {
		if n < 0 || n > 6 {
			writeErrorMsg(w, http.StatusBadRequest, "weekend_days must be 0-6")
			return
		}
		weekend = append(weekend, time.Weekday(n))
	}

	holidays, err := parseDates(req.Holidays)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Store.SaveCalendar(r.Context(), req.Name, weekend); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(holidays) > 0 {
		if err := h.Store.AddHolidays(r.Context(), req.Name, holidays); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, CalendarDTO{Name: req.Name})
}

// AddHolidays appends holidays to a stored calendar.
func (h *Handler) AddHolidays(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req AddHolidaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	holidays, err := parseDates(req.Holidays)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Store.AddHolidays(r.Context(), name, holidays); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, calendar.ErrUnknownCalendar) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckDate reports a date's business-day standing in one calendar.
func (h *Handler) CheckDate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	cal, err := h.resolveCalendar(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	d, err := calendar.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, BusinessDayDTO{
		Calendar:      cal.Name(),
		Date:          d.String(),
		IsBusinessDay: cal.IsBusinessDay(d),
		Next:          cal.Next(d).String(),
		Previous:      cal.Previous(d).String(),
	})
}

// =============================================================================
// ADJUSTMENT HANDLERS
// =============================================================================

// AdjustDate applies a business-day adjustment to a single date.
func (h *Handler) AdjustDate(w http.ResponseWriter, r *http.Request) {
	var req AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	d, err := calendar.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	bda, err := h.Factory.BusinessDayAdjustment(req.AdjustmentJSON)
	if err != nil {
		writeAdjustmentError(w, err)
		return
	}

	adjusted, err := bda.Adjust(d)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, AdjustResponse{
		Input:      d.String(),
		Adjusted:   adjusted.String(),
		Adjustment: bda.String(),
	})
}

// RollDate applies a period adjustment to a base date.
func (h *Handler) RollDate(w http.ResponseWriter, r *http.Request) {
	var req RollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	d, err := calendar.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pa, err := h.Factory.PeriodAdjustment(req.PeriodAdjustmentJSON)
	if err != nil {
		writeAdjustmentError(w, err)
		return
	}

	rolled, err := pa.Adjust(d)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, AdjustResponse{
		Input:      d.String(),
		Adjusted:   rolled.String(),
		Adjustment: pa.String(),
	})
}

// GenerateSchedule rolls a full schedule between two dates.
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start, err := calendar.ParseDate(req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	end, err := calendar.ParseDate(req.End)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pa, err := h.Factory.PeriodAdjustment(req.PeriodAdjustmentJSON)
	if err != nil {
		writeAdjustmentError(w, err)
		return
	}

	gen, err := schedule.NewGenerator(start, end, pa.Period, pa.AdditionConvention, pa.Adjustment)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dates, err := gen.Dates()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	writeJSON(w, http.StatusOK, ScheduleResponse{Dates: out})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeErrorMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeAdjustmentError maps factory/construction failures to status codes.
func writeAdjustmentError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, calendar.ErrUnknownCalendar) {
		status = http.StatusNotFound
	}
	writeError(w, status, err)
}

func parseDates(raw []string) ([]calendar.Date, error) {
	out := make([]calendar.Date, 0, len(raw))
	for _, s := range raw {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
