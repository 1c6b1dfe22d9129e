/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:

	Defines the JSON structures for API communication. These types decouple
	the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:

	Validation is done in handlers and the factory, not in DTOs. DTOs are
	pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/adjustment.go: AdjustmentJSON / PeriodAdjustmentJSON schema
*/
package api

import (
	"github.com/warp/calendar-engine/factory"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalendarDTO describes a stored or built-in calendar.
type CalendarDTO struct {
	Name string `json:"name"`
}

// CreateCalendarRequest creates a calendar with a weekend rule and an
// optional initial holiday list.
type CreateCalendarRequest struct {
	Name        string   `json:"name"`
	WeekendDays []int    `json:"weekend_days"` // time.Weekday ordinals, e.g. [6, 0]
	Holidays    []string `json:"holidays,omitempty"`
}

// AddHolidaysRequest appends holiday dates to an existing calendar.
type AddHolidaysRequest struct {
	Holidays []string `json:"holidays"`
}

// AdjustRequest adjusts a single date under a business-day convention.
type AdjustRequest struct {
	Date string `json:"date"`
	factory.AdjustmentJSON
}

// AdjustResponse carries the adjusted date and the adjustment's display form.
type AdjustResponse struct {
	Input      string `json:"input"`
	Adjusted   string `json:"adjusted"`
	Adjustment string `json:"adjustment"`
}

// RollRequest applies a period adjustment to a base date.
type RollRequest struct {
	Date string `json:"date"`
	factory.PeriodAdjustmentJSON
}

// ScheduleRequest generates roll dates between two dates.
type ScheduleRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	factory.PeriodAdjustmentJSON
}

// ScheduleResponse lists the generated adjusted roll dates.
type ScheduleResponse struct {
	Dates []string `json:"dates"`
}

// BusinessDayDTO reports a date's standing in one calendar.
type BusinessDayDTO struct {
	Calendar      string `json:"calendar"`
	Date          string `json:"date"`
	IsBusinessDay bool   `json:"is_business_day"`
	Next          string `json:"next"`
	Previous      string `json:"previous"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
