package calendar

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownCalendar is returned when a calendar name has no registered
	// or stored calendar behind it.
	ErrUnknownCalendar = errors.New("unknown holiday calendar")

	// ErrInvalidPeriodFormat is returned when a period string does not match
	// the ISO-8601 style form (e.g. "P3M", "P1Y2M3D").
	ErrInvalidPeriodFormat = errors.New("invalid period format")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnknownCalendarError reports which calendar name failed to resolve.
type UnknownCalendarError struct {
	Name string
}

func (e *UnknownCalendarError) Error() string {
	return fmt.Sprintf("unknown holiday calendar: %q", e.Name)
}

func (e *UnknownCalendarError) Unwrap() error {
	return ErrUnknownCalendar
}
