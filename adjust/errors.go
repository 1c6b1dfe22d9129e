package adjust

import (
	"errors"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrZeroDate is returned when an adjustment is applied to the zero Date.
	ErrZeroDate = errors.New("date must not be zero")

	// ErrDayComponent is returned when a month-end period-addition convention
	// is paired with a period carrying a day component.
	ErrDayComponent = errors.New(
		"Only PeriodAdditionConventions which deal with month-ends can be used when the period contains days")

	// ErrUnknownConvention is returned when a convention name does not match
	// any known variant.
	ErrUnknownConvention = errors.New("unknown convention")
)
