/*
Package adjust implements market date-adjustment conventions.

PURPOSE:

	Financial schedules (coupon dates, roll dates, settlement dates) cannot
	fall on non-business days. This package encodes the standard rules for
	moving a date off a holiday or weekend, and for adding a calendar period
	to a date under market conventions.

KEY CONCEPTS:
  - BusinessDayConvention:    how to shift a single non-business date
    (Following, Preceding, ModifiedFollowing, ...)
  - BusinessDayAdjustment:    a convention paired with a holiday calendar
  - PeriodAdditionConvention: how period addition interacts with month-ends
    (None, LastDay, LastBusinessDay)
  - PeriodAdjustment:         add a period, then business-day adjust

DESIGN PRINCIPLES:
 1. Closed variant sets: conventions are string-typed enums dispatched by
    switch, so an unhandled variant is visible at a glance.
 2. Construction-time validation: a PeriodAdjustment that pairs a month-end
    convention with a day-bearing period fails at Of(), never at Adjust().
 3. Stable display: String() output is the canonical wire/UI form and is
    relied on by tests and config parsing.

USAGE:

	bda := adjust.BusinessDayAdjustmentOf(adjust.Following, calendar.SatSun)
	pa, err := adjust.PeriodAdjustmentOfLastDay(calendar.Months(3), bda)
	rolled, err := pa.Adjust(calendar.NewDate(2014, time.August, 15))

SEE ALSO:
  - calendar: the Date, Period, and Calendar types these conventions act on
  - schedule: rolls full date schedules using PeriodAdjustment
*/
package adjust

import (
	"fmt"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// BUSINESS DAY CONVENTION - Shift rule for non-business dates
// =============================================================================

// BusinessDayConvention is a named, stateless rule mapping a date and a
// calendar to an adjusted date. The value is its display name.
type BusinessDayConvention string

const (
	// NoAdjust returns the input date unchanged.
	NoAdjust BusinessDayConvention = "NoAdjust"

	// Following moves a non-business date to the next business day.
	Following BusinessDayConvention = "Following"

	// Preceding moves a non-business date to the previous business day.
	Preceding BusinessDayConvention = "Preceding"

	// ModifiedFollowing moves forward unless that crosses into the next
	// month, in which case it moves backward instead.
	ModifiedFollowing BusinessDayConvention = "ModifiedFollowing"

	// ModifiedPreceding moves backward unless that crosses into the previous
	// month, in which case it moves forward instead.
	ModifiedPreceding BusinessDayConvention = "ModifiedPreceding"

	// Nearest moves to whichever of the next and previous business days is
	// closer in calendar days, preferring the next on a tie.
	Nearest BusinessDayConvention = "Nearest"
)

// BusinessDayConventions lists every convention, in display order.
var BusinessDayConventions = []BusinessDayConvention{
	NoAdjust, Following, Preceding, ModifiedFollowing, ModifiedPreceding, Nearest,
}

// ParseBusinessDayConvention resolves a display name to a convention.
func ParseBusinessDayConvention(name string) (BusinessDayConvention, error) {
	for _, c := range BusinessDayConventions {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: business day convention %q", ErrUnknownConvention, name)
}

// Adjust applies the convention to a date under the given calendar. Every
// convention is a pure function; a business-day input is always returned
// unchanged.
func (c BusinessDayConvention) Adjust(d calendar.Date, cal calendar.Calendar) calendar.Date {
	switch c {
	case NoAdjust:
		return d

	case Following:
		return cal.NextOrSame(d)

	case Preceding:
		return cal.PreviousOrSame(d)

	case ModifiedFollowing:
		adjusted := cal.NextOrSame(d)
		if !adjusted.SameMonth(d) {
			return cal.PreviousOrSame(d)
		}
		return adjusted

	case ModifiedPreceding:
		adjusted := cal.PreviousOrSame(d)
		if !adjusted.SameMonth(d) {
			return cal.NextOrSame(d)
		}
		return adjusted

	case Nearest:
		if cal.IsBusinessDay(d) {
			return d
		}
		next := cal.Next(d)
		prev := cal.Previous(d)
		// Ties go forward.
		if calendar.DaysBetween(d, next) <= calendar.DaysBetween(prev, d) {
			return next
		}
		return prev

	default:
		return d
	}
}

func (c BusinessDayConvention) String() string { return string(c) }
