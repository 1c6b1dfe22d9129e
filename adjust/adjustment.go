package adjust

import (
	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// BUSINESS DAY ADJUSTMENT - Convention paired with a calendar
// =============================================================================

// BusinessDayAdjustment pairs a convention with the holiday calendar it
// consults. Immutable; build once, reuse for every schedule date.
type BusinessDayAdjustment struct {
	Convention BusinessDayConvention
	Calendar   calendar.Calendar
}

// BusinessDayAdjustmentNone performs no adjustment at all. It is the value
// produced by pairing NoAdjust with the NoHolidays calendar.
var BusinessDayAdjustmentNone = BusinessDayAdjustment{
	Convention: NoAdjust,
	Calendar:   calendar.NoHolidays,
}

// BusinessDayAdjustmentOf creates an adjustment from a convention and a
// calendar.
func BusinessDayAdjustmentOf(convention BusinessDayConvention, cal calendar.Calendar) BusinessDayAdjustment {
	return BusinessDayAdjustment{Convention: convention, Calendar: cal}
}

// Adjust applies the convention to the date under the paired calendar.
// The zero Date is rejected.
func (a BusinessDayAdjustment) Adjust(d calendar.Date) (calendar.Date, error) {
	if d.IsZero() {
		return calendar.Date{}, ErrZeroDate
	}
	return a.Convention.Adjust(d, a.Calendar), nil
}

// IsNone reports whether the adjustment can never change a date.
func (a BusinessDayAdjustment) IsNone() bool {
	return a.Convention == NoAdjust && a.Calendar.Name() == calendar.NoHolidays.Name()
}

// String renders "NoAdjust" for the degenerate adjustment, and
// "{convention} using calendar {name}" otherwise. NoAdjust with a
// non-trivial calendar keeps the extended form so the calendar choice
// stays visible.
func (a BusinessDayAdjustment) String() string {
	if a.IsNone() {
		return "NoAdjust"
	}
	return a.Convention.String() + " using calendar " + a.Calendar.Name()
}
