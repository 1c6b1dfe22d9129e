package adjust

import (
	"fmt"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// PERIOD ADDITION CONVENTION - Month-end behavior when adding a period
// =============================================================================

// PeriodAdditionConvention controls how adding a whole-month period interacts
// with end-of-month dates. The value is its display name.
type PeriodAdditionConvention string

const (
	// AdditionNone is plain calendar-period addition with day clamping.
	AdditionNone PeriodAdditionConvention = "None"

	// AdditionLastDay snaps the result to the last calendar day of its month
	// when the base date is the last calendar day of its own month.
	AdditionLastDay PeriodAdditionConvention = "LastDay"

	// AdditionLastBusinessDay snaps to the last business day of the result
	// month when the base date is the last business day of its own month.
	AdditionLastBusinessDay PeriodAdditionConvention = "LastBusinessDay"
)

// PeriodAdditionConventions lists every convention, in display order.
var PeriodAdditionConventions = []PeriodAdditionConvention{
	AdditionNone, AdditionLastDay, AdditionLastBusinessDay,
}

// ParsePeriodAdditionConvention resolves a display name to a convention.
func ParsePeriodAdditionConvention(name string) (PeriodAdditionConvention, error) {
	for _, c := range PeriodAdditionConventions {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: period addition convention %q", ErrUnknownConvention, name)
}

// RequiresMonthBased reports whether the convention only accepts periods
// whose day component is zero.
func (c PeriodAdditionConvention) RequiresMonthBased() bool {
	return c == AdditionLastDay || c == AdditionLastBusinessDay
}

// Adjust adds the period to the base date under the convention. The calendar
// is consulted only by AdditionLastBusinessDay. Applicability of the period
// is validated where the convention is paired with a period, at
// PeriodAdjustmentOf, not here.
func (c PeriodAdditionConvention) Adjust(base calendar.Date, p calendar.Period, cal calendar.Calendar) calendar.Date {
	added := p.AddTo(base)
	switch c {
	case AdditionLastDay:
		if base.IsEndOfMonth() {
			return added.EndOfMonth()
		}
		return added

	case AdditionLastBusinessDay:
		if cal.IsLastBusinessDayOfMonth(base) {
			return cal.LastBusinessDayOfMonth(added)
		}
		return added

	default:
		return added
	}
}

func (c PeriodAdditionConvention) String() string { return string(c) }
