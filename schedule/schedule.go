/*
Package schedule generates periodic roll-date schedules.

PURPOSE:

	Turns a start date, an end date, and a repeat frequency into the list of
	convention-correct roll dates between them - the dates a coupon pays or a
	position rolls. All date policy lives in the adjust package; this package
	only drives it.

ROLLING:

	Unadjusted dates are generated as start + i*frequency under the period
	addition convention, always measured from the start date. Measuring from
	the start rather than from the previous roll keeps month-end snapping and
	day-of-month anchoring stable across the whole schedule (rolling
	2014-01-31 by repeated single months would drift to the 28th forever
	after February). A shorter final stub lands on the end date. Every date,
	the terminal one included, is then business-day adjusted.
*/
package schedule

import (
	"errors"

	"github.com/warp/calendar-engine/adjust"
	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrInvalidRange is returned when the end date is not after the start.
	ErrInvalidRange = errors.New("schedule end must be after start")

	// ErrNonPositiveFrequency is returned when the frequency cannot move the
	// schedule forward.
	ErrNonPositiveFrequency = errors.New("schedule frequency must advance the start date")
)

// =============================================================================
// GENERATOR - Immutable schedule definition
// =============================================================================

// Generator defines a periodic schedule. Build once, then Dates() is a pure
// computation.
type Generator struct {
	Start              calendar.Date
	End                calendar.Date
	Frequency          calendar.Period
	AdditionConvention adjust.PeriodAdditionConvention
	Adjustment         adjust.BusinessDayAdjustment
}

// NewGenerator validates and creates a schedule generator. The frequency and
// addition convention must form a valid PeriodAdjustment, the range must be
// non-empty, and the frequency must move the start date forward.
func NewGenerator(
	start, end calendar.Date,
	frequency calendar.Period,
	convention adjust.PeriodAdditionConvention,
	adjustment adjust.BusinessDayAdjustment,
) (Generator, error) {
	if start.IsZero() || end.IsZero() {
		return Generator{}, adjust.ErrZeroDate
	}
	if !end.After(start) {
		return Generator{}, ErrInvalidRange
	}
	if _, err := adjust.PeriodAdjustmentOf(frequency, convention, adjustment); err != nil {
		return Generator{}, err
	}
	if !frequency.AddTo(start).After(start) {
		return Generator{}, ErrNonPositiveFrequency
	}
	return Generator{
		Start:              start,
		End:                end,
		Frequency:          frequency,
		AdditionConvention: convention,
		Adjustment:         adjustment,
	}, nil
}

// Dates returns the adjusted roll dates from the first roll after the start
// through the end date inclusive. The start date itself is not included.
func (g Generator) Dates() ([]calendar.Date, error) {
	var out []calendar.Date
	cal := g.Adjustment.Calendar
	for i := 1; ; i++ {
		unadjusted := g.AdditionConvention.Adjust(g.Start, g.Frequency.MultipliedBy(i), cal)
		if !unadjusted.Before(g.End) {
			break
		}
		adjusted, err := g.Adjustment.Adjust(unadjusted)
		if err != nil {
			return nil, err
		}
		out = append(out, adjusted)
	}
	terminal, err := g.Adjustment.Adjust(g.End)
	if err != nil {
		return nil, err
	}
	return append(out, terminal), nil
}
