package adjust

import (
	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// PERIOD ADJUSTMENT - Add a period, then business-day adjust
// =============================================================================

// PeriodAdjustment rolls a date by a calendar period under an addition
// convention, then applies a business-day adjustment to the result.
// Immutable; the month-end applicability rule is enforced at construction.
type PeriodAdjustment struct {
	Period             calendar.Period
	AdditionConvention PeriodAdditionConvention
	Adjustment         BusinessDayAdjustment
}

// PeriodAdjustmentNone applies the zero period with no adjustment.
var PeriodAdjustmentNone = PeriodAdjustment{
	Period:             calendar.Zero,
	AdditionConvention: AdditionNone,
	Adjustment:         BusinessDayAdjustmentNone,
}

// PeriodAdjustmentOf creates a period adjustment. It fails when a month-end
// addition convention is paired with a period whose day component is
// non-zero; that mismatch is never deferred to Adjust time.
func PeriodAdjustmentOf(
	p calendar.Period,
	convention PeriodAdditionConvention,
	adjustment BusinessDayAdjustment,
) (PeriodAdjustment, error) {
	if convention.RequiresMonthBased() && p.Days != 0 {
		return PeriodAdjustment{}, ErrDayComponent
	}
	return PeriodAdjustment{
		Period:             p,
		AdditionConvention: convention,
		Adjustment:         adjustment,
	}, nil
}

// PeriodAdjustmentOfLastDay pairs the period with the LastDay convention.
func PeriodAdjustmentOfLastDay(p calendar.Period, adjustment BusinessDayAdjustment) (PeriodAdjustment, error) {
	return PeriodAdjustmentOf(p, AdditionLastDay, adjustment)
}

// PeriodAdjustmentOfLastBusinessDay pairs the period with the
// LastBusinessDay convention.
func PeriodAdjustmentOfLastBusinessDay(p calendar.Period, adjustment BusinessDayAdjustment) (PeriodAdjustment, error) {
	return PeriodAdjustmentOf(p, AdditionLastBusinessDay, adjustment)
}

// MustPeriodAdjustmentOf is PeriodAdjustmentOf for statically known inputs;
// it panics on the construction error.
func MustPeriodAdjustmentOf(
	p calendar.Period,
	convention PeriodAdditionConvention,
	adjustment BusinessDayAdjustment,
) PeriodAdjustment {
	pa, err := PeriodAdjustmentOf(p, convention, adjustment)
	if err != nil {
		panic(err)
	}
	return pa
}

// Adjust adds the period under the addition convention, passing the
// embedded calendar for conventions that need one, then business-day
// adjusts the intermediate date. The zero Date is rejected.
func (pa PeriodAdjustment) Adjust(d calendar.Date) (calendar.Date, error) {
	if d.IsZero() {
		return calendar.Date{}, ErrZeroDate
	}
	added := pa.AdditionConvention.Adjust(d, pa.Period, pa.Adjustment.Calendar)
	return pa.Adjustment.Adjust(added)
}

// String renders the bare period when nothing else can change the result,
// and "{period} with {convention} then apply {adjustment}" otherwise.
func (pa PeriodAdjustment) String() string {
	if pa.AdditionConvention == AdditionNone && pa.Adjustment.IsNone() {
		return pa.Period.String()
	}
	return pa.Period.String() +
		" with " + pa.AdditionConvention.String() +
		" then apply " + pa.Adjustment.String()
}
