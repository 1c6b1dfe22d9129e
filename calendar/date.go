package calendar

import (
	"time"
)

// =============================================================================
// DATE - Immutable Gregorian calendar date (day granularity)
// =============================================================================

// Date is a calendar date without time-of-day or zone. The zero value is the
// "absent" sentinel; every constructed Date is normalized to UTC midnight so
// comparisons are exact.
type Date struct {
	t time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a date in 2006-01-02 form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Arithmetic
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths adds whole calendar months, clamping the day-of-month to the last
// valid day of the target month. Jan 31 plus one month is Feb 28 (or 29),
// never Mar 3 - this differs from time.Time.AddDate, which overflows.
func (d Date) AddMonths(n int) Date {
	y := d.Year()
	m := int(d.Month()) - 1 + n
	y += floorDiv(m, 12)
	m = mod(m, 12) + 1
	day := d.Day()
	if last := DaysInMonth(y, time.Month(m)); day > last {
		day = last
	}
	return NewDate(y, time.Month(m), day)
}

// AddYears adds whole years with the same day clamping as AddMonths
// (Feb 29 plus one year is Feb 28).
func (d Date) AddYears(n int) Date {
	return d.AddMonths(n * 12)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Month-end helpers
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EndOfMonth returns the last calendar day of this date's month.
func (d Date) EndOfMonth() Date {
	return NewDate(d.Year(), d.Month(), DaysInMonth(d.Year(), d.Month()))
}

// IsEndOfMonth reports whether this date is the last calendar day of its month.
func (d Date) IsEndOfMonth() bool {
	return d.Day() == DaysInMonth(d.Year(), d.Month())
}

// SameMonth reports whether two dates share a year and month.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

// DaysBetween returns the signed number of days from one date to another.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

func (d Date) String() string {
	return d.t.Format("2006-01-02")
}
