/*
Package calendar provides the date, period, and holiday-calendar primitives
for market date arithmetic.

PURPOSE:

	Everything downstream (business-day conventions, period adjustments,
	schedule rolling) is defined over three immutable value types:
	- Date:     a Gregorian calendar date with clamped month arithmetic
	- Period:   a signed (years, months, days) displacement
	- Calendar: a named business-day predicate with derived shifting ops

DESIGN PRINCIPLES:
 1. Immutability: every value is created once and never mutated, so all
    types are safe for unrestricted concurrent reads.
 2. Purity: calendar membership is a pure function of the date; derived
    operations (Next, Previous, Shift) are defined only in terms of
    IsBusinessDay.
 3. Composition: calendars combine into new immutable calendars; operands
    are shared, never copied or mutated.

USAGE:

	cal := calendar.SatSun
	d := calendar.NewDate(2014, time.November, 15)
	cal.IsBusinessDay(d)   // false (Saturday)
	cal.Next(d)            // 2014-11-17

SEE ALSO:
  - adjust: business-day and period-addition conventions over these types
  - store/sqlite: loads holiday data into immutable calendars
*/
package calendar

import (
	"sort"
	"sync"
	"time"
)

// =============================================================================
// CALENDAR - Named business-day predicate
// =============================================================================

// Calendar decides whether a date is a business day. Instances are immutable;
// the predicate must be a pure function of the date.
type Calendar struct {
	name       string
	isBusiness func(Date) bool
}

// New creates a calendar from a name and a business-day predicate.
func New(name string, isBusinessDay func(Date) bool) Calendar {
	return Calendar{name: name, isBusiness: isBusinessDay}
}

// Built-in calendars.
var (
	// NoHolidays treats every day, weekends included, as a business day.
	NoHolidays = New("NoHolidays", func(Date) bool { return true })

	// SatSun treats every day as a business day except Saturday and Sunday.
	SatSun = New("Sat/Sun", func(d Date) bool { return !d.IsWeekend() })
)

// Name returns the calendar's unique display name.
func (c Calendar) Name() string { return c.name }

func (c Calendar) String() string { return c.name }

// IsBusinessDay reports whether the date is a business day in this calendar.
func (c Calendar) IsBusinessDay(d Date) bool {
	return c.isBusiness(d)
}

// IsHoliday is the exact complement of IsBusinessDay.
func (c Calendar) IsHoliday(d Date) bool {
	return !c.IsBusinessDay(d)
}

// Next returns the first business day strictly after the date.
func (c Calendar) Next(d Date) Date {
	next := d.AddDays(1)
	return c.NextOrSame(next)
}

// NextOrSame returns the date itself if it is a business day, otherwise the
// first business day after it.
func (c Calendar) NextOrSame(d Date) Date {
	for c.IsHoliday(d) {
		d = d.AddDays(1)
	}
	return d
}

// Previous returns the first business day strictly before the date.
func (c Calendar) Previous(d Date) Date {
	prev := d.AddDays(-1)
	return c.PreviousOrSame(prev)
}

// PreviousOrSame returns the date itself if it is a business day, otherwise
// the first business day before it.
func (c Calendar) PreviousOrSame(d Date) Date {
	for c.IsHoliday(d) {
		d = d.AddDays(-1)
	}
	return d
}

// Shift moves forward n business days when n is positive, backward -n
// business days when negative. n of zero returns the date unchanged; the
// base date itself need not be a business day.
func (c Calendar) Shift(d Date, n int) Date {
	result := d
	if n > 0 {
		for i := 0; i < n; i++ {
			result = c.Next(result)
		}
	} else {
		for i := 0; i > n; i-- {
			result = c.Previous(result)
		}
	}
	return result
}

// LastBusinessDayOfMonth returns the latest business day in the date's month.
func (c Calendar) LastBusinessDayOfMonth(d Date) Date {
	return c.PreviousOrSame(d.EndOfMonth())
}

// IsLastBusinessDayOfMonth reports whether the date is its month's latest
// business day.
func (c Calendar) IsLastBusinessDayOfMonth(d Date) bool {
	return c.IsBusinessDay(d) && d.Equal(c.LastBusinessDayOfMonth(d))
}

// =============================================================================
// COMPOSITION
// =============================================================================

// CombinedWith returns a calendar that is a business day only when both
// operands agree: a holiday in either operand is a holiday in the result.
// The operation is commutative; the name joins the operand names with "+".
func (c Calendar) CombinedWith(other Calendar) Calendar {
	if c.name == other.name {
		return c
	}
	a, b := c, other
	return Calendar{
		name:       a.name + "+" + b.name,
		isBusiness: func(d Date) bool { return a.IsBusinessDay(d) && b.IsBusinessDay(d) },
	}
}

// CombinedWithOr returns the union calendar: a business day when either
// operand says business day. The name joins the operand names with "|".
func (c Calendar) CombinedWithOr(other Calendar) Calendar {
	if c.name == other.name {
		return c
	}
	a, b := c, other
	return Calendar{
		name:       a.name + "|" + b.name,
		isBusiness: func(d Date) bool { return a.IsBusinessDay(d) || b.IsBusinessDay(d) },
	}
}

// =============================================================================
// IMMUTABLE CALENDAR - Explicit holiday set plus weekend rule
// =============================================================================

// NewImmutable builds a calendar from an explicit holiday list and a set of
// weekend weekdays. The inputs are copied, so later mutation of the caller's
// slices cannot affect the calendar.
func NewImmutable(name string, holidays []Date, weekendDays []time.Weekday) Calendar {
	holidaySet := make(map[Date]struct{}, len(holidays))
	for _, h := range holidays {
		holidaySet[h] = struct{}{}
	}
	var weekend [7]bool
	for _, wd := range weekendDays {
		weekend[wd] = true
	}
	return Calendar{
		name: name,
		isBusiness: func(d Date) bool {
			if weekend[d.Weekday()] {
				return false
			}
			_, holiday := holidaySet[d]
			return !holiday
		},
	}
}

// =============================================================================
// REGISTRY - Process-wide calendar lookup by name
// =============================================================================

var (
	registryMu sync.RWMutex
	registry   = map[string]Calendar{}
)

func init() {
	Register(NoHolidays)
	Register(SatSun)
}

// Register adds a calendar to the global registry, replacing any calendar
// previously registered under the same name.
func Register(c Calendar) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.Name()] = c
}

// ByName looks up a registered calendar.
func ByName(name string) (Calendar, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	if !ok {
		return Calendar{}, &UnknownCalendarError{Name: name}
	}
	return c, nil
}

// RegisteredNames returns the sorted names of all registered calendars.
func RegisteredNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
