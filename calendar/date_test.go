package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-engine/calendar"
)

func d(y int, m time.Month, day int) calendar.Date {
	return calendar.NewDate(y, m, day)
}

// =============================================================================
// ORDERING
// =============================================================================

func TestDate_Ordering(t *testing.T) {
	a := d(2014, time.August, 15)
	b := d(2014, time.August, 16)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.BeforeOrEqual(a))
	assert.True(t, a.AfterOrEqual(a))
	assert.True(t, a.Equal(d(2014, time.August, 15)))
	assert.False(t, a.Equal(b))
}

func TestDate_ZeroSentinel(t *testing.T) {
	var zero calendar.Date
	assert.True(t, zero.IsZero())
	assert.False(t, d(2014, time.January, 1).IsZero())
}

// =============================================================================
// MONTH ARITHMETIC - clamped, unlike time.Time.AddDate
// =============================================================================

func TestDate_AddMonths_Clamps(t *testing.T) {
	tests := []struct {
		name     string
		base     calendar.Date
		months   int
		expected calendar.Date
	}{
		{"jan 31 plus one month clamps to feb 28", d(2014, time.January, 31), 1, d(2014, time.February, 28)},
		{"jan 31 plus one month in leap year clamps to feb 29", d(2016, time.January, 31), 1, d(2016, time.February, 29)},
		{"mar 31 minus one month clamps to feb 28", d(2014, time.March, 31), -1, d(2014, time.February, 28)},
		{"plain mid-month addition", d(2014, time.August, 15), 3, d(2014, time.November, 15)},
		{"crosses year forward", d(2014, time.November, 15), 3, d(2015, time.February, 15)},
		{"crosses year backward", d(2014, time.January, 15), -2, d(2013, time.November, 15)},
		{"zero months is identity", d(2014, time.August, 15), 0, d(2014, time.August, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.base.AddMonths(tt.months))
		})
	}
}

func TestDate_AddYears_ClampsLeapDay(t *testing.T) {
	assert.Equal(t, d(2017, time.February, 28), d(2016, time.February, 29).AddYears(1))
	assert.Equal(t, d(2020, time.February, 29), d(2016, time.February, 29).AddYears(4))
}

func TestDate_AddDays(t *testing.T) {
	assert.Equal(t, d(2014, time.September, 1), d(2014, time.August, 31).AddDays(1))
	assert.Equal(t, d(2014, time.August, 31), d(2014, time.September, 1).AddDays(-1))
}

// =============================================================================
// MONTH-END HELPERS
// =============================================================================

func TestDate_EndOfMonth(t *testing.T) {
	assert.Equal(t, d(2014, time.February, 28), d(2014, time.February, 10).EndOfMonth())
	assert.Equal(t, d(2016, time.February, 29), d(2016, time.February, 10).EndOfMonth())
	assert.True(t, d(2014, time.June, 30).IsEndOfMonth())
	assert.False(t, d(2014, time.June, 29).IsEndOfMonth())
}

func TestDate_SameMonth(t *testing.T) {
	assert.True(t, d(2014, time.June, 1).SameMonth(d(2014, time.June, 30)))
	assert.False(t, d(2014, time.June, 30).SameMonth(d(2014, time.July, 1)))
	assert.False(t, d(2014, time.June, 1).SameMonth(d(2015, time.June, 1)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, calendar.DaysBetween(d(2014, time.August, 15), d(2014, time.August, 16)))
	assert.Equal(t, -1, calendar.DaysBetween(d(2014, time.August, 16), d(2014, time.August, 15)))
	assert.Equal(t, 365, calendar.DaysBetween(d(2014, time.January, 1), d(2015, time.January, 1)))
}

// =============================================================================
// PARSING AND DISPLAY
// =============================================================================

func TestParseDate(t *testing.T) {
	parsed, err := calendar.ParseDate("2014-08-15")
	require.NoError(t, err)
	assert.Equal(t, d(2014, time.August, 15), parsed)
	assert.Equal(t, "2014-08-15", parsed.String())

	_, err = calendar.ParseDate("15/08/2014")
	assert.Error(t, err)
}

func TestDate_Weekday(t *testing.T) {
	assert.Equal(t, time.Saturday, d(2014, time.November, 15).Weekday())
	assert.Equal(t, time.Sunday, d(2014, time.June, 15).Weekday())
	assert.True(t, d(2014, time.November, 15).IsWeekend())
	assert.False(t, d(2014, time.August, 15).IsWeekend())
}
