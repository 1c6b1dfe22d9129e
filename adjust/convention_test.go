package adjust_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-engine/adjust"
	"github.com/warp/calendar-engine/calendar"
)

func d(y int, m time.Month, day int) calendar.Date {
	return calendar.NewDate(y, m, day)
}

// =============================================================================
// CONVENTION TABLE
// =============================================================================
// Fixed reference dates against Sat/Sun:
//   2014-07-11 Friday, 2014-07-12 Saturday, 2014-07-13 Sunday, 2014-07-14 Monday
//   2014-08-31 Sunday (month end), 2014-06-01 Sunday (month start)

func TestBusinessDayConvention_Adjust(t *testing.T) {
	tests := []struct {
		convention adjust.BusinessDayConvention
		input      calendar.Date
		expected   calendar.Date
	}{
		// NoAdjust never moves
		{adjust.NoAdjust, d(2014, time.July, 12), d(2014, time.July, 12)},
		{adjust.NoAdjust, d(2014, time.July, 11), d(2014, time.July, 11)},

		// Following
		{adjust.Following, d(2014, time.July, 11), d(2014, time.July, 11)},
		{adjust.Following, d(2014, time.July, 12), d(2014, time.July, 14)},
		{adjust.Following, d(2014, time.July, 13), d(2014, time.July, 14)},

		// Preceding
		{adjust.Preceding, d(2014, time.July, 14), d(2014, time.July, 14)},
		{adjust.Preceding, d(2014, time.July, 12), d(2014, time.July, 11)},
		{adjust.Preceding, d(2014, time.July, 13), d(2014, time.July, 11)},

		// ModifiedFollowing: forward unless it leaves the month
		{adjust.ModifiedFollowing, d(2014, time.July, 12), d(2014, time.July, 14)},
		{adjust.ModifiedFollowing, d(2014, time.August, 30), d(2014, time.August, 29)},
		{adjust.ModifiedFollowing, d(2014, time.August, 31), d(2014, time.August, 29)},

		// ModifiedPreceding: backward unless it leaves the month
		{adjust.ModifiedPreceding, d(2014, time.July, 12), d(2014, time.July, 11)},
		{adjust.ModifiedPreceding, d(2014, time.June, 1), d(2014, time.June, 2)},

		// Nearest: Saturday is closer to Friday, Sunday closer to Monday
		{adjust.Nearest, d(2014, time.July, 11), d(2014, time.July, 11)},
		{adjust.Nearest, d(2014, time.July, 12), d(2014, time.July, 11)},
		{adjust.Nearest, d(2014, time.July, 13), d(2014, time.July, 14)},
	}

	for _, tt := range tests {
		t.Run(string(tt.convention)+"_"+tt.input.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.convention.Adjust(tt.input, calendar.SatSun))
		})
	}
}

func TestBusinessDayConvention_Idempotent(t *testing.T) {
	// Adjusting an already adjusted date never moves it again.
	for _, convention := range adjust.BusinessDayConventions {
		day := d(2014, time.June, 1)
		for day.Month() == time.June {
			once := convention.Adjust(day, calendar.SatSun)
			twice := convention.Adjust(once, calendar.SatSun)
			assert.Equal(t, once, twice, "%s on %s", convention, day)
			day = day.AddDays(1)
		}
	}
}

func TestModifiedFollowing_NeverLeavesMonth(t *testing.T) {
	day := d(2014, time.January, 1)
	end := d(2014, time.December, 31)
	for day.BeforeOrEqual(end) {
		adjusted := adjust.ModifiedFollowing.Adjust(day, calendar.SatSun)
		assert.True(t, adjusted.SameMonth(day), "%s adjusted to %s", day, adjusted)
		day = day.AddDays(1)
	}
}

func TestNearest_TieGoesForward(t *testing.T) {
	// Tue-Thu are holidays: from the Wednesday the previous business day
	// (Monday) and the next (Friday) are both two days away.
	cal := calendar.NewImmutable("TestBlock", []calendar.Date{
		d(2014, time.July, 15), d(2014, time.July, 16), d(2014, time.July, 17),
	}, []time.Weekday{time.Saturday, time.Sunday})

	assert.Equal(t, d(2014, time.July, 18), adjust.Nearest.Adjust(d(2014, time.July, 16), cal))
}

// =============================================================================
// PARSING AND DISPLAY
// =============================================================================

func TestParseBusinessDayConvention(t *testing.T) {
	for _, convention := range adjust.BusinessDayConventions {
		parsed, err := adjust.ParseBusinessDayConvention(convention.String())
		require.NoError(t, err)
		assert.Equal(t, convention, parsed)
	}

	_, err := adjust.ParseBusinessDayConvention("following") // case-sensitive display names
	assert.ErrorIs(t, err, adjust.ErrUnknownConvention)
}

func TestBusinessDayConvention_DisplayNames(t *testing.T) {
	assert.Equal(t, "NoAdjust", adjust.NoAdjust.String())
	assert.Equal(t, "Following", adjust.Following.String())
	assert.Equal(t, "Preceding", adjust.Preceding.String())
	assert.Equal(t, "ModifiedFollowing", adjust.ModifiedFollowing.String())
	assert.Equal(t, "ModifiedPreceding", adjust.ModifiedPreceding.String())
	assert.Equal(t, "Nearest", adjust.Nearest.String())
}
