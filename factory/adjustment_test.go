package factory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-engine/adjust"
	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/factory"
)

// =============================================================================
// BUSINESS DAY ADJUSTMENT PARSING
// =============================================================================

func TestFactory_BusinessDayAdjustment(t *testing.T) {
	f := factory.NewAdjustmentFactory()

	bda, err := f.BusinessDayAdjustment(factory.AdjustmentJSON{
		Convention: "Following",
		Calendar:   "Sat/Sun",
	})
	require.NoError(t, err)
	assert.Equal(t, "Following using calendar Sat/Sun", bda.String())
}

func TestFactory_BusinessDayAdjustment_Defaults(t *testing.T) {
	f := factory.NewAdjustmentFactory()

	// Nothing specified: the no-op adjustment.
	bda, err := f.BusinessDayAdjustment(factory.AdjustmentJSON{})
	require.NoError(t, err)
	assert.True(t, bda.IsNone())

	// Calendar without convention: NoAdjust against that calendar.
	bda, err = f.BusinessDayAdjustment(factory.AdjustmentJSON{Calendar: "Sat/Sun"})
	require.NoError(t, err)
	assert.Equal(t, "NoAdjust using calendar Sat/Sun", bda.String())

	// Convention without calendar: NoHolidays.
	bda, err = f.BusinessDayAdjustment(factory.AdjustmentJSON{Convention: "Following"})
	require.NoError(t, err)
	assert.Equal(t, "Following using calendar NoHolidays", bda.String())
}

func TestFactory_BusinessDayAdjustment_Errors(t *testing.T) {
	f := factory.NewAdjustmentFactory()

	_, err := f.BusinessDayAdjustment(factory.AdjustmentJSON{Convention: "Sideways"})
	assert.ErrorIs(t, err, adjust.ErrUnknownConvention)

	_, err = f.BusinessDayAdjustment(factory.AdjustmentJSON{Convention: "Following", Calendar: "NOPE"})
	assert.ErrorIs(t, err, calendar.ErrUnknownCalendar)
}

// =============================================================================
// PERIOD ADJUSTMENT PARSING
// =============================================================================

func TestFactory_ParsePeriodAdjustment(t *testing.T) {
	f := factory.NewAdjustmentFactory()

	pa, err := f.ParsePeriodAdjustment(`{
		"period": "P3M",
		"addition_convention": "LastDay",
		"business_day_convention": "Following",
		"calendar": "Sat/Sun"
	}`)
	require.NoError(t, err)
	assert.Equal(t, "P3M with LastDay then apply Following using calendar Sat/Sun", pa.String())

	got, err := pa.Adjust(calendar.NewDate(2014, time.August, 15))
	require.NoError(t, err)
	assert.Equal(t, calendar.NewDate(2014, time.November, 17), got)
}

func TestFactory_ParsePeriodAdjustment_Defaults(t *testing.T) {
	f := factory.NewAdjustmentFactory()

	pa, err := f.ParsePeriodAdjustment(`{"period": "P1Y2M3D"}`)
	require.NoError(t, err)
	assert.Equal(t, adjust.AdditionNone, pa.AdditionConvention)
	assert.Equal(t, "P1Y2M3D", pa.String())
}

func TestFactory_ParsePeriodAdjustment_Errors(t *testing.T) {
	f := factory.NewAdjustmentFactory()

	_, err := f.ParsePeriodAdjustment(`{`)
	assert.Error(t, err)

	_, err = f.ParsePeriodAdjustment(`{}`)
	assert.ErrorIs(t, err, calendar.ErrInvalidPeriodFormat)

	_, err = f.ParsePeriodAdjustment(`{"period": "3 months"}`)
	assert.ErrorIs(t, err, calendar.ErrInvalidPeriodFormat)

	_, err = f.ParsePeriodAdjustment(`{"period": "P3M", "addition_convention": "FirstDay"}`)
	assert.ErrorIs(t, err, adjust.ErrUnknownConvention)

	// The month-end applicability rule fires at parse time.
	_, err = f.ParsePeriodAdjustment(`{"period": "P1Y2M3D", "addition_convention": "LastDay"}`)
	assert.ErrorIs(t, err, adjust.ErrDayComponent)
}

// =============================================================================
// CUSTOM RESOLUTION
// =============================================================================

func TestFactory_CustomResolver(t *testing.T) {
	f := factory.NewAdjustmentFactory()
	custom := calendar.NewImmutable("Custom", nil, []time.Weekday{time.Friday})
	f.ResolveCalendar = func(name string) (calendar.Calendar, error) {
		if name == "Custom" {
			return custom, nil
		}
		return calendar.ByName(name)
	}

	bda, err := f.BusinessDayAdjustment(factory.AdjustmentJSON{
		Convention: "Following",
		Calendar:   "Custom",
	})
	require.NoError(t, err)
	assert.Equal(t, "Following using calendar Custom", bda.String())

	// 2014-08-15 is a Friday, a holiday in the custom calendar.
	got, err := bda.Adjust(calendar.NewDate(2014, time.August, 15))
	require.NoError(t, err)
	assert.Equal(t, calendar.NewDate(2014, time.August, 16), got)
}
