/*
Package factory provides JSON to Go adjustment conversion.

PURPOSE:

	Converts JSON adjustment definitions into adjust package values. This
	enables convention configuration without code changes - an operations team
	can define roll rules in JSON, and the factory creates the proper Go
	structs against the registered calendars.

JSON SCHEMA:

	{
	  "period": "P3M",
	  "addition_convention": "LastDay",
	  "business_day_convention": "Following",
	  "calendar": "Sat/Sun"
	}

KEY FEATURES:
  - Validates period syntax and convention names
  - Resolves calendar names through the calendar registry
  - Sets sensible defaults (None addition, NoAdjust on no calendar)
  - Enforces the month-end applicability rule at parse time

USAGE:

	f := factory.NewAdjustmentFactory()
	pa, err := f.ParsePeriodAdjustment(jsonString)

SEE ALSO:
  - adjust: the value types produced here
  - calendar: the registry calendar names resolve against
  - api: parses request bodies through this factory
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/warp/calendar-engine/adjust"
	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// AdjustmentJSON is the JSON representation of a business-day adjustment.
type AdjustmentJSON struct {
	Convention string `json:"business_day_convention,omitempty"`
	Calendar   string `json:"calendar,omitempty"`
}

// PeriodAdjustmentJSON is the JSON representation of a period adjustment.
type PeriodAdjustmentJSON struct {
	Period             string `json:"period"`
	AdditionConvention string `json:"addition_convention,omitempty"`
	AdjustmentJSON
}

// =============================================================================
// FACTORY
// =============================================================================

// AdjustmentFactory parses adjustment definitions. Calendar names resolve
// through the process-wide registry by default; ResolveCalendar can be
// replaced to resolve against another source (e.g. a sqlite store).
type AdjustmentFactory struct {
	ResolveCalendar func(name string) (calendar.Calendar, error)
}

// NewAdjustmentFactory creates a factory resolving calendars from the
// global registry.
func NewAdjustmentFactory() *AdjustmentFactory {
	return &AdjustmentFactory{ResolveCalendar: calendar.ByName}
}

// BusinessDayAdjustment builds an adjustment from schema fields, applying
// defaults: no convention means NoAdjust, no calendar means NoHolidays.
func (f *AdjustmentFactory) BusinessDayAdjustment(cfg AdjustmentJSON) (adjust.BusinessDayAdjustment, error) {
	if cfg.Convention == "" && cfg.Calendar == "" {
		return adjust.BusinessDayAdjustmentNone, nil
	}

	conventionName := cfg.Convention
	if conventionName == "" {
		conventionName = string(adjust.NoAdjust)
	}
	convention, err := adjust.ParseBusinessDayConvention(conventionName)
	if err != nil {
		return adjust.BusinessDayAdjustment{}, err
	}

	cal := calendar.NoHolidays
	if cfg.Calendar != "" {
		cal, err = f.ResolveCalendar(cfg.Calendar)
		if err != nil {
			return adjust.BusinessDayAdjustment{}, err
		}
	}
	return adjust.BusinessDayAdjustmentOf(convention, cal), nil
}

// PeriodAdjustment builds a period adjustment from schema fields. An absent
// addition convention defaults to None.
func (f *AdjustmentFactory) PeriodAdjustment(cfg PeriodAdjustmentJSON) (adjust.PeriodAdjustment, error) {
	if cfg.Period == "" {
		return adjust.PeriodAdjustment{}, fmt.Errorf("%w: period is required", calendar.ErrInvalidPeriodFormat)
	}
	period, err := calendar.ParsePeriod(cfg.Period)
	if err != nil {
		return adjust.PeriodAdjustment{}, err
	}

	conventionName := cfg.AdditionConvention
	if conventionName == "" {
		conventionName = string(adjust.AdditionNone)
	}
	convention, err := adjust.ParsePeriodAdditionConvention(conventionName)
	if err != nil {
		return adjust.PeriodAdjustment{}, err
	}

	bda, err := f.BusinessDayAdjustment(cfg.AdjustmentJSON)
	if err != nil {
		return adjust.PeriodAdjustment{}, err
	}
	return adjust.PeriodAdjustmentOf(period, convention, bda)
}

// ParsePeriodAdjustment parses a JSON document into a period adjustment.
func (f *AdjustmentFactory) ParsePeriodAdjustment(jsonStr string) (adjust.PeriodAdjustment, error) {
	var cfg PeriodAdjustmentJSON
	if err := json.Unmarshal([]byte(jsonStr), &cfg); err != nil {
		return adjust.PeriodAdjustment{}, fmt.Errorf("invalid adjustment JSON: %w", err)
	}
	return f.PeriodAdjustment(cfg)
}
