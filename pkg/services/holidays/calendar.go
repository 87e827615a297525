// Package holidays provides the read-only calendar of non-business dates
// used for business-day shifting and risk detection. The US federal holiday
// table is embedded static data; custom skip dates come from the caller.
package holidays

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/payplan-tools/payplan/pkg/models/domain"
)

//go:embed us_federal_holidays.json
var usFederalHolidaysJSON []byte

const dateLayout = "2006-01-02"

var usFederalHolidays = mustLoadHolidayTable()

func mustLoadHolidayTable() map[string]string {
	table := map[string]string{}
	if err := json.Unmarshal(usFederalHolidaysJSON, &table); err != nil {
		panic(fmt.Sprintf("holidays: embedded table is malformed: %v", err))
	}
	return table
}

// Calendar answers business-day questions for one request. It is immutable
// after construction and safe to share.
type Calendar struct {
	country  domain.Country
	holidays map[string]string
	skips    map[string]struct{}
}

// NewCalendar builds a calendar for the given country with the caller's
// custom skip dates. Country "None" disables holiday checks entirely;
// weekends and custom skip dates still apply.
func NewCalendar(country domain.Country, customSkipDates []string) (*Calendar, error) {
	cal := &Calendar{
		country: country,
		skips:   make(map[string]struct{}, len(customSkipDates)),
	}

	switch country {
	case domain.CountryUS:
		cal.holidays = usFederalHolidays
	case domain.CountryNone:
		cal.holidays = map[string]string{}
	default:
		return nil, &domain.ConfigurationError{
			Field:  "country",
			Reason: fmt.Sprintf("unsupported country %q, expected \"US\" or \"None\"", country),
		}
	}

	for _, raw := range customSkipDates {
		if _, err := time.Parse(dateLayout, raw); err != nil {
			return nil, &domain.ConfigurationError{
				Field:  "customSkipDates",
				Reason: fmt.Sprintf("malformed date %q, expected YYYY-MM-DD", raw),
			}
		}
		cal.skips[raw] = struct{}{}
	}

	return cal, nil
}

// HolidayName returns the holiday name for the date, if any.
func (c *Calendar) HolidayName(date time.Time) (string, bool) {
	name, ok := c.holidays[date.Format(dateLayout)]
	return name, ok
}

// IsHoliday reports whether the date is in the configured holiday table.
func (c *Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.holidays[date.Format(dateLayout)]
	return ok
}

// IsCustomSkip reports whether the date was supplied as a custom skip date.
func (c *Calendar) IsCustomSkip(date time.Time) bool {
	_, ok := c.skips[date.Format(dateLayout)]
	return ok
}

// IsWeekend reports whether the date falls on Saturday or Sunday in its
// own location.
func (c *Calendar) IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessDay reports whether the date is a weekday that is neither a
// holiday nor a custom skip date.
func (c *Calendar) IsBusinessDay(date time.Time) bool {
	return !c.IsWeekend(date) && !c.IsHoliday(date) && !c.IsCustomSkip(date)
}
