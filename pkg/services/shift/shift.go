// Package shift implements the business-day shifter: a due date landing on
// a weekend, holiday, or custom skip date moves forward to the next
// business day.
package shift

import (
	"time"

	"github.com/payplan-tools/payplan/pkg/models/domain"
	"github.com/payplan-tools/payplan/pkg/services/holidays"
)

// Result is the outcome of shifting a single date. Reason is set only when
// the date actually moved.
type Result struct {
	Date       time.Time
	WasShifted bool
	Reason     domain.ShiftReason
}

// NextBusinessDay returns the date unchanged when it is already a business
// day, otherwise the next business day after it. Consecutive non-business
// runs (a holiday adjacent to a weekend) are crossed in one pass. The
// recorded reason is judged on the original date only, with priority
// WEEKEND, then US_FEDERAL_HOLIDAY, then CUSTOM.
func NextBusinessDay(date time.Time, cal *holidays.Calendar) Result {
	if cal.IsBusinessDay(date) {
		return Result{Date: date}
	}

	shifted := date
	for !cal.IsBusinessDay(shifted) {
		// Calendar arithmetic, so month and year boundaries are handled.
		// Terminates because every week contains business days.
		shifted = shifted.AddDate(0, 0, 1)
	}

	return Result{
		Date:       shifted,
		WasShifted: true,
		Reason:     classify(date, cal),
	}
}

func classify(date time.Time, cal *holidays.Calendar) domain.ShiftReason {
	switch {
	case cal.IsWeekend(date):
		return domain.ShiftReasonWeekend
	case cal.IsHoliday(date):
		return domain.ShiftReasonHoliday
	default:
		return domain.ShiftReasonCustom
	}
}
