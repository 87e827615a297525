// Package risk scans a normalized payment schedule for risk conditions:
// same-day collisions, cash crunch around paydays, autopay landing on
// non-business days, and informational shift annotations.
package risk

import (
	"fmt"
	"sort"
	"time"

	"github.com/payplan-tools/payplan/pkg/models/domain"
	"github.com/payplan-tools/payplan/pkg/services/holidays"
)

const dateLayout = "2006-01-02"

// Config carries the payday schedule and thresholds for one detection run.
type Config struct {
	// Paydays must be sorted ascending. Consecutive pairs form the
	// intervals evaluated for cash crunch.
	Paydays []time.Time
	// PayAmount is income per paycheck; 0 means unknown, in which case
	// MinBuffer alone acts as the disposable cash assumed per interval.
	PayAmount       float64
	MinBuffer       float64
	BusinessDayMode bool
	Calendar        *holidays.Calendar
}

// Detect returns the schedule's risk flags in a fixed order: collisions,
// cash crunch, weekend autopay, shift annotations, each group sorted by
// date ascending. The order is part of the contract; identical input must
// produce identical output for idempotency-key replay upstream.
func Detect(normalized []domain.NormalizedInstallment, cfg Config) []domain.RiskFlag {
	flags := detectCollisions(normalized)
	flags = append(flags, detectCashCrunch(normalized, cfg)...)
	if !cfg.BusinessDayMode {
		// With shifting enabled every due date is already a business day,
		// so this condition cannot occur.
		flags = append(flags, detectWeekendAutopay(normalized, cfg.Calendar)...)
	}
	flags = append(flags, shiftAnnotations(normalized)...)
	return flags
}

func detectCollisions(normalized []domain.NormalizedInstallment) []domain.RiskFlag {
	byDate := map[string][]int{}
	for i, n := range normalized {
		key := n.DueDate.Format(dateLayout)
		byDate[key] = append(byDate[key], i)
	}

	keys := make([]string, 0, len(byDate))
	for key, indices := range byDate {
		if len(indices) >= 2 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	flags := make([]domain.RiskFlag, 0, len(keys))
	for _, key := range keys {
		indices := byDate[key]
		flags = append(flags, domain.RiskFlag{
			Type:                 domain.RiskCollision,
			Date:                 normalized[indices[0]].DueDate,
			Message:              fmt.Sprintf("%d payments due on %s", len(indices), key),
			Severity:             domain.SeverityWarning,
			AffectedInstallments: indices,
		})
	}
	return flags
}

func detectCashCrunch(normalized []domain.NormalizedInstallment, cfg Config) []domain.RiskFlag {
	var flags []domain.RiskFlag
	for i := 0; i+1 < len(cfg.Paydays); i++ {
		start, end := cfg.Paydays[i], cfg.Paydays[i+1]

		var total float64
		var affected []int
		for j, n := range normalized {
			if !n.DueDate.Before(start) && n.DueDate.Before(end) {
				total += n.Amount
				affected = append(affected, j)
			}
		}
		if len(affected) == 0 {
			continue
		}

		shortfall, crunch := evaluateInterval(total, cfg)
		if !crunch {
			continue
		}

		flags = append(flags, domain.RiskFlag{
			Type: domain.RiskCashCrunch,
			Date: start,
			Message: fmt.Sprintf("payments between %s and %s total $%.2f, $%.2f over your available buffer",
				start.Format(dateLayout), end.Format(dateLayout), total, shortfall),
			Severity:             domain.SeverityWarning,
			AffectedInstallments: affected,
		})
	}
	return flags
}

// evaluateInterval decides whether the interval's payment load is a crunch.
// With known income: remaining = PayAmount - total, crunch when remaining
// drops below MinBuffer. Without income the buffer itself is treated as the
// disposable cash for the interval.
func evaluateInterval(total float64, cfg Config) (shortfall float64, crunch bool) {
	if cfg.PayAmount > 0 {
		remaining := cfg.PayAmount - total
		if remaining < cfg.MinBuffer {
			return cfg.MinBuffer - remaining, true
		}
		return 0, false
	}
	if cfg.MinBuffer > 0 && total > cfg.MinBuffer {
		return total - cfg.MinBuffer, true
	}
	return 0, false
}

func detectWeekendAutopay(normalized []domain.NormalizedInstallment, cal *holidays.Calendar) []domain.RiskFlag {
	var flags []domain.RiskFlag
	for i, n := range normalized {
		if !n.Autopay || cal.IsBusinessDay(n.DueDate) {
			continue
		}
		flags = append(flags, domain.RiskFlag{
			Type: domain.RiskWeekendAutopay,
			Date: n.DueDate,
			Message: fmt.Sprintf("%s autopay of $%.2f falls on %s (%s); the charge may not process until the next business day",
				n.Provider, n.Amount, n.DueDate.Format(dateLayout), nonBusinessKind(n.DueDate, cal)),
			Severity:             domain.SeverityWarning,
			AffectedInstallments: []int{i},
		})
	}
	sortByDate(flags)
	return flags
}

func shiftAnnotations(normalized []domain.NormalizedInstallment) []domain.RiskFlag {
	var flags []domain.RiskFlag
	for i, n := range normalized {
		if !n.WasShifted {
			continue
		}
		flags = append(flags, domain.RiskFlag{
			Type: domain.RiskShifted,
			Date: n.DueDate,
			Message: fmt.Sprintf("%s payment moved from %s to %s (%s)",
				n.Provider, n.OriginalDueDate.Format(dateLayout), n.DueDate.Format(dateLayout),
				n.ShiftReason.Description()),
			Severity:             domain.SeverityInfo,
			AffectedInstallments: []int{i},
		})
	}
	sortByDate(flags)
	return flags
}

func nonBusinessKind(date time.Time, cal *holidays.Calendar) string {
	switch {
	case cal.IsWeekend(date):
		return "weekend"
	case cal.IsHoliday(date):
		name, _ := cal.HolidayName(date)
		return name
	default:
		return "custom skip date"
	}
}

// sortByDate orders flags by date ascending, keeping input (index) order
// for equal dates so output stays deterministic.
func sortByDate(flags []domain.RiskFlag) {
	sort.SliceStable(flags, func(i, j int) bool {
		return flags[i].Date.Before(flags[j].Date)
	})
}
