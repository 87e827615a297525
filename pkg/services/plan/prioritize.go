package plan

import (
	"fmt"
	"sort"
	"time"

	"github.com/payplan-tools/payplan/pkg/models/domain"
)

// weekWindowDays is the length of the "this week" action window, starting
// at the reference date inclusive.
const weekWindowDays = 7

// Prioritize selects payments due in the 7-day window starting at the
// reference date and orders them late fee descending, then amount
// ascending: the costliest misses surface first, and among equal penalties
// the smaller amounts are easier wins that free up cash.
func Prioritize(normalized []domain.NormalizedInstallment, reference time.Time) (actions []string, summary string) {
	windowEnd := reference.AddDate(0, 0, weekWindowDays)

	type candidate struct {
		n   domain.NormalizedInstallment
		idx int
	}
	var due []candidate
	for i, n := range normalized {
		if !n.DueDate.Before(reference) && n.DueDate.Before(windowEnd) {
			due = append(due, candidate{n: n, idx: i})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i].n, due[j].n
		if a.LateFee != b.LateFee {
			return a.LateFee > b.LateFee
		}
		if a.Amount != b.Amount {
			return a.Amount < b.Amount
		}
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		return due[i].idx < due[j].idx
	})

	actions = make([]string, 0, len(due))
	var total float64
	for _, c := range due {
		actions = append(actions, renderAction(c.n))
		total += c.n.Amount
	}

	switch len(due) {
	case 0:
		summary = "No payments due in the next 7 days."
	case 1:
		summary = fmt.Sprintf("You have 1 payment totaling $%.2f due this week.", total)
	default:
		summary = fmt.Sprintf("You have %d payments totaling $%.2f due this week.", len(due), total)
	}
	return actions, summary
}

func renderAction(n domain.NormalizedInstallment) string {
	line := fmt.Sprintf("%s, %s: pay %s $%.2f",
		n.DueDate.Weekday(), n.DueDate.Format("Jan 2"), n.Provider, n.Amount)
	if n.WasShifted {
		line += fmt.Sprintf(" (moved from %s due to %s)",
			n.OriginalDueDate.Format("Jan 2"), n.ShiftReason.Description())
	}
	return line
}
