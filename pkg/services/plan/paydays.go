package plan

import (
	"fmt"
	"sort"
	"time"

	"github.com/payplan-tools/payplan/pkg/models/domain"
)

// generatedPaydays is how many paydays are derived from a cadence. Six
// covers roughly three months at the slowest cadence, well past any
// payment horizon the engine sees.
const generatedPaydays = 6

// resolvePaydays produces the sorted payday schedule from either the
// explicit date list (at least three required) or a cadence anchored at
// the next payday.
func resolvePaydays(cfg domain.PlanConfig, loc *time.Location) ([]time.Time, error) {
	if len(cfg.PaycheckDates) > 0 {
		if len(cfg.PaycheckDates) < 3 {
			return nil, &domain.ValidationError{
				Field:  "paycheckDates",
				Index:  -1,
				Reason: fmt.Sprintf("at least 3 paycheck dates are required, got %d", len(cfg.PaycheckDates)),
			}
		}
		paydays := make([]time.Time, 0, len(cfg.PaycheckDates))
		for _, raw := range cfg.PaycheckDates {
			d, err := time.ParseInLocation(dateLayout, raw, loc)
			if err != nil {
				return nil, &domain.ValidationError{
					Field:  "paycheckDates",
					Index:  -1,
					Reason: fmt.Sprintf("malformed date %q, expected YYYY-MM-DD", raw),
				}
			}
			paydays = append(paydays, d)
		}
		sort.Slice(paydays, func(i, j int) bool { return paydays[i].Before(paydays[j]) })
		return paydays, nil
	}

	if cfg.PayCadence == "" || cfg.NextPayday == "" {
		return nil, &domain.ValidationError{
			Field:  "paycheckDates",
			Index:  -1,
			Reason: "provide paycheckDates or payCadence with nextPayday",
		}
	}

	anchor, err := time.ParseInLocation(dateLayout, cfg.NextPayday, loc)
	if err != nil {
		return nil, &domain.ValidationError{
			Field:  "nextPayday",
			Index:  -1,
			Reason: fmt.Sprintf("malformed date %q, expected YYYY-MM-DD", cfg.NextPayday),
		}
	}

	return generateCadence(cfg.PayCadence, anchor)
}

func generateCadence(cadence domain.PayCadence, anchor time.Time) ([]time.Time, error) {
	paydays := make([]time.Time, 0, generatedPaydays)
	for i := 0; i < generatedPaydays; i++ {
		switch cadence {
		case domain.CadenceWeekly:
			paydays = append(paydays, anchor.AddDate(0, 0, 7*i))
		case domain.CadenceBiweekly:
			paydays = append(paydays, anchor.AddDate(0, 0, 14*i))
		case domain.CadenceSemimonthly:
			// Alternate between the anchor day and the anchor day plus
			// fifteen, advancing a month every second payday.
			d := anchor.AddDate(0, i/2, 0)
			if i%2 == 1 {
				d = d.AddDate(0, 0, 15)
			}
			paydays = append(paydays, d)
		case domain.CadenceMonthly:
			paydays = append(paydays, anchor.AddDate(0, i, 0))
		default:
			return nil, &domain.ValidationError{
				Field:  "payCadence",
				Index:  -1,
				Reason: fmt.Sprintf("unsupported cadence %q", cadence),
			}
		}
	}
	return paydays, nil
}
