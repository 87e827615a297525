// Package plan wires the engine pipeline: normalize, detect risks,
// prioritize the week's actions, and export the calendar. The controller
// is a pure function of its validated input plus the static holiday table;
// identical requests produce byte-identical results.
package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/payplan-tools/payplan/pkg/models/domain"
	"github.com/payplan-tools/payplan/pkg/services/holidays"
	"github.com/payplan-tools/payplan/pkg/services/ics"
	"github.com/payplan-tools/payplan/pkg/services/normalize"
	"github.com/payplan-tools/payplan/pkg/services/risk"
)

const dateLayout = "2006-01-02"

// Controller runs the full payment-plan pipeline.
type Controller struct {
	clock func() time.Time
}

func NewController() *Controller {
	return &Controller{clock: time.Now}
}

// BuildPlan executes the pipeline against one request. Items are never
// reordered; risk flags reference them by input index.
func (c *Controller) BuildPlan(
	ctx context.Context,
	items []domain.Installment,
	cfg domain.PlanConfig,
) (*domain.PlanResult, error) {
	loc, err := loadLocation(cfg.TimeZone)
	if err != nil {
		return nil, err
	}

	country := cfg.Country
	if country == "" {
		country = domain.CountryUS
	}
	cal, err := holidays.NewCalendar(country, cfg.CustomSkipDates)
	if err != nil {
		return nil, err
	}

	normalized, err := normalize.Normalize(items, normalize.Options{
		Location:             loc,
		BusinessDayMode:      cfg.BusinessDayMode,
		Calendar:             cal,
		AllowNegativeAmounts: cfg.AllowNegativeAmounts,
	})
	if err != nil {
		return nil, err
	}

	paydays, err := resolvePaydays(cfg, loc)
	if err != nil {
		return nil, err
	}

	reference, err := c.referenceDate(cfg.ReferenceDate, loc)
	if err != nil {
		return nil, err
	}

	flags := risk.Detect(normalized, risk.Config{
		Paydays:         paydays,
		PayAmount:       cfg.PayAmount,
		MinBuffer:       cfg.MinBuffer,
		BusinessDayMode: cfg.BusinessDayMode,
		Calendar:        cal,
	})

	actions, summary := Prioritize(normalized, reference)

	calendar := ics.NewExporter(cfg.TimeZone, loc).Build(normalized)

	return &domain.PlanResult{
		Summary:         summary,
		ActionsThisWeek: actions,
		RiskFlags:       flags,
		ICS:             calendar,
		Normalized:      normalized,
		MovedDates:      movedDates(normalized),
	}, nil
}

func (c *Controller) referenceDate(raw string, loc *time.Location) (time.Time, error) {
	if raw != "" {
		d, err := time.ParseInLocation(dateLayout, raw, loc)
		if err != nil {
			return time.Time{}, &domain.ValidationError{
				Field:  "referenceDate",
				Index:  -1,
				Reason: fmt.Sprintf("malformed date %q, expected YYYY-MM-DD", raw),
			}
		}
		return d, nil
	}
	now := c.clock().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "timeZone", Index: -1, Reason: "timeZone is required"}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &domain.ValidationError{
			Field:  "timeZone",
			Index:  -1,
			Reason: fmt.Sprintf("unknown IANA timezone %q", name),
		}
	}
	return loc, nil
}

func movedDates(normalized []domain.NormalizedInstallment) []domain.MovedDate {
	moved := make([]domain.MovedDate, 0)
	for _, n := range normalized {
		if n.WasShifted {
			moved = append(moved, domain.MovedDate{
				From:   n.OriginalDueDate,
				To:     n.DueDate,
				Reason: n.ShiftReason,
			})
		}
	}
	return moved
}
