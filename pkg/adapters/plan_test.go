package adapters

import (
	"testing"
	"time"

	"github.com/payplan-tools/payplan/pkg/models/api"
	"github.com/payplan-tools/payplan/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPlanRequestToDomain_Defaults(t *testing.T) {
	req := api.PlanRequest{
		Items:    []api.InstallmentInput{{Provider: "Klarna", DueDate: "2025-10-04", Amount: 45, Currency: "USD"}},
		TimeZone: "America/New_York",
	}

	items, cfg := MapPlanRequestToDomain(req)

	require.Len(t, items, 1)
	assert.Equal(t, "Klarna", items[0].Provider)
	assert.True(t, cfg.BusinessDayMode, "businessDayMode defaults to true")
	assert.Equal(t, domain.CountryUS, cfg.Country, "country defaults to US")
}

func TestMapPlanRequestToDomain_ExplicitOverrides(t *testing.T) {
	off := false
	req := api.PlanRequest{
		TimeZone:        "America/New_York",
		BusinessDayMode: &off,
		Country:         "None",
	}

	_, cfg := MapPlanRequestToDomain(req)

	assert.False(t, cfg.BusinessDayMode)
	assert.Equal(t, domain.CountryNone, cfg.Country)
}

func TestMapPlanResultDomainToApi(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	result := &domain.PlanResult{
		Summary: "You have 1 payment totaling $45.00 due this week.",
		RiskFlags: []domain.RiskFlag{{
			Type:     domain.RiskShifted,
			Date:     time.Date(2025, 10, 6, 0, 0, 0, 0, loc),
			Message:  "moved",
			Severity: domain.SeverityInfo,
		}},
		Normalized: []domain.NormalizedInstallment{
			{
				Provider: "Klarna",
				DueDate:  time.Date(2025, 10, 6, 0, 0, 0, 0, loc),
				Amount:   45,
				Currency: "USD",
			},
			{
				Provider:        "Affirm",
				DueDate:         time.Date(2025, 10, 6, 0, 0, 0, 0, loc),
				Amount:          58,
				Currency:        "USD",
				WasShifted:      true,
				OriginalDueDate: time.Date(2025, 10, 4, 0, 0, 0, 0, loc),
				ShiftReason:     domain.ShiftReasonWeekend,
			},
		},
		MovedDates: []domain.MovedDate{{
			From:   time.Date(2025, 10, 4, 0, 0, 0, 0, loc),
			To:     time.Date(2025, 10, 6, 0, 0, 0, 0, loc),
			Reason: domain.ShiftReasonWeekend,
		}},
	}

	resp := MapPlanResultDomainToApi(result)

	require.Len(t, resp.RiskFlags, 1)
	assert.Equal(t, "2025-10-06", resp.RiskFlags[0].Date)
	assert.NotNil(t, resp.RiskFlags[0].AffectedInstallments, "affected list serializes as [] not null")
	assert.NotNil(t, resp.ActionsThisWeek, "actions serialize as [] not null")

	// Shift fields only rendered for shifted installments.
	assert.Empty(t, resp.Normalized[0].OriginalDueDate)
	assert.Empty(t, resp.Normalized[0].ShiftReason)
	assert.Equal(t, "2025-10-04", resp.Normalized[1].OriginalDueDate)
	assert.Equal(t, "WEEKEND", resp.Normalized[1].ShiftReason)

	require.Len(t, resp.MovedDates, 1)
	assert.Equal(t, api.MovedDate{From: "2025-10-04", To: "2025-10-06", Reason: "WEEKEND"}, resp.MovedDates[0])
}
