package plan

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/payplan-tools/payplan/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() domain.PlanConfig {
	return domain.PlanConfig{
		TimeZone:        "America/New_York",
		PaycheckDates:   []string{"2025-10-01", "2025-10-15", "2025-11-01"},
		BusinessDayMode: true,
		Country:         domain.CountryUS,
		ReferenceDate:   "2025-10-01",
	}
}

func klarnaSaturday() domain.Installment {
	return domain.Installment{
		Provider: "Klarna",
		DueDate:  "2025-10-04", // Saturday
		Amount:   45,
		Currency: "USD",
		Autopay:  true,
	}
}

func TestBuildPlan_WeekendShiftScenario(t *testing.T) {
	controller := NewController()

	result, err := controller.BuildPlan(context.Background(), []domain.Installment{klarnaSaturday()}, baseConfig())
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	require.Len(t, result.Normalized, 1)
	n := result.Normalized[0]
	assert.Equal(t, time.Date(2025, 10, 6, 0, 0, 0, 0, loc), n.DueDate)
	assert.True(t, n.WasShifted)
	assert.Equal(t, domain.ShiftReasonWeekend, n.ShiftReason)

	var shifted, autopay int
	for _, f := range result.RiskFlags {
		switch f.Type {
		case domain.RiskShifted:
			shifted++
			assert.Equal(t, domain.SeverityInfo, f.Severity)
		case domain.RiskWeekendAutopay:
			autopay++
		}
	}
	assert.Equal(t, 1, shifted)
	assert.Zero(t, autopay)

	require.Len(t, result.MovedDates, 1)
	assert.Equal(t, domain.ShiftReasonWeekend, result.MovedDates[0].Reason)
}

func TestBuildPlan_WeekendAutopayWithoutShifting(t *testing.T) {
	controller := NewController()
	cfg := baseConfig()
	cfg.BusinessDayMode = false

	result, err := controller.BuildPlan(context.Background(), []domain.Installment{klarnaSaturday()}, cfg)
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	n := result.Normalized[0]
	assert.Equal(t, time.Date(2025, 10, 4, 0, 0, 0, 0, loc), n.DueDate)
	assert.False(t, n.WasShifted)
	assert.Empty(t, result.MovedDates)

	var autopay []domain.RiskFlag
	for _, f := range result.RiskFlags {
		if f.Type == domain.RiskWeekendAutopay {
			autopay = append(autopay, f)
		}
	}
	require.Len(t, autopay, 1)
	assert.Equal(t, domain.SeverityWarning, autopay[0].Severity)
}

func TestBuildPlan_CollisionAndPriorityScenario(t *testing.T) {
	controller := NewController()
	items := []domain.Installment{
		{Provider: "Klarna", DueDate: "2025-10-02", Amount: 45, Currency: "USD", LateFee: 7},
		{Provider: "Affirm", DueDate: "2025-10-02", Amount: 58, Currency: "USD", LateFee: 15},
	}

	result, err := controller.BuildPlan(context.Background(), items, baseConfig())
	require.NoError(t, err)

	var collisions []domain.RiskFlag
	for _, f := range result.RiskFlags {
		if f.Type == domain.RiskCollision {
			collisions = append(collisions, f)
		}
	}
	require.Len(t, collisions, 1)
	assert.Equal(t, []int{0, 1}, collisions[0].AffectedInstallments)

	require.Len(t, result.ActionsThisWeek, 2)
	assert.Contains(t, result.ActionsThisWeek[0], "Affirm")
	assert.Contains(t, result.ActionsThisWeek[1], "Klarna")
	assert.Equal(t, "You have 2 payments totaling $103.00 due this week.", result.Summary)
}

func TestBuildPlan_ThanksgivingShift(t *testing.T) {
	controller := NewController()
	cfg := baseConfig()
	cfg.PaycheckDates = []string{"2025-11-01", "2025-11-15", "2025-12-01"}
	cfg.ReferenceDate = "2025-11-24"

	items := []domain.Installment{
		{Provider: "Affirm", DueDate: "2025-11-27", Amount: 100, Currency: "USD"},
	}

	result, err := controller.BuildPlan(context.Background(), items, cfg)
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	n := result.Normalized[0]
	// Friday is the very next business day; the shifter must not jump to
	// Monday.
	assert.Equal(t, time.Date(2025, 11, 28, 0, 0, 0, 0, loc), n.DueDate)
	assert.Equal(t, domain.ShiftReasonHoliday, n.ShiftReason)
}

func TestBuildPlan_Deterministic(t *testing.T) {
	controller := NewController()
	items := []domain.Installment{
		{Provider: "Klarna", DueDate: "2025-10-04", Amount: 45, Currency: "USD", Autopay: true, LateFee: 7},
		{Provider: "Affirm", DueDate: "2025-10-02", Amount: 58, Currency: "USD", LateFee: 15},
		{Provider: "Afterpay", DueDate: "2025-10-02", Amount: 25, Currency: "USD"},
	}
	cfg := baseConfig()
	cfg.MinBuffer = 50

	first, err := controller.BuildPlan(context.Background(), items, cfg)
	require.NoError(t, err)
	second, err := controller.BuildPlan(context.Background(), items, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.ICS, second.ICS)
}

func TestBuildPlan_ICSDecodes(t *testing.T) {
	controller := NewController()

	result, err := controller.BuildPlan(context.Background(), []domain.Installment{klarnaSaturday()}, baseConfig())
	require.NoError(t, err)

	payload, err := base64.StdEncoding.DecodeString(result.ICS)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "BEGIN:VCALENDAR")
	assert.Contains(t, string(payload), "DTSTART;TZID=America/New_York:20251006T090000")
}

func TestBuildPlan_DefaultReferenceDateUsesClock(t *testing.T) {
	controller := NewController()
	controller.clock = func() time.Time {
		return time.Date(2025, 10, 1, 12, 30, 0, 0, time.UTC)
	}

	cfg := baseConfig()
	cfg.ReferenceDate = ""

	items := []domain.Installment{
		{Provider: "Klarna", DueDate: "2025-10-02", Amount: 45, Currency: "USD"},
	}

	result, err := controller.BuildPlan(context.Background(), items, cfg)
	require.NoError(t, err)
	require.Len(t, result.ActionsThisWeek, 1)
}

func TestBuildPlan_ConfigErrors(t *testing.T) {
	controller := NewController()

	tests := []struct {
		name       string
		mutate     func(*domain.PlanConfig)
		wantConfig bool // ConfigurationError instead of ValidationError
		wantField  string
	}{
		{"missing timezone", func(c *domain.PlanConfig) { c.TimeZone = "" }, false, "timeZone"},
		{"unknown timezone", func(c *domain.PlanConfig) { c.TimeZone = "Mars/Olympus" }, false, "timeZone"},
		{"unsupported country", func(c *domain.PlanConfig) { c.Country = "CA" }, true, "country"},
		{"malformed skip date", func(c *domain.PlanConfig) { c.CustomSkipDates = []string{"nope"} }, true, "customSkipDates"},
		{"too few paycheck dates", func(c *domain.PlanConfig) { c.PaycheckDates = []string{"2025-10-01"} }, false, "paycheckDates"},
		{"malformed reference date", func(c *domain.PlanConfig) { c.ReferenceDate = "tomorrow" }, false, "referenceDate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseConfig()
			tc.mutate(&cfg)

			_, err := controller.BuildPlan(context.Background(), []domain.Installment{klarnaSaturday()}, cfg)
			require.Error(t, err)

			if tc.wantConfig {
				var configErr *domain.ConfigurationError
				require.ErrorAs(t, err, &configErr)
				assert.Equal(t, tc.wantField, configErr.Field)
			} else {
				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tc.wantField, validationErr.Field)
			}
		})
	}
}

func TestBuildPlan_NegativeAmount(t *testing.T) {
	controller := NewController()

	refund := domain.Installment{Provider: "Klarna", DueDate: "2025-10-02", Amount: -20, Currency: "USD"}

	t.Run("rejected by default", func(t *testing.T) {
		_, err := controller.BuildPlan(context.Background(), []domain.Installment{refund}, baseConfig())
		require.Error(t, err)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "amount", validationErr.Field)
	})

	t.Run("accepted when configured", func(t *testing.T) {
		cfg := baseConfig()
		cfg.AllowNegativeAmounts = true

		result, err := controller.BuildPlan(context.Background(), []domain.Installment{refund}, cfg)
		require.NoError(t, err)
		assert.Equal(t, -20.0, result.Normalized[0].Amount)
	})
}
