package adapters

import (
	"github.com/payplan-tools/payplan/pkg/models/api"
	"github.com/payplan-tools/payplan/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// MapPlanRequestToDomain splits the wire request into installment items
// and the engine config, applying wire-level defaults (businessDayMode
// true, country US).
func MapPlanRequestToDomain(req api.PlanRequest) ([]domain.Installment, domain.PlanConfig) {
	items := make([]domain.Installment, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.Installment{
			Provider:      item.Provider,
			InstallmentNo: item.InstallmentNo,
			DueDate:       item.DueDate,
			Amount:        item.Amount,
			Currency:      item.Currency,
			Autopay:       item.Autopay,
			LateFee:       item.LateFee,
			Confidence:    item.Confidence,
		})
	}

	businessDayMode := true
	if req.BusinessDayMode != nil {
		businessDayMode = *req.BusinessDayMode
	}

	country := domain.Country(req.Country)
	if req.Country == "" {
		country = domain.CountryUS
	}

	cfg := domain.PlanConfig{
		TimeZone:             req.TimeZone,
		PaycheckDates:        req.PaycheckDates,
		PayCadence:           domain.PayCadence(req.PayCadence),
		NextPayday:           req.NextPayday,
		PayAmount:            req.PayAmount,
		MinBuffer:            req.MinBuffer,
		BusinessDayMode:      businessDayMode,
		Country:              country,
		CustomSkipDates:      req.CustomSkipDates,
		AllowNegativeAmounts: req.AllowNegativeAmounts,
		ReferenceDate:        req.ReferenceDate,
	}

	return items, cfg
}

func MapPlanResultDomainToApi(result *domain.PlanResult) api.PlanResponse {
	resp := api.PlanResponse{
		Summary:         result.Summary,
		ActionsThisWeek: result.ActionsThisWeek,
		RiskFlags:       make([]api.RiskFlag, 0, len(result.RiskFlags)),
		ICS:             result.ICS,
		Normalized:      make([]api.NormalizedInstallment, 0, len(result.Normalized)),
		MovedDates:      make([]api.MovedDate, 0, len(result.MovedDates)),
	}
	if resp.ActionsThisWeek == nil {
		resp.ActionsThisWeek = []string{}
	}

	for _, f := range result.RiskFlags {
		resp.RiskFlags = append(resp.RiskFlags, MapRiskFlagDomainToApi(f))
	}
	for _, n := range result.Normalized {
		resp.Normalized = append(resp.Normalized, MapNormalizedInstallmentDomainToApi(n))
	}
	for _, m := range result.MovedDates {
		resp.MovedDates = append(resp.MovedDates, api.MovedDate{
			From:   m.From.Format(dateLayout),
			To:     m.To.Format(dateLayout),
			Reason: string(m.Reason),
		})
	}

	return resp
}

func MapRiskFlagDomainToApi(f domain.RiskFlag) api.RiskFlag {
	affected := f.AffectedInstallments
	if affected == nil {
		affected = []int{}
	}
	return api.RiskFlag{
		Type:                 string(f.Type),
		Date:                 f.Date.Format(dateLayout),
		Message:              f.Message,
		Severity:             string(f.Severity),
		AffectedInstallments: affected,
	}
}

func MapNormalizedInstallmentDomainToApi(n domain.NormalizedInstallment) api.NormalizedInstallment {
	out := api.NormalizedInstallment{
		Provider:      n.Provider,
		InstallmentNo: n.InstallmentNo,
		DueDate:       n.DueDate.Format(dateLayout),
		Amount:        n.Amount,
		Currency:      n.Currency,
		Autopay:       n.Autopay,
		LateFee:       n.LateFee,
		WasShifted:    n.WasShifted,
		Confidence:    n.Confidence,
	}
	if n.WasShifted {
		out.OriginalDueDate = n.OriginalDueDate.Format(dateLayout)
		out.ShiftReason = string(n.ShiftReason)
	}
	return out
}
