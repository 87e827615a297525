package domain

import "time"

// RiskType discriminates the kinds of schedule risk the detector can emit.
type RiskType string

const (
	RiskCollision      RiskType = "COLLISION"
	RiskCashCrunch     RiskType = "CASH_CRUNCH"
	RiskWeekendAutopay RiskType = "WEEKEND_AUTOPAY"
	RiskShifted        RiskType = "SHIFTED_NEXT_BUSINESS_DAY"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// RiskFlag is a derived annotation about the payment schedule. Info flags
// are transparency notes (date shifts), warning flags are genuine risks.
type RiskFlag struct {
	Type                 RiskType
	Date                 time.Time
	Message              string
	Severity             Severity
	AffectedInstallments []int // indices into the normalized list
}
