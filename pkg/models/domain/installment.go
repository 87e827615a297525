package domain

import "time"

// ShiftReason identifies why a due date was moved to the next business day.
type ShiftReason string

const (
	ShiftReasonWeekend ShiftReason = "WEEKEND"
	ShiftReasonHoliday ShiftReason = "US_FEDERAL_HOLIDAY"
	ShiftReasonCustom  ShiftReason = "CUSTOM"
)

// Description renders the reason for humans.
func (r ShiftReason) Description() string {
	switch r {
	case ShiftReasonWeekend:
		return "weekend"
	case ShiftReasonHoliday:
		return "US federal holiday"
	case ShiftReasonCustom:
		return "custom skip date"
	default:
		return string(r)
	}
}

// Installment is a single raw BNPL payment as supplied by the caller.
// Untrusted until it passes normalization.
type Installment struct {
	Provider      string
	InstallmentNo int
	DueDate       string // ISO 8601 calendar date, YYYY-MM-DD
	Amount        float64
	Currency      string
	Autopay       bool
	LateFee       float64
	Confidence    *float64 // carried through from upstream extraction, never computed here
}

// NormalizedInstallment is the validated, timezone-resolved, possibly
// date-shifted record every downstream component works from. Created once
// per request and never mutated afterward.
type NormalizedInstallment struct {
	Provider        string
	InstallmentNo   int
	DueDate         time.Time // midnight in the request timezone
	Amount          float64
	Currency        string
	Autopay         bool
	LateFee         float64
	Confidence      *float64
	WasShifted      bool
	OriginalDueDate time.Time   // zero unless shifted
	ShiftReason     ShiftReason // empty unless shifted
}

// MovedDate is a flattened view of one shift, kept separate from the
// normalized record for API ergonomics.
type MovedDate struct {
	From   time.Time
	To     time.Time
	Reason ShiftReason
}
