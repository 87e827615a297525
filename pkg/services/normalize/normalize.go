// Package normalize converts raw installment input into the canonical,
// timezone-resolved records the rest of the engine works from. Any
// validation failure rejects the whole request; downstream components
// assume a fully consistent list.
package normalize

import (
	"fmt"
	"math"
	"time"

	"github.com/payplan-tools/payplan/pkg/models/domain"
	"github.com/payplan-tools/payplan/pkg/services/holidays"
	"github.com/payplan-tools/payplan/pkg/services/shift"
)

const dateLayout = "2006-01-02"

// Options configure one normalization pass.
type Options struct {
	// Location is the caller's IANA timezone. Dates are parsed here before
	// any day-of-week decision; parsing at UTC midnight can land on a
	// different weekday than the caller's local date.
	Location             *time.Location
	BusinessDayMode      bool
	Calendar             *holidays.Calendar
	AllowNegativeAmounts bool
}

// Normalize validates every item and produces the normalized list in input
// order. Index correspondence with the input is part of the contract:
// risk flags reference installments by position.
func Normalize(items []domain.Installment, opts Options) ([]domain.NormalizedInstallment, error) {
	if len(items) == 0 {
		return nil, &domain.ValidationError{Field: "items", Index: -1, Reason: "at least one installment is required"}
	}

	normalized := make([]domain.NormalizedInstallment, 0, len(items))
	for i, item := range items {
		n, err := normalizeOne(i, item, opts)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}
	return normalized, nil
}

func normalizeOne(i int, item domain.Installment, opts Options) (domain.NormalizedInstallment, error) {
	if err := validate(i, item, opts.AllowNegativeAmounts); err != nil {
		return domain.NormalizedInstallment{}, err
	}

	due, err := time.ParseInLocation(dateLayout, item.DueDate, opts.Location)
	if err != nil {
		return domain.NormalizedInstallment{}, &domain.ValidationError{
			Field:  "due_date",
			Index:  i,
			Reason: fmt.Sprintf("malformed date %q, expected YYYY-MM-DD", item.DueDate),
		}
	}

	n := domain.NormalizedInstallment{
		Provider:      item.Provider,
		InstallmentNo: item.InstallmentNo,
		DueDate:       due,
		Amount:        item.Amount,
		Currency:      item.Currency,
		Autopay:       item.Autopay,
		LateFee:       item.LateFee,
		Confidence:    item.Confidence,
	}

	if opts.BusinessDayMode {
		res := shift.NextBusinessDay(due, opts.Calendar)
		if res.WasShifted {
			n.DueDate = res.Date
			n.WasShifted = true
			n.OriginalDueDate = due
			n.ShiftReason = res.Reason
		}
	}

	return n, nil
}

func validate(i int, item domain.Installment, allowNegative bool) error {
	if item.Provider == "" {
		return &domain.ValidationError{Field: "provider", Index: i, Reason: "provider is required"}
	}
	if item.DueDate == "" {
		return &domain.ValidationError{Field: "due_date", Index: i, Reason: "due_date is required"}
	}
	if item.InstallmentNo < 0 {
		return &domain.ValidationError{Field: "installment_no", Index: i, Reason: "installment_no must be positive"}
	}
	if math.IsNaN(item.Amount) || math.IsInf(item.Amount, 0) {
		return &domain.ValidationError{Field: "amount", Index: i, Reason: "amount must be a finite number"}
	}
	if item.Amount < 0 && !allowNegative {
		return &domain.ValidationError{Field: "amount", Index: i, Reason: "negative amounts are not accepted"}
	}
	if !validCurrency(item.Currency) {
		return &domain.ValidationError{
			Field:  "currency",
			Index:  i,
			Reason: fmt.Sprintf("currency %q must be a 3-letter code", item.Currency),
		}
	}
	if math.IsNaN(item.LateFee) || math.IsInf(item.LateFee, 0) || item.LateFee < 0 {
		return &domain.ValidationError{Field: "late_fee", Index: i, Reason: "late_fee must be a non-negative finite number"}
	}
	return nil
}

func validCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
