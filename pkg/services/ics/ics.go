// Package ics serializes a normalized payment schedule into an RFC 5545
// calendar: one VEVENT per installment with a 24-hour-prior reminder.
// Serialization is fully deterministic (UIDs and DTSTAMP derive from the
// event date, never the wall clock) so identical requests produce
// byte-identical calendars.
package ics

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/payplan-tools/payplan/pkg/models/domain"
)

// eventHour anchors every event at 09:00 local time. Payment due dates
// have no inherent time of day; a fixed morning slot is the documented
// convention.
const eventHour = 9

type Exporter struct {
	tzid string
	loc  *time.Location
}

// NewExporter builds an exporter for the request's IANA timezone. The tzid
// is written verbatim into DTSTART;TZID= properties.
func NewExporter(tzid string, loc *time.Location) *Exporter {
	return &Exporter{tzid: tzid, loc: loc}
}

// Build returns the base64-encoded ICS bytes for the schedule so the
// payload can travel inside a JSON response body.
func (e *Exporter) Build(normalized []domain.NormalizedInstallment) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//PayPlan//BNPL Payment Planner//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	for i, n := range normalized {
		lines = append(lines, e.eventLines(i, n)...)
	}

	lines = append(lines, "END:VCALENDAR")
	payload := strings.Join(lines, "\r\n") + "\r\n"
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

func (e *Exporter) eventLines(i int, n domain.NormalizedInstallment) []string {
	start := time.Date(n.DueDate.Year(), n.DueDate.Month(), n.DueDate.Day(), eventHour, 0, 0, 0, e.loc)

	summary := fmt.Sprintf("%s $%.2f", n.Provider, n.Amount)
	if n.WasShifted {
		summary += " (shifted)"
	}

	lines := []string{
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:payplan-%s-%d-%s@payplan", n.DueDate.Format("20060102"), i, slug(n.Provider)),
		fmt.Sprintf("DTSTAMP:%sT090000Z", n.DueDate.Format("20060102")),
		fmt.Sprintf("DTSTART;TZID=%s:%s", e.tzid, start.Format("20060102T150405")),
		"SUMMARY:" + escape(summary),
	}

	if n.WasShifted {
		desc := fmt.Sprintf("Originally due %s, moved to the next business day (%s).",
			n.OriginalDueDate.Format("2006-01-02"), n.ShiftReason.Description())
		lines = append(lines, "DESCRIPTION:"+escape(desc))
	}

	lines = append(lines,
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"DESCRIPTION:Payment due tomorrow",
		"TRIGGER:-PT24H",
		"END:VALARM",
		"END:VEVENT",
	)
	return lines
}

// escape applies RFC 5545 text escaping for backslash, semicolon, comma,
// and newline.
func escape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "payment"
	}
	return b.String()
}
