package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/payplan-tools/payplan/pkg/models/domain"
)

// Reporter outputs a plan result to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(result *domain.PlanResult) error {
	tmpl := `
{{.Summary}}

=== This Week ===
{{range .ActionsThisWeek}}- {{.}}
{{else}}(nothing due)
{{end}}
=== Risk Flags ===
{{range .RiskFlags}}[{{.Severity}}] {{.Type}} {{.Date.Format "2006-01-02"}}: {{.Message}}
{{else}}(none)
{{end}}
=== Moved Dates ===
{{range .MovedDates}}- {{.From.Format "2006-01-02"}} -> {{.To.Format "2006-01-02"}} ({{.Reason}})
{{else}}(none)
{{end}}`

	t, err := template.New("plan").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, result)
}
