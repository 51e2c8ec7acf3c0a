package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/de-tools/cloud-sentry/pkg/models/domain"
)

// EmailSubject is the fixed subject line of the alert email.
const EmailSubject = "AWS Cost & Security Alert"

// NoIssuesSentence replaces the findings section when no findings exist.
const NoIssuesSentence = "No security issues found."

var emailTemplate = template.Must(template.New("email").Parse(`<html>
<body>
  <h2>AWS Cost &amp; Security Report</h2>
  <h3>AWS Cost Report</h3>
  <table border="1">
    <tr><th>Date</th><th>Cost (USD)</th></tr>
{{- range .Costs}}
    <tr><td>{{.Date}}</td><td>{{.Amount}}</td></tr>
{{- end}}
  </table>
  <h3>AWS Security Findings</h3>
{{- if .Findings}}
{{- range .Findings}}
  <p><strong>{{.Title}}</strong></p>
  <p><strong>Severity:</strong> {{.Severity}}</p>
  <p>{{.Description}}</p>
{{- if .RemediationURL}}
  <p><a href="{{.RemediationURL}}">Fix Here</a></p>
{{- end}}
  <hr>
{{- end}}
{{- else}}
  <p>{{.NoIssues}}</p>
{{- end}}
</body>
</html>
`))

type emailCostRow struct {
	Date   string
	Amount string
}

type emailData struct {
	Costs    []emailCostRow
	Findings []domain.SecurityFinding
	NoIssues string
}

// BuildEmailBody renders the HTML summary. The email table formats amounts
// with four decimals and a dollar prefix, unlike the archived CSV.
func BuildEmailBody(records []domain.CostRecord, findings []domain.SecurityFinding) (string, error) {
	data := emailData{
		Findings: findings,
		NoIssues: NoIssuesSentence,
	}
	for _, r := range records {
		data.Costs = append(data.Costs, emailCostRow{
			Date:   r.Date.Format(dateLayout),
			Amount: fmt.Sprintf("$%.4f", r.Amount),
		})
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
