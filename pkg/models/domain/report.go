package domain

import "time"

// ReportArtifacts holds everything one pipeline run produces: the two CSV
// documents archived to object storage and the HTML email body. All three are
// derived from the same cost/finding sequences and share no state.
type ReportArtifacts struct {
	Date        time.Time
	CostCSV     []byte
	FindingsCSV []byte
	EmailHTML   string
}

// CostKey returns the storage key for the cost CSV of this run.
func (a *ReportArtifacts) CostKey() string {
	return "aws_cost_report_" + a.Date.Format("2006-01-02") + ".csv"
}

// FindingsKey returns the storage key for the findings CSV of this run.
func (a *ReportArtifacts) FindingsKey() string {
	return "aws_security_findings_" + a.Date.Format("2006-01-02") + ".csv"
}
