package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/de-tools/cloud-sentry/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// Assemble builds all artifacts of one run from the same cost/finding pair.
// Empty inputs are fine: the CSVs keep their header row and the email body
// renders the "no issues" sentence.
func Assemble(
	records []domain.CostRecord,
	findings []domain.SecurityFinding,
	date time.Time,
) (*domain.ReportArtifacts, error) {
	costCSV, err := BuildCostCSV(records)
	if err != nil {
		return nil, fmt.Errorf("failed to build cost CSV: %w", err)
	}

	findingsCSV, err := BuildFindingsCSV(findings)
	if err != nil {
		return nil, fmt.Errorf("failed to build findings CSV: %w", err)
	}

	emailHTML, err := BuildEmailBody(records, findings)
	if err != nil {
		return nil, fmt.Errorf("failed to build email body: %w", err)
	}

	return &domain.ReportArtifacts{
		Date:        date,
		CostCSV:     costCSV,
		FindingsCSV: findingsCSV,
		EmailHTML:   emailHTML,
	}, nil
}

// BuildCostCSV renders cost records as CSV for downstream analytics. Amounts
// carry four decimals and no currency symbol.
func BuildCostCSV(records []domain.CostRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "UnblendedCost (USD)"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{r.Date.Format(dateLayout), fmt.Sprintf("%.4f", r.Amount)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildFindingsCSV renders security findings as CSV.
func BuildFindingsCSV(findings []domain.SecurityFinding) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Title", "Severity", "Description", "Fix URL"}); err != nil {
		return nil, err
	}
	for _, f := range findings {
		row := []string{f.Title, string(f.Severity), f.Description, f.RemediationURL}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
