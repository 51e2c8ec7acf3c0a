package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/cloud-sentry/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildCostCSV_RoundTrip(t *testing.T) {
	records := []domain.CostRecord{
		{Date: day(1), Amount: 10},
		{Date: day(2), Amount: 45.5},
		{Date: day(3), Amount: 0.1234567},
	}

	data, err := BuildCostCSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)

	assert.Equal(t, []string{"Date", "UnblendedCost (USD)"}, rows[0])
	for i, record := range records {
		assert.Equal(t, record.Date.Format("2006-01-02"), rows[i+1][0])
		assert.Equal(t, fmt.Sprintf("%.4f", record.Amount), rows[i+1][1])
	}

	// Analytics format: four decimals, no currency symbol.
	assert.Equal(t, "0.1235", rows[3][1])
	assert.NotContains(t, rows[1][1], "$")
}

func TestBuildFindingsCSV(t *testing.T) {
	findings := []domain.SecurityFinding{
		{
			Title:          "Open security group",
			Severity:       domain.SeverityHigh,
			Description:    "Port 22 open to the world, with a comma",
			RemediationURL: "https://docs.aws.example/sg",
		},
	}

	data, err := BuildFindingsCSV(findings)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Title", "Severity", "Description", "Fix URL"}, rows[0])
	assert.Equal(t, []string{
		"Open security group",
		"HIGH",
		"Port 22 open to the world, with a comma",
		"https://docs.aws.example/sg",
	}, rows[1])
}

func TestAssemble_EmptyInputs(t *testing.T) {
	artifacts, err := Assemble(nil, nil, day(15))
	require.NoError(t, err)

	costRows, err := csv.NewReader(bytes.NewReader(artifacts.CostCSV)).ReadAll()
	require.NoError(t, err)
	require.Len(t, costRows, 1, "cost CSV keeps its header with zero data rows")

	findingRows, err := csv.NewReader(bytes.NewReader(artifacts.FindingsCSV)).ReadAll()
	require.NoError(t, err)
	require.Len(t, findingRows, 1, "findings CSV keeps its header with zero data rows")

	assert.Contains(t, artifacts.EmailHTML, NoIssuesSentence)
	assert.Equal(t, "aws_cost_report_2024-01-15.csv", artifacts.CostKey())
	assert.Equal(t, "aws_security_findings_2024-01-15.csv", artifacts.FindingsKey())
}

func TestBuildEmailBody(t *testing.T) {
	records := []domain.CostRecord{
		{Date: day(1), Amount: 10},
		{Date: day(2), Amount: 45.5},
	}
	findings := []domain.SecurityFinding{
		{
			Title:          "Open security group",
			Severity:       domain.SeverityHigh,
			Description:    "Port 22 open to the world",
			RemediationURL: "https://docs.aws.example/sg",
		},
	}

	body, err := BuildEmailBody(records, findings)
	require.NoError(t, err)

	// The email variant carries a dollar prefix, unlike the CSV.
	assert.Contains(t, body, "$10.0000")
	assert.Contains(t, body, "$45.5000")
	assert.Contains(t, body, "2024-01-01")
	assert.Contains(t, body, "Open security group")
	assert.Contains(t, body, "HIGH")
	assert.Contains(t, body, `href="https://docs.aws.example/sg"`)
	assert.NotContains(t, body, NoIssuesSentence)
}

func TestBuildEmailBody_EscapesUntrustedFindingText(t *testing.T) {
	findings := []domain.SecurityFinding{
		{
			Title:       "<script>alert(1)</script>",
			Severity:    domain.SeverityLow,
			Description: "a & b",
		},
	}

	body, err := BuildEmailBody(nil, findings)
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestBuildEmailBody_Deterministic(t *testing.T) {
	records := []domain.CostRecord{{Date: day(1), Amount: 1.5}}

	first, err := BuildEmailBody(records, nil)
	require.NoError(t, err)
	second, err := BuildEmailBody(records, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(first, NoIssuesSentence))
}
