package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "ops@example.com")
	t.Setenv("RECIPIENT_EMAIL", "team@example.com")
	t.Setenv("S3_BUCKET", "billing-reports")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultRegion, cfg.Region)
	assert.Equal(t, DefaultCostThreshold, cfg.CostThresholdUSD)
	assert.Equal(t, DefaultWindowDays, cfg.WindowDays)
	assert.Equal(t, DefaultMaxFindings, cfg.MaxFindings)
	assert.Equal(t, DefaultSnapshotPath, cfg.SnapshotPath)
	assert.Equal(t, DefaultCallTimeout, cfg.CallTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "ops@example.com")
	t.Setenv("RECIPIENT_EMAIL", "team@example.com")
	t.Setenv("S3_BUCKET", "billing-reports")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("COST_THRESHOLD_USD", "125.5")
	t.Setenv("REPORT_WINDOW_DAYS", "30")
	t.Setenv("CALL_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, 125.5, cfg.CostThresholdUSD)
	assert.Equal(t, 30, cfg.WindowDays)
	assert.Equal(t, 10*time.Second, cfg.CallTimeout)
}

func TestValidate_ReportsAllMissingFields(t *testing.T) {
	cfg := &Config{WindowDays: 7, MaxFindings: 5}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SENDER_EMAIL")
	assert.Contains(t, err.Error(), "RECIPIENT_EMAIL")
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestValidate_RejectsNonPositiveWindow(t *testing.T) {
	cfg := &Config{
		Sender:      "ops@example.com",
		Recipient:   "team@example.com",
		Bucket:      "billing-reports",
		WindowDays:  0,
		MaxFindings: 5,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_WINDOW_DAYS")
}
