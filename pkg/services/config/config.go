package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultRegion        = "us-east-1"
	DefaultCostThreshold = 50.0
	DefaultWindowDays    = 7
	DefaultMaxFindings   = 5
	DefaultSnapshotPath  = "aws_cost_report.json"
	DefaultCallTimeout   = 30 * time.Second
)

// Config carries everything the pipeline and the web server need, loaded once
// at process start. Sender, Recipient and Bucket have no sensible defaults and
// are required.
type Config struct {
	Sender           string
	Recipient        string
	Region           string
	Bucket           string
	CostThresholdUSD float64
	WindowDays       int
	MaxFindings      int
	SnapshotPath     string
	CallTimeout      time.Duration
	ServerHost       string
	ServerPort       string
}

// Load reads configuration from environment variables. Typed getters cast the
// raw env strings, so COST_THRESHOLD_USD=125.5 or CALL_TIMEOUT=10s just work.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("AWS_REGION", DefaultRegion)
	v.SetDefault("COST_THRESHOLD_USD", DefaultCostThreshold)
	v.SetDefault("REPORT_WINDOW_DAYS", DefaultWindowDays)
	v.SetDefault("MAX_FINDINGS", DefaultMaxFindings)
	v.SetDefault("SNAPSHOT_PATH", DefaultSnapshotPath)
	v.SetDefault("CALL_TIMEOUT", DefaultCallTimeout)
	v.AutomaticEnv()

	return &Config{
		Sender:           v.GetString("SENDER_EMAIL"),
		Recipient:        v.GetString("RECIPIENT_EMAIL"),
		Region:           v.GetString("AWS_REGION"),
		Bucket:           v.GetString("S3_BUCKET"),
		CostThresholdUSD: v.GetFloat64("COST_THRESHOLD_USD"),
		WindowDays:       v.GetInt("REPORT_WINDOW_DAYS"),
		MaxFindings:      v.GetInt("MAX_FINDINGS"),
		SnapshotPath:     v.GetString("SNAPSHOT_PATH"),
		CallTimeout:      v.GetDuration("CALL_TIMEOUT"),
		ServerHost:       v.GetString("SERVER_HOST"),
		ServerPort:       v.GetString("SERVER_PORT"),
	}, nil
}

// Validate reports all missing required fields at once so an operator can fix
// the deployment in a single pass. A validation failure is startup-fatal.
func (c *Config) Validate() error {
	var missing []string

	if c.Sender == "" {
		missing = append(missing, "SENDER_EMAIL")
	}
	if c.Recipient == "" {
		missing = append(missing, "RECIPIENT_EMAIL")
	}
	if c.Bucket == "" {
		missing = append(missing, "S3_BUCKET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.WindowDays <= 0 {
		return fmt.Errorf("REPORT_WINDOW_DAYS must be positive, got %d", c.WindowDays)
	}
	if c.MaxFindings <= 0 {
		return fmt.Errorf("MAX_FINDINGS must be positive, got %d", c.MaxFindings)
	}

	return nil
}
