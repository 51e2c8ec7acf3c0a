package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/cloud-sentry/pkg/models/domain"
	"github.com/de-tools/cloud-sentry/pkg/services/cost"
	"github.com/de-tools/cloud-sentry/pkg/services/notify"
	"github.com/de-tools/cloud-sentry/pkg/services/report"
	"github.com/de-tools/cloud-sentry/pkg/services/security"
	"github.com/de-tools/cloud-sentry/pkg/store/object"
	"github.com/rs/zerolog"
)

const csvContentType = "text/csv"

// SnapshotStore persists the cost sequence for the dashboard.
type SnapshotStore interface {
	Save(records []domain.CostRecord) error
}

// Dependencies are the external collaborators of one pipeline run, injected
// so tests can substitute fakes.
type Dependencies struct {
	Costs     cost.Fetcher
	Findings  security.Fetcher
	Email     notify.EmailSender
	Objects   object.Store
	Snapshots SnapshotStore
}

type Settings struct {
	WindowDays       int
	MaxFindings      int
	CostThresholdUSD float64
	CallTimeout      time.Duration
}

// Runner executes the fetch -> normalize -> gate -> assemble -> dispatch
// sequence. The cost fetch is the only fatal step; every sink failure is
// contained and logged, so a run that reached dispatch always succeeds.
type Runner struct {
	deps     Dependencies
	settings Settings
}

func NewRunner(deps Dependencies, settings Settings) *Runner {
	if settings.CallTimeout <= 0 {
		settings.CallTimeout = 30 * time.Second
	}
	return &Runner{deps: deps, settings: settings}
}

func (r *Runner) Run(ctx context.Context, now time.Time) error {
	logger := zerolog.Ctx(ctx)

	records, err := r.fetchCosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch cost report: %w", err)
	}
	logger.Info().Int("records", len(records)).Msg("cost report fetched")

	findings := r.fetchFindings(ctx)
	logger.Info().Int("findings", len(findings)).Msg("security findings fetched")

	shouldNotify := report.ShouldNotify(records, findings, r.settings.CostThresholdUSD)

	artifacts, err := report.Assemble(records, findings, now)
	if err != nil {
		return fmt.Errorf("failed to assemble report: %w", err)
	}

	if err := r.deps.Snapshots.Save(records); err != nil {
		// The dashboard keeps serving the previous snapshot.
		logger.Error().Err(err).Msg("failed to save cost snapshot")
	}

	r.dispatch(ctx, artifacts, shouldNotify)
	return nil
}

func (r *Runner) fetchCosts(ctx context.Context) ([]domain.CostRecord, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.settings.CallTimeout)
	defer cancel()
	return r.deps.Costs.FetchDailyCosts(callCtx, r.settings.WindowDays)
}

func (r *Runner) fetchFindings(ctx context.Context) []domain.SecurityFinding {
	logger := zerolog.Ctx(ctx)

	callCtx, cancel := context.WithTimeout(ctx, r.settings.CallTimeout)
	defer cancel()

	findings, err := r.deps.Findings.FetchFindings(callCtx, r.settings.MaxFindings)
	if err != nil {
		// Findings are best-effort, treat any escaped failure as an empty
		// result.
		logger.Error().Err(err).Msg("failed to fetch security findings")
		return nil
	}
	return findings
}

// dispatch writes every configured sink, each isolated: one failing sink is
// logged once and never prevents the others from attempting their write.
func (r *Runner) dispatch(ctx context.Context, artifacts *domain.ReportArtifacts, shouldNotify bool) {
	logger := zerolog.Ctx(ctx)

	if shouldNotify {
		if err := r.sendEmail(ctx, artifacts); err != nil {
			logger.Error().Err(err).Msg("failed to send report email")
		} else {
			logger.Info().Msg("report email sent")
		}
	} else {
		logger.Info().Msg("thresholds not exceeded, skipping email")
	}

	if err := r.putObject(ctx, artifacts.CostKey(), artifacts.CostCSV); err != nil {
		logger.Error().Err(err).Str("key", artifacts.CostKey()).Msg("failed to archive cost report")
	} else {
		logger.Info().Str("key", artifacts.CostKey()).Msg("cost report archived")
	}

	if err := r.putObject(ctx, artifacts.FindingsKey(), artifacts.FindingsCSV); err != nil {
		logger.Error().Err(err).Str("key", artifacts.FindingsKey()).Msg("failed to archive security findings")
	} else {
		logger.Info().Str("key", artifacts.FindingsKey()).Msg("security findings archived")
	}
}

func (r *Runner) sendEmail(ctx context.Context, artifacts *domain.ReportArtifacts) error {
	callCtx, cancel := context.WithTimeout(ctx, r.settings.CallTimeout)
	defer cancel()
	return r.deps.Email.Send(callCtx, report.EmailSubject, artifacts.EmailHTML)
}

func (r *Runner) putObject(ctx context.Context, key string, body []byte) error {
	callCtx, cancel := context.WithTimeout(ctx, r.settings.CallTimeout)
	defer cancel()
	return r.deps.Objects.Put(callCtx, key, body, csvContentType)
}
