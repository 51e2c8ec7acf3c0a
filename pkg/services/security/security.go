package security

import (
	"context"

	"github.com/de-tools/cloud-sentry/pkg/models/domain"
)

// Fetcher retrieves security findings, capped at max results. Findings are
// best-effort: implementations contain provider failures and return an empty
// sequence instead, so a disabled or erroring security service never blocks
// the cost report.
type Fetcher interface {
	FetchFindings(ctx context.Context, max int) ([]domain.SecurityFinding, error)
}
