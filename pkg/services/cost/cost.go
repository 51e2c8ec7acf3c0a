package cost

import (
	"context"
	"errors"

	"github.com/de-tools/cloud-sentry/pkg/models/domain"
)

// ErrMalformedRecord marks a single billing entry that could not be parsed.
// Malformed entries are skipped and logged, never fatal.
var ErrMalformedRecord = errors.New("malformed cost record")

// Fetcher retrieves daily unblended costs for a trailing window. A fetch
// failure is fatal for the run: every downstream artifact needs cost data.
type Fetcher interface {
	FetchDailyCosts(ctx context.Context, days int) ([]domain.CostRecord, error)
}
