package awsce

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/cloud-sentry/pkg/models/domain"
	"github.com/de-tools/cloud-sentry/pkg/services/cost"
	"github.com/rs/zerolog"
)

// normalizeResults turns Cost Explorer result buckets into cost records,
// preserving input order. Entries with no amount count as 0.0; entries that
// fail to parse are skipped and logged. A duplicate date overwrites the
// earlier record (last-write-wins).
func normalizeResults(ctx context.Context, results []types.ResultByTime) []domain.CostRecord {
	logger := zerolog.Ctx(ctx)

	records := make([]domain.CostRecord, 0, len(results))
	seen := make(map[time.Time]int)

	for _, result := range results {
		if result.TimePeriod == nil || result.TimePeriod.Start == nil {
			logger.Warn().
				Err(cost.ErrMalformedRecord).
				Msg("billing entry has no period start, skipping")
			continue
		}

		date, err := time.Parse("2006-01-02", *result.TimePeriod.Start)
		if err != nil {
			logger.Warn().
				Err(cost.ErrMalformedRecord).
				Str("start", *result.TimePeriod.Start).
				Msg("billing entry has an unparseable period start, skipping")
			continue
		}

		amount, ok := parseAmount(result.Total)
		if !ok {
			logger.Warn().
				Err(cost.ErrMalformedRecord).
				Str("date", *result.TimePeriod.Start).
				Msg("billing entry has a non-numeric amount, skipping")
			continue
		}

		record := domain.CostRecord{Date: date, Amount: amount}
		if idx, dup := seen[date]; dup {
			records[idx] = record
			continue
		}
		seen[date] = len(records)
		records = append(records, record)
	}

	return records
}

func parseAmount(total map[string]types.MetricValue) (float64, bool) {
	metric, ok := total[unblendedCostMetric]
	if !ok || metric.Amount == nil {
		// Missing amount is not an error, the provider reports zero-cost
		// days this way.
		return 0, true
	}

	amount, err := strconv.ParseFloat(*metric.Amount, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
