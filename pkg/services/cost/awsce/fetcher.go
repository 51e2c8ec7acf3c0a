package awsce

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/cloud-sentry/pkg/models/domain"
	"github.com/de-tools/cloud-sentry/pkg/services/cost"
)

const unblendedCostMetric = "UnblendedCost"

// API is the part of the Cost Explorer client the fetcher uses.
type API interface {
	GetCostAndUsage(
		ctx context.Context,
		input *costexplorer.GetCostAndUsageInput,
		opts ...func(*costexplorer.Options),
	) (*costexplorer.GetCostAndUsageOutput, error)
}

type fetcher struct {
	client API
}

// NewFetcher creates a cost fetcher backed by AWS Cost Explorer.
func NewFetcher(cfg aws.Config) cost.Fetcher {
	return &fetcher{client: costexplorer.NewFromConfig(cfg)}
}

// NewFetcherWithClient creates a fetcher around an existing client.
func NewFetcherWithClient(client API) cost.Fetcher {
	return &fetcher{client: client}
}

func (f *fetcher) FetchDailyCosts(ctx context.Context, days int) ([]domain.CostRecord, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: types.GranularityDaily,
		Metrics:     []string{unblendedCostMetric},
	}

	result, err := f.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get cost and usage: %w", err)
	}

	return normalizeResults(ctx, result.ResultsByTime), nil
}
