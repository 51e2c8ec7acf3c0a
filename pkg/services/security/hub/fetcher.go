package hub

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/aws/smithy-go"
	"github.com/de-tools/cloud-sentry/pkg/models/domain"
	"github.com/de-tools/cloud-sentry/pkg/services/security"
	"github.com/rs/zerolog"
)

// Security Hub returns this code when the service is not enabled for the
// account. Not an error: the account simply has no findings to report.
const invalidAccessCode = "InvalidAccessException"

type fetcher struct {
	client API
}

// API is the part of the Security Hub client the fetcher uses.
type API interface {
	GetFindings(
		ctx context.Context,
		input *securityhub.GetFindingsInput,
		opts ...func(*securityhub.Options),
	) (*securityhub.GetFindingsOutput, error)
}

// NewFetcher creates a findings fetcher backed by AWS Security Hub.
func NewFetcher(cfg aws.Config) security.Fetcher {
	return &fetcher{client: securityhub.NewFromConfig(cfg)}
}

// NewFetcherWithClient creates a fetcher around an existing client.
func NewFetcherWithClient(client API) security.Fetcher {
	return &fetcher{client: client}
}

func (f *fetcher) FetchFindings(ctx context.Context, max int) ([]domain.SecurityFinding, error) {
	logger := zerolog.Ctx(ctx)

	result, err := f.client.GetFindings(ctx, &securityhub.GetFindingsInput{
		MaxResults: aws.Int32(int32(max)),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == invalidAccessCode {
			logger.Warn().Msg("Security Hub is not enabled, skipping security checks")
			return nil, nil
		}

		logger.Error().Err(err).Msg("failed to fetch security findings")
		return nil, nil
	}

	return normalizeFindings(result.Findings), nil
}
