package hub

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
	"github.com/de-tools/cloud-sentry/pkg/models/domain"
)

// normalizeFindings maps provider findings into domain findings in fetch
// order. Every nested field on the provider shape is optional.
func normalizeFindings(findings []types.AwsSecurityFinding) []domain.SecurityFinding {
	normalized := make([]domain.SecurityFinding, 0, len(findings))

	for _, f := range findings {
		normalized = append(normalized, domain.SecurityFinding{
			Title:          aws.ToString(f.Title),
			Severity:       severityOf(f),
			Description:    aws.ToString(f.Description),
			RemediationURL: remediationURLOf(f),
		})
	}

	return normalized
}

func severityOf(f types.AwsSecurityFinding) domain.Severity {
	if f.Severity == nil || f.Severity.Label == "" {
		return domain.SeverityInformational
	}
	return domain.Severity(f.Severity.Label)
}

func remediationURLOf(f types.AwsSecurityFinding) string {
	if f.Remediation == nil || f.Remediation.Recommendation == nil {
		return ""
	}
	return aws.ToString(f.Remediation.Recommendation.Url)
}
