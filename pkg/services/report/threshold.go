package report

import "github.com/de-tools/cloud-sentry/pkg/models/domain"

// ShouldNotify decides whether the notification sink fires: any finding at
// all, or total cost strictly above the threshold. Pure and total.
func ShouldNotify(
	records []domain.CostRecord,
	findings []domain.SecurityFinding,
	thresholdUSD float64,
) bool {
	return len(findings) > 0 || domain.TotalCost(records) > thresholdUSD
}
