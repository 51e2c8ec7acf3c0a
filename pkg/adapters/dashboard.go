package adapters

import (
	"github.com/de-tools/cloud-sentry/pkg/models/api"
	"github.com/de-tools/cloud-sentry/pkg/models/domain"
)

func MapDashboardDomainToApi(d domain.Dashboard) api.Dashboard {
	return api.Dashboard{
		KPI:       MapChartSpecDomainToApi(d.KPI),
		Trend:     MapChartSpecDomainToApi(d.Trend),
		Breakdown: MapChartSpecDomainToApi(d.Breakdown),
	}
}

func MapChartSpecDomainToApi(spec domain.ChartSpec) api.ChartSpec {
	apiSpec := api.ChartSpec{
		Kind:         string(spec.Kind),
		Title:        spec.Title,
		Value:        spec.Value,
		ColorByValue: spec.ColorByValue,
	}

	for _, p := range spec.Points {
		apiSpec.Points = append(apiSpec.Points, api.ChartPoint{
			Date:   p.Date.Format(dateLayout),
			Amount: p.Amount,
		})
	}

	return apiSpec
}
