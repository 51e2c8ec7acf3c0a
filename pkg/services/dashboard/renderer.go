package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/cloud-sentry/pkg/models/domain"
)

// ErrEmptyDataset is returned when no cost snapshot exists yet, or the stored
// snapshot has zero records.
var ErrEmptyDataset = errors.New("cost snapshot contains no records")

// SnapshotLoader reads the last persisted cost sequence.
type SnapshotLoader interface {
	Load() ([]domain.CostRecord, error)
}

// Renderer turns the stored cost snapshot into chart specifications. It never
// touches the live provider APIs.
type Renderer interface {
	Render(ctx context.Context) (*domain.Dashboard, error)
}

type renderer struct {
	snapshots SnapshotLoader
}

func NewRenderer(snapshots SnapshotLoader) Renderer {
	return &renderer{snapshots: snapshots}
}

func (r *renderer) Render(_ context.Context) (*domain.Dashboard, error) {
	records, err := r.snapshots.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load cost snapshot: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	points := make([]domain.ChartPoint, 0, len(records))
	for _, record := range records {
		points = append(points, domain.ChartPoint{Date: record.Date, Amount: record.Amount})
	}
	latest := records[len(records)-1]

	return &domain.Dashboard{
		KPI: domain.ChartSpec{
			Kind:  domain.ChartKindKPI,
			Title: "Latest AWS Cost ($)",
			Value: latest.Amount,
		},
		Trend: domain.ChartSpec{
			Kind:   domain.ChartKindLine,
			Title:  "AWS Cost Trend",
			Points: points,
		},
		Breakdown: domain.ChartSpec{
			Kind:         domain.ChartKindBar,
			Title:        "Daily AWS Cost Breakdown",
			Points:       points,
			ColorByValue: true,
		},
	}, nil
}
