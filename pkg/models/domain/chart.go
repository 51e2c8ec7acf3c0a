package domain

import "time"

type ChartKind string

const (
	ChartKindKPI  ChartKind = "kpi"
	ChartKindLine ChartKind = "line"
	ChartKindBar  ChartKind = "bar"
)

type ChartPoint struct {
	Date   time.Time
	Amount float64
}

// ChartSpec describes one chart for the dashboard. Value is only meaningful
// for KPI charts, Points only for line and bar charts.
type ChartSpec struct {
	Kind         ChartKind
	Title        string
	Value        float64
	Points       []ChartPoint
	ColorByValue bool
}

// Dashboard is the full set of charts rendered from one cost snapshot.
type Dashboard struct {
	KPI       ChartSpec
	Trend     ChartSpec
	Breakdown ChartSpec
}
