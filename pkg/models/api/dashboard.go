package api

type ChartPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type ChartSpec struct {
	Kind         string       `json:"kind"`
	Title        string       `json:"title"`
	Value        float64      `json:"value,omitempty"`
	Points       []ChartPoint `json:"points,omitempty"`
	ColorByValue bool         `json:"color_by_value,omitempty"`
}

type Dashboard struct {
	KPI       ChartSpec `json:"kpi"`
	Trend     ChartSpec `json:"trend"`
	Breakdown ChartSpec `json:"breakdown"`
}
