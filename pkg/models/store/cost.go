package store

// CostRow is the on-disk shape of one cost record in the local snapshot
// document consumed by the dashboard.
type CostRow struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}
