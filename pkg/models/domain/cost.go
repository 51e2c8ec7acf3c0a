package domain

import "time"

// CostRecord is one day of unblended cost. Amount may be negative when the
// provider reports a credit or refund adjustment.
type CostRecord struct {
	Date   time.Time
	Amount float64
}

// TotalCost sums the amounts of a cost sequence.
func TotalCost(records []CostRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.Amount
	}
	return total
}
