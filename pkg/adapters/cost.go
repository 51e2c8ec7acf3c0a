package adapters

import (
	"fmt"
	"time"

	"github.com/de-tools/cloud-sentry/pkg/models/domain"
	"github.com/de-tools/cloud-sentry/pkg/models/store"
)

const dateLayout = "2006-01-02"

func MapDomainCostToStoreRow(record domain.CostRecord) store.CostRow {
	return store.CostRow{
		Date:   record.Date.Format(dateLayout),
		Amount: record.Amount,
	}
}

func MapStoreRowToDomainCost(row store.CostRow) (domain.CostRecord, error) {
	date, err := time.Parse(dateLayout, row.Date)
	if err != nil {
		return domain.CostRecord{}, fmt.Errorf("failed to parse snapshot date %q: %w", row.Date, err)
	}
	return domain.CostRecord{Date: date, Amount: row.Amount}, nil
}
