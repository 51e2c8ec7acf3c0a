package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/de-tools/cloud-sentry/pkg/adapters"
	"github.com/de-tools/cloud-sentry/pkg/models/domain"
	storemodels "github.com/de-tools/cloud-sentry/pkg/models/store"
)

// Store keeps the latest cost sequence in a local JSON document. The pipeline
// overwrites it each run; the dashboard reads whatever was last persisted.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Save(records []domain.CostRecord) error {
	rows := make([]storemodels.CostRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, adapters.MapDomainCostToStoreRow(r))
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cost snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cost snapshot: %w", err)
	}
	return nil
}

// Load returns the last persisted cost sequence, or an empty sequence when no
// snapshot has been written yet.
func (s *Store) Load() ([]domain.CostRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cost snapshot: %w", err)
	}

	var rows []storemodels.CostRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse cost snapshot: %w", err)
	}

	records := make([]domain.CostRecord, 0, len(rows))
	for _, row := range rows {
		record, err := adapters.MapStoreRowToDomainCost(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
