package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadSnapshot loads a dataset from a JSON snapshot file.
func ReadSnapshot(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	d.reindex()
	return &d, nil
}

// WriteSnapshot saves the dataset to a JSON snapshot file. Snapshots let
// classification rerun without the staging database.
func WriteSnapshot(path string, d *Dataset) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
