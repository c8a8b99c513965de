// Package store loads the school dataset from its backing file.
package store

import (
	"context"
	"fmt"
	"os"

	"campusdir/internal/school/models"
)

// FileStore reads records from a JSON file on every Load. There is
// deliberately no caching: edits to the file take effect on the next request
// without a restart, at the cost of a read and parse per call.
type FileStore struct {
	path string
}

// NewFileStore creates a store over the given dataset path. The path is
// resolved against the process working directory when relative.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and parses the full dataset, preserving file order.
func (s *FileStore) Load(ctx context.Context) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", s.path, err)
	}

	records, err := models.DecodeDataset(data)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", s.path, err)
	}
	return records, nil
}
