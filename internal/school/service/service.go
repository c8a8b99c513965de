// Package service implements the read operations over the school dataset.
package service

import (
	"context"

	"campusdir/internal/school/models"
	dErrors "campusdir/pkg/domain-errors"
)

// Store abstracts the dataset source. Load must return the full ordered
// dataset on every call.
type Store interface {
	Load(ctx context.Context) ([]models.Record, error)
}

// Service exposes the school read operations.
type Service struct {
	store Store
}

// New constructs a Service over the given store.
func New(store Store) *Service {
	return &Service{store: store}
}

// List returns every record in dataset order.
func (s *Service) List(ctx context.Context) ([]models.Record, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load school data", err)
	}
	return records, nil
}

// Get returns the first record whose guid equals the given identifier.
// The identifier must have the canonical UUID shape; the comparison against
// stored guids is an exact string match, so an identifier differing only in
// hex letter case from the stored value will not match.
func (s *Service) Get(ctx context.Context, guid string) (models.Record, error) {
	if !IsValidGUID(guid) {
		return models.Record{}, dErrors.New(dErrors.CodeBadRequest, "Invalid GUID format: "+guid)
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return models.Record{}, dErrors.Wrap(dErrors.CodeInternal, "failed to load school data", err)
	}

	for _, rec := range records {
		if rec.GUID == guid {
			return rec, nil
		}
	}
	return models.Record{}, dErrors.New(dErrors.CodeNotFound, "Item not found: "+guid)
}
