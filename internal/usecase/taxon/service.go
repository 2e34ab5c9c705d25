// Package taxon exposes catalog search and lookup.
package taxon

import (
	"context"
	"fmt"

	"github.com/smartcampus/floradex/internal/domain"
)

// Service handles taxon search and lookup.
type Service struct {
	repo Repository
}

// New creates a taxon service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search runs a ranked catalog search. At least one criterion — the free-text
// query or a filter — is required.
func (s *Service) Search(ctx context.Context, query string, f domain.TaxonFilters) ([]domain.Taxon, error) {
	if query == "" && f.IsEmpty() {
		return nil, fmt.Errorf("%w: search query or at least one filter is required", domain.ErrValidation)
	}
	return s.repo.Search(ctx, query, f)
}

// Get returns a single catalog entry by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Taxon, error) {
	if id == "" {
		return domain.Taxon{}, fmt.Errorf("%w: taxon id is required", domain.ErrValidation)
	}
	return s.repo.GetByID(ctx, id)
}
