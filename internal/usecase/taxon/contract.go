package taxon

import (
	"context"

	"github.com/smartcampus/floradex/internal/domain"
)

// Repository defines the catalog retrieval contract.
type Repository interface {
	Search(ctx context.Context, query string, f domain.TaxonFilters) ([]domain.Taxon, error)
	GetByID(ctx context.Context, id string) (domain.Taxon, error)
}
