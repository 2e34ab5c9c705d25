package instance

import (
	"context"

	"github.com/smartcampus/floradex/internal/domain"
	"github.com/smartcampus/floradex/internal/domain/geo"
)

// Repository defines the sighting storage contract. Index must leave the
// document visible to SearchBounds as soon as it returns.
type Repository interface {
	Index(ctx context.Context, inst *domain.Instance) error
	SearchBounds(ctx context.Context, b geo.Bounds) ([]domain.Instance, error)
}
