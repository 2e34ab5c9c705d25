// Package instance exposes sighting creation and geo retrieval.
package instance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartcampus/floradex/internal/domain"
	"github.com/smartcampus/floradex/internal/domain/geo"
)

// Service handles sighting creation and geo search.
type Service struct {
	repo Repository
	now  func() time.Time
}

// New creates an instance service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the observation timestamp source. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create stores a new sighting. The identifier and observation timestamp are
// generated here and always win over caller-supplied values; the species
// snapshot is embedded as given so later catalog corrections never rewrite
// historical records.
func (s *Service) Create(ctx context.Context, in *domain.NewInstanceInput) (domain.Instance, error) {
	if err := in.Validate(); err != nil {
		return domain.Instance{}, fmt.Errorf("%w: location and species are required", domain.ErrValidation)
	}

	inst := domain.Instance{
		InstanceID:  uuid.NewString(),
		Location:    *in.Location,
		Species:     in.Species,
		Description: in.Description,
		ObservedAt:  s.now().UTC(),
		UserID:      in.UserID,
		ImageURL:    in.ImageURL,
	}

	if err := s.repo.Index(ctx, &inst); err != nil {
		return domain.Instance{}, fmt.Errorf("store instance: %w", err)
	}
	return inst, nil
}

// SearchBounds returns all sightings inside the rectangle.
func (s *Service) SearchBounds(ctx context.Context, b geo.Bounds) ([]domain.Instance, error) {
	return s.repo.SearchBounds(ctx, b)
}
