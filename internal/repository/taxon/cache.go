package taxon

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/smartcampus/floradex/internal/domain"
)

// repository mirrors usecase/taxon.Repository for decoration.
type repository interface {
	Search(ctx context.Context, query string, f domain.TaxonFilters) ([]domain.Taxon, error)
	GetByID(ctx context.Context, id string) (domain.Taxon, error)
}

// Cached decorates a taxon repository with a TTL cache on GetByID. The
// catalog is immutable from this system's side, so cached entries never go
// stale within their TTL. Searches are not cached.
type Cached struct {
	inner repository
	cache *gocache.Cache
}

// NewCached creates a caching decorator.
func NewCached(inner repository, ttl, cleanupInterval time.Duration) *Cached {
	return &Cached{
		inner: inner,
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Search delegates to the wrapped repository.
func (c *Cached) Search(ctx context.Context, query string, f domain.TaxonFilters) ([]domain.Taxon, error) {
	return c.inner.Search(ctx, query, f)
}

// GetByID serves from cache when possible. Absence is not cached: a taxon
// added to the catalog out-of-band becomes visible on the next lookup.
func (c *Cached) GetByID(ctx context.Context, id string) (domain.Taxon, error) {
	if v, found := c.cache.Get(id); found {
		return v.(domain.Taxon), nil
	}

	t, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return domain.Taxon{}, err
	}
	c.cache.SetDefault(id, t)
	return t, nil
}
