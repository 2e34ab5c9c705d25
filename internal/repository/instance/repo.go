// Package instance implements sighting storage over the document store.
package instance

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/smartcampus/floradex/internal/db"
	"github.com/smartcampus/floradex/internal/domain"
	"github.com/smartcampus/floradex/internal/domain/geo"
)

// maxGeoResults caps every geo query. Same policy as taxon search: narrow the
// rectangle instead of paginating.
const maxGeoResults = 1000

// store is the consumer interface for the instances index (ISP).
type store interface {
	IndexDocument(ctx context.Context, index, id string, doc any, refresh bool) error
	Search(ctx context.Context, req *db.SearchRequest) (*db.SearchResult, error)
}

// Repo implements usecase/instance.Repository.
type Repo struct {
	store store
	index string
}

// New creates an instance repository over the given instances index.
func New(s store, index string) *Repo {
	return &Repo{store: s, index: index}
}

// Index writes a sighting with immediate visibility: a geo query issued right
// after Index returns must already see the document.
func (r *Repo) Index(ctx context.Context, inst *domain.Instance) error {
	if err := r.store.IndexDocument(ctx, r.index, inst.InstanceID, inst, true); err != nil {
		return fmt.Errorf("index instance %s: %w", inst.InstanceID, err)
	}
	return nil
}

// SearchBounds returns all sightings inside the rectangle, borders included,
// capped at maxGeoResults. Pure geo filters carry no relevance, so the result
// order is store-defined.
func (r *Repo) SearchBounds(ctx context.Context, b geo.Bounds) ([]domain.Instance, error) {
	req, err := db.NewSearch(r.index).
		Filter(db.GeoBoundingBox("location",
			b.TopLeft.Lat, b.TopLeft.Lon,
			b.BottomRight.Lat, b.BottomRight.Lon,
		)).
		Size(maxGeoResults).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build geo search: %w", err)
	}

	res, err := r.store.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search instances: %w", err)
	}

	instances := make([]domain.Instance, 0, len(res.Hits))
	for _, hit := range res.Hits {
		var inst domain.Instance
		if err := json.Unmarshal(hit.Source, &inst); err != nil {
			return nil, fmt.Errorf("decode instance %s: %w", hit.ID, err)
		}
		if inst.InstanceID == "" {
			inst.InstanceID = hit.ID
		}
		instances = append(instances, inst)
	}
	return instances, nil
}
