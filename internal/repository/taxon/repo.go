// Package taxon implements catalog retrieval over the document store.
package taxon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/smartcampus/floradex/internal/db"
	"github.com/smartcampus/floradex/internal/domain"
)

// Relevance tiers for the free-text clause. Scientific names dominate,
// vernacular names follow, synonyms contribute least.
const (
	boostScientificName = 5
	boostVernacularName = 3
	boostSinonymName    = 1
)

// maxSearchResults caps every taxon search. No pagination cursor is exposed;
// callers needing more must narrow their criteria.
const maxSearchResults = 1000

// store is the consumer interface for the taxonomy index (ISP).
type store interface {
	GetDocument(ctx context.Context, index, id string) (json.RawMessage, error)
	Search(ctx context.Context, req *db.SearchRequest) (*db.SearchResult, error)
}

// Repo implements usecase/taxon.Repository.
type Repo struct {
	store store
	index string
}

// New creates a taxon repository over the given taxonomy index.
func New(s store, index string) *Repo {
	return &Repo{store: s, index: index}
}

// Search runs a ranked retrieval over the catalog. With a free-text query the
// results come back by descending relevance; filter-only searches are
// unordered (the store assigns no score and no explicit sort is applied).
func (r *Repo) Search(ctx context.Context, query string, f domain.TaxonFilters) ([]domain.Taxon, error) {
	b := db.NewSearch(r.index).Size(maxSearchResults)

	if query != "" {
		b.Must(db.Should(1,
			db.MatchBoost("scientificName", query, boostScientificName),
			db.Nested("vernacularNames", db.MatchBoost("vernacularNames.name", query, boostVernacularName)),
			db.Nested("sinonyms", db.MatchBoost("sinonyms.scientificName", query, boostSinonymName)),
		))
	}

	if f.Family != "" {
		b.Filter(db.Match("higherClassification.family", f.Family))
	}
	if f.Genus != "" {
		b.Filter(db.Match("higherClassification.genus", f.Genus))
	}
	if f.LocationID != "" {
		b.Filter(db.Nested("distribution", db.Match("distribution.locationID", f.LocationID)))
	}

	req, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build taxon search: %w", err)
	}

	res, err := r.store.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search taxons: %w", err)
	}

	taxons := make([]domain.Taxon, 0, len(res.Hits))
	for _, hit := range res.Hits {
		var t domain.Taxon
		if err := json.Unmarshal(hit.Source, &t); err != nil {
			return nil, fmt.Errorf("decode taxon %s: %w", hit.ID, err)
		}
		if t.ID == "" {
			t.ID = hit.ID
		}
		taxons = append(taxons, t)
	}
	return taxons, nil
}

// GetByID returns a single catalog entry. Only a store-reported absence maps
// to domain.ErrTaxonNotFound; any other failure propagates.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Taxon, error) {
	src, err := r.store.GetDocument(ctx, r.index, id)
	if err != nil {
		if errors.Is(err, db.ErrDocNotFound) {
			return domain.Taxon{}, domain.ErrTaxonNotFound
		}
		return domain.Taxon{}, fmt.Errorf("get taxon %s: %w", id, err)
	}

	var t domain.Taxon
	if err := json.Unmarshal(src, &t); err != nil {
		return domain.Taxon{}, fmt.Errorf("decode taxon %s: %w", id, err)
	}
	if t.ID == "" {
		t.ID = id
	}
	return t, nil
}
