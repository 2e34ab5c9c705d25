// Package db defines the document-store facade and the bool-query shapes the
// repositories send to it. The Elasticsearch driver lives in db/elastic.
package db

import (
	"context"
	"encoding/json"
	"time"
)

// Store is the document-store facade.
type Store interface {
	Pinger
	DocumentStore
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DocumentStore provides get-by-id and indexing.
type DocumentStore interface {
	// GetDocument returns the raw _source of a document, or ErrDocNotFound
	// when the store reports the id as absent.
	GetDocument(ctx context.Context, index, id string) (json.RawMessage, error)
	// IndexDocument writes a document under the given id. With refresh set,
	// the document is visible to searches as soon as the call returns.
	IndexDocument(ctx context.Context, index, id string, doc any, refresh bool) error
}

// Searcher executes a search request against one index.
type Searcher interface {
	Search(ctx context.Context, req *SearchRequest) (*SearchResult, error)
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total int
	Hits  []Hit
}

// Hit is a single document returned by a search. Score is zero for
// filter-only queries, where the store assigns no relevance.
type Hit struct {
	ID     string
	Score  float64
	Source json.RawMessage
}
