package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SearchRequest is a complete search request against one index.
type SearchRequest struct {
	Index string
	Query Clause
	Size  int
}

// Body marshals the request body sent to the store.
func (r *SearchRequest) Body() ([]byte, error) {
	body := map[string]any{
		"query": r.Query,
		"size":  r.Size,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}
	return data, nil
}

// SearchBuilder is a fluent builder for search requests. Scoring clauses go
// into Must; Filter clauses constrain the result set without affecting
// relevance. With neither, the request matches all documents.
type SearchBuilder struct {
	index  string
	must   []Clause
	filter []Clause
	size   int
}

// NewSearch starts building a search request against the given index.
func NewSearch(index string) *SearchBuilder {
	return &SearchBuilder{index: index}
}

// Must adds scoring clauses: every one has to hit and contributes to the
// relevance score.
func (b *SearchBuilder) Must(clauses ...Clause) *SearchBuilder {
	b.must = append(b.must, clauses...)
	return b
}

// Filter adds non-scoring constraints, ANDed together.
func (b *SearchBuilder) Filter(clauses ...Clause) *SearchBuilder {
	b.filter = append(b.filter, clauses...)
	return b
}

// Size caps the number of returned documents.
func (b *SearchBuilder) Size(n int) *SearchBuilder {
	b.size = n
	return b
}

// Build validates and assembles the request. Without scoring clauses the
// result set carries no relevance and its order is store-defined.
func (b *SearchBuilder) Build() (*SearchRequest, error) {
	if b.index == "" {
		return nil, errors.New("search index is required")
	}
	if b.size <= 0 {
		return nil, errors.New("search size must be positive")
	}

	var query Clause
	switch {
	case len(b.must) == 0 && len(b.filter) == 0:
		query = MatchAll()
	default:
		boolBody := map[string]any{}
		if len(b.must) > 0 {
			boolBody["must"] = b.must
		}
		if len(b.filter) > 0 {
			boolBody["filter"] = b.filter
		}
		query = Clause{"bool": boolBody}
	}

	return &SearchRequest{Index: b.index, Query: query, Size: b.size}, nil
}

// MustBuild calls Build and panics on error.
func (b *SearchBuilder) MustBuild() *SearchRequest {
	req, err := b.Build()
	if err != nil {
		panic(err)
	}
	return req
}

// String returns a debug representation of the request.
func (r *SearchRequest) String() string {
	var sb strings.Builder
	sb.WriteString("SEARCH ")
	sb.WriteString(r.Index)
	if body, err := r.Body(); err == nil {
		sb.WriteString(" ")
		sb.Write(body)
	}
	return sb.String()
}
