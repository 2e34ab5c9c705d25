// Package elastic implements the db.Store facade on Elasticsearch.
package elastic

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/smartcampus/floradex/internal/db"
)

// Config holds Elasticsearch connection settings.
type Config struct {
	Addresses []string
	Username  string
	Password  string
	// InsecureSkipVerify disables TLS certificate verification. Development
	// clusters only.
	InsecureSkipVerify bool
}

// Store is the Elasticsearch-backed document store.
type Store struct {
	es *elasticsearch.Client
}

var _ db.Store = (*Store)(nil)

// NewStore creates an Elasticsearch store.
func NewStore(cfg Config) (*Store, error) {
	esCfg := elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	}
	if cfg.InsecureSkipVerify {
		esCfg.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // dev-cluster opt-in
		}
	}

	es, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return &Store{es: es}, nil
}

// Ping checks cluster connectivity.
func (s *Store) Ping(ctx context.Context) error {
	res, err := s.es.Ping(s.es.Ping.WithContext(ctx))
	if err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	defer res.Body.Close()
	if res.IsError() {
		return &db.Error{Op: db.OpPing, Err: fmt.Errorf("cluster responded %s", res.Status())}
	}
	return nil
}

// WaitForReady polls the cluster until it responds or the timeout elapses.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	var lastErr error
	for {
		if lastErr = s.Ping(ctx); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("store not ready after %s: %w", timeout, lastErr)
		case <-ticker.C:
		}
	}
}

// Close releases client resources. The underlying HTTP transport has no
// explicit teardown.
func (s *Store) Close() {}

// getEnvelope is the store's get-by-id response envelope.
type getEnvelope struct {
	Source json.RawMessage `json:"_source"`
}

// GetDocument returns the raw document source. A store-reported 404 maps to
// db.ErrDocNotFound; every other failure propagates as a store error.
func (s *Store) GetDocument(ctx context.Context, index, id string) (json.RawMessage, error) {
	res, err := s.es.Get(index, id, s.es.Get.WithContext(ctx))
	if err != nil {
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, db.ErrDocNotFound
	}
	if res.IsError() {
		return nil, &db.Error{Op: db.OpGet, Err: responseError(res.Status(), res.Body)}
	}

	var env getEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, &db.Error{Op: db.OpGet, Err: fmt.Errorf("decode response: %w", err)}
	}
	return env.Source, nil
}

// IndexDocument writes a document under the given id. With refresh set, the
// write is searchable as soon as the call returns.
func (s *Store) IndexDocument(ctx context.Context, index, id string, doc any, refresh bool) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return &db.Error{Op: db.OpIndex, Err: fmt.Errorf("marshal document: %w", err)}
	}

	opts := []func(*esapi.IndexRequest){
		s.es.Index.WithContext(ctx),
		s.es.Index.WithDocumentID(id),
	}
	if refresh {
		opts = append(opts, s.es.Index.WithRefresh("true"))
	}

	res, err := s.es.Index(index, bytes.NewReader(data), opts...)
	if err != nil {
		return &db.Error{Op: db.OpIndex, Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return &db.Error{Op: db.OpIndex, Err: responseError(res.Status(), res.Body)}
	}
	return nil
}

// searchEnvelope is the store's search response envelope.
type searchEnvelope struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string          `json:"_id"`
			Score  *float64        `json:"_score"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search executes a search request.
func (s *Store) Search(ctx context.Context, req *db.SearchRequest) (*db.SearchResult, error) {
	body, err := req.Body()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	res, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(req.Index),
		s.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, &db.Error{Op: db.OpSearch, Err: responseError(res.Status(), res.Body)}
	}

	var env searchEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("decode response: %w", err)}
	}

	result := &db.SearchResult{
		Total: env.Hits.Total.Value,
		Hits:  make([]db.Hit, 0, len(env.Hits.Hits)),
	}
	for _, h := range env.Hits.Hits {
		hit := db.Hit{ID: h.ID, Source: h.Source}
		// _score is null on filter-only queries
		if h.Score != nil {
			hit.Score = *h.Score
		}
		result.Hits = append(result.Hits, hit)
	}
	return result, nil
}

const maxErrorBodyBytes = 2048

// responseError summarizes a non-2xx store response without flooding logs.
func responseError(status string, body io.Reader) error {
	snippet, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if len(snippet) == 0 {
		return fmt.Errorf("store responded %s", status)
	}
	return fmt.Errorf("store responded %s: %s", status, bytes.TrimSpace(snippet))
}
