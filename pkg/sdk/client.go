package floradex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client is the floradex API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// New creates a floradex Client.
func New(opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:   "http://localhost:8080",
		userAgent: "floradex-go",
	}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.baseURL, "/"),
		httpClient: cfg.httpClient,
		userAgent:  cfg.userAgent,
	}
}

// SearchTaxons searches the taxonomy catalog. Results are relevance-ranked
// when q.Text is set.
func (c *Client) SearchTaxons(ctx context.Context, q TaxonQuery) ([]Taxon, error) {
	params := url.Values{}
	if q.Text != "" {
		params.Set("q", q.Text)
	}
	if q.Family != "" {
		params.Set("family", q.Family)
	}
	if q.Genus != "" {
		params.Set("genus", q.Genus)
	}
	if q.LocationID != "" {
		params.Set("locationID", q.LocationID)
	}

	var taxons []Taxon
	if err := c.getJSON(ctx, "/api/taxons/search", params, &taxons); err != nil {
		return nil, err
	}
	return taxons, nil
}

// GetTaxon fetches a single taxon by catalog id. Returns an error matching
// ErrNotFound when the id is unknown.
func (c *Client) GetTaxon(ctx context.Context, id string) (Taxon, error) {
	var taxon Taxon
	if err := c.getJSON(ctx, "/api/taxons/details/"+url.PathEscape(id), nil, &taxon); err != nil {
		return Taxon{}, err
	}
	return taxon, nil
}

// CreateInstance records a sighting and returns it with the server-assigned
// id and observation timestamp.
func (c *Client) CreateInstance(ctx context.Context, in NewInstance) (Instance, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return Instance{}, fmt.Errorf("floradex: encode instance: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/instances", nil, bytes.NewReader(body))
	if err != nil {
		return Instance{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var inst Instance
	if err := c.do(req, &inst); err != nil {
		return Instance{}, err
	}
	return inst, nil
}

// InstancesInBounds returns sightings inside the bounding box.
func (c *Client) InstancesInBounds(ctx context.Context, b Bounds) ([]Instance, error) {
	params := url.Values{}
	params.Set("topLeftLat", formatCoord(b.TopLeft.Lat))
	params.Set("topLeftLon", formatCoord(b.TopLeft.Lon))
	params.Set("bottomRightLat", formatCoord(b.BottomRight.Lat))
	params.Set("bottomRightLon", formatCoord(b.BottomRight.Lon))

	var instances []Instance
	if err := c.getJSON(ctx, "/api/instances/search/geo", params, &instances); err != nil {
		return nil, err
	}
	return instances, nil
}

// Health reports the service health.
func (c *Client) Health(ctx context.Context) (HealthReport, error) {
	var report HealthReport
	if err := c.getJSON(ctx, "/health", nil, &report); err != nil {
		return HealthReport{}, err
	}
	return report, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("floradex: build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do executes the request and decodes the JSON response into out. Non-2xx
// responses become an *APIError carrying the server's message.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("floradex: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("floradex: decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
