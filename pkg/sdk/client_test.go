package floradex

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSearchTaxonsSendsCriteria(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"t1","scientificName":"Araucaria angustifolia"}]`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	taxons, err := client.SearchTaxons(context.Background(), TaxonQuery{
		Text:   "araucaria",
		Family: "Araucariaceae",
	})
	if err != nil {
		t.Fatalf("SearchTaxons: %v", err)
	}

	if gotPath != "/api/taxons/search" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery["q"] != "araucaria" || gotQuery["family"] != "Araucariaceae" {
		t.Errorf("query = %v", gotQuery)
	}
	if _, ok := gotQuery["genus"]; ok {
		t.Error("empty genus criterion was sent")
	}
	if len(taxons) != 1 || taxons[0].ID != "t1" {
		t.Errorf("taxons = %+v", taxons)
	}
}

func TestGetTaxonNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"taxon not found"}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	_, err := client.GetTaxon(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound match", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Message != "taxon not found" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestCreateInstance(t *testing.T) {
	var gotBody NewInstance

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/instances" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Instance{
			InstanceID: "generated-id",
			Location:   *gotBody.Location,
			Species:    gotBody.Species,
			ObservedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		})
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	inst, err := client.CreateInstance(context.Background(), NewInstance{
		Location: &Point{Lat: -29.717, Lon: -53.715},
		Species:  &Taxon{ID: "t1", ScientificName: "Araucaria angustifolia"},
	})
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}

	if gotBody.Location == nil || gotBody.Location.Lat != -29.717 {
		t.Errorf("sent location = %+v", gotBody.Location)
	}
	if inst.InstanceID != "generated-id" {
		t.Errorf("instance id = %q", inst.InstanceID)
	}
	if inst.ObservedAt.IsZero() {
		t.Error("observed_at not decoded")
	}
}

func TestInstancesInBoundsSendsCoordinates(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	_, err := client.InstancesInBounds(context.Background(), Bounds{
		TopLeft:     Point{Lat: -29.707, Lon: -53.725},
		BottomRight: Point{Lat: -29.727, Lon: -53.705},
	})
	if err != nil {
		t.Fatalf("InstancesInBounds: %v", err)
	}

	want := map[string]string{
		"topLeftLat":     "-29.707",
		"topLeftLon":     "-53.725",
		"bottomRightLat": "-29.727",
		"bottomRightLon": "-53.705",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("%s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestValidationErrorSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"validation failed: search query or at least one filter is required"}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	_, err := client.SearchTaxons(context.Background(), TaxonQuery{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("400 must not match ErrNotFound")
	}
}

func TestErrorBodyNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	_, err := client.Health(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("message = %q", apiErr.Message)
	}
}
