package geo

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestViewportBounds(t *testing.T) {
	v := Viewport{CenterLat: -29.717, CenterLon: -53.715, LatSpan: 0.02, LonSpan: 0.04}
	b := v.Bounds()

	if got := b.TopLeft.Lat; math.Abs(got-(-29.707)) > tolerance {
		t.Errorf("top_left.lat = %v, want -29.707", got)
	}
	if got := b.TopLeft.Lon; math.Abs(got-(-53.735)) > tolerance {
		t.Errorf("top_left.lon = %v, want -53.735", got)
	}
	if got := b.BottomRight.Lat; math.Abs(got-(-29.727)) > tolerance {
		t.Errorf("bottom_right.lat = %v, want -29.727", got)
	}
	if got := b.BottomRight.Lon; math.Abs(got-(-53.695)) > tolerance {
		t.Errorf("bottom_right.lon = %v, want -53.695", got)
	}
}

func TestViewportBounds_SpanRoundTrip(t *testing.T) {
	viewports := []Viewport{
		{CenterLat: -29.717, CenterLon: -53.715, LatSpan: 0.02, LonSpan: 0.02},
		{CenterLat: 0, CenterLon: 0, LatSpan: 1.5, LonSpan: 3},
		{CenterLat: 89, CenterLon: 179, LatSpan: 0.5, LonSpan: 0.5},
	}
	for _, v := range viewports {
		b := v.Bounds()
		if got := b.TopLeft.Lat - b.BottomRight.Lat; math.Abs(got-v.LatSpan) > tolerance {
			t.Errorf("viewport %+v: lat span = %v, want %v", v, got, v.LatSpan)
		}
		if got := b.BottomRight.Lon - b.TopLeft.Lon; math.Abs(got-v.LonSpan) > tolerance {
			t.Errorf("viewport %+v: lon span = %v, want %v", v, got, v.LonSpan)
		}
	}
}

func TestViewportBounds_Invariant(t *testing.T) {
	b := Viewport{CenterLat: 10, CenterLon: 20, LatSpan: 2, LonSpan: 4}.Bounds()
	if b.TopLeft.Lat < b.BottomRight.Lat {
		t.Errorf("top_left.lat %v < bottom_right.lat %v", b.TopLeft.Lat, b.BottomRight.Lat)
	}
	if b.TopLeft.Lon > b.BottomRight.Lon {
		t.Errorf("top_left.lon %v > bottom_right.lon %v", b.TopLeft.Lon, b.BottomRight.Lon)
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{
		TopLeft:     Point{Lat: -29.70, Lon: -53.72},
		BottomRight: Point{Lat: -29.73, Lon: -53.70},
	}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{Lat: -29.715, Lon: -53.71}, true},
		{"northwest corner", Point{Lat: -29.70, Lon: -53.72}, true},
		{"southeast corner", Point{Lat: -29.73, Lon: -53.70}, true},
		{"north of box", Point{Lat: -29.69, Lon: -53.71}, false},
		{"west of box", Point{Lat: -29.715, Lon: -53.73}, false},
		{"south of box", Point{Lat: -29.74, Lon: -53.71}, false},
		{"east of box", Point{Lat: -29.715, Lon: -53.69}, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}
