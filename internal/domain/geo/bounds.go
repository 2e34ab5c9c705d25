// Package geo holds the coordinate value types and the viewport-to-bounds
// translation used by geo queries. Everything here is pure.
package geo

// Point is a lat/lon pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bounds is a rectangle given by its northwest and southeast corners.
// Invariant: TopLeft.Lat >= BottomRight.Lat and TopLeft.Lon <= BottomRight.Lon.
type Bounds struct {
	TopLeft     Point `json:"top_left"`
	BottomRight Point `json:"bottom_right"`
}

// Contains reports whether p lies within the rectangle, borders included.
func (b Bounds) Contains(p Point) bool {
	return p.Lat <= b.TopLeft.Lat && p.Lat >= b.BottomRight.Lat &&
		p.Lon >= b.TopLeft.Lon && p.Lon <= b.BottomRight.Lon
}

// Viewport describes a map view by its center and spans.
type Viewport struct {
	CenterLat float64
	CenterLon float64
	LatSpan   float64
	LonSpan   float64
}

// Bounds converts the viewport into its bounding rectangle. No validation:
// malformed numeric input propagates as-is into the result.
func (v Viewport) Bounds() Bounds {
	return Bounds{
		TopLeft: Point{
			Lat: v.CenterLat + v.LatSpan/2,
			Lon: v.CenterLon - v.LonSpan/2,
		},
		BottomRight: Point{
			Lat: v.CenterLat - v.LatSpan/2,
			Lon: v.CenterLon + v.LonSpan/2,
		},
	}
}
