package floradex

// Viewport is a map viewport: a center coordinate plus the latitude and
// longitude spans currently visible.
type Viewport struct {
	CenterLat float64
	CenterLon float64
	LatSpan   float64
	LonSpan   float64
}

// Bounds converts the viewport to the bounding box covering it. The top
// left corner sits half a span north-west of the center, the bottom right
// half a span south-east.
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
