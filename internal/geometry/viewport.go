package geometry

// Zoom bounds for the editor canvas. Zoom steps are multiplicative so
// repeated zooming is geometric rather than linear.
const (
	MinZoom = 0.3
	MaxZoom = 2.0

	zoomInFactor  = 1.1
	zoomOutFactor = 0.9
)

// Viewport is the affine view transform applied to the whole canvas:
// a uniform zoom followed by a pan offset in screen coordinates.
type Viewport struct {
	Pan  Point   `json:"pan"`
	Zoom float64 `json:"zoom"`
}

// NewViewport returns the identity viewport.
func NewViewport() Viewport {
	return Viewport{Zoom: 1.0}
}

// ZoomIn returns the viewport zoomed in one wheel step, clamped to MaxZoom.
func (v Viewport) ZoomIn() Viewport {
	v.Zoom = clampZoom(v.Zoom * zoomInFactor)
	return v
}

// ZoomOut returns the viewport zoomed out one wheel step, clamped to MinZoom.
func (v Viewport) ZoomOut() Viewport {
	v.Zoom = clampZoom(v.Zoom * zoomOutFactor)
	return v
}

// WithPan returns the viewport panned to the given offset.
func (v Viewport) WithPan(pan Point) Viewport {
	v.Pan = pan
	return v
}

// Apply maps a layout-space point to screen space.
func (v Viewport) Apply(p Point) Point {
	return Point{
		X: p.X*v.Zoom + v.Pan.X,
		Y: p.Y*v.Zoom + v.Pan.Y,
	}
}

// Invert maps a screen-space point (e.g. a cursor position) back to layout
// space.
func (v Viewport) Invert(p Point) Point {
	return Point{
		X: (p.X - v.Pan.X) / v.Zoom,
		Y: (p.Y - v.Pan.Y) / v.Zoom,
	}
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
