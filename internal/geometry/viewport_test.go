package geometry

import (
	"math"
	"testing"
)

func TestZoomClamp(t *testing.T) {
	v := NewViewport()

	// Repeated zoom-in saturates at MaxZoom.
	for i := 0; i < 50; i++ {
		v = v.ZoomIn()
	}
	if v.Zoom != MaxZoom {
		t.Errorf("zoom after repeated zoom-in = %f, want %f", v.Zoom, MaxZoom)
	}
	if v.ZoomIn().Zoom != MaxZoom {
		t.Errorf("zoom-in at MaxZoom moved the zoom")
	}

	// Repeated zoom-out saturates at MinZoom.
	for i := 0; i < 50; i++ {
		v = v.ZoomOut()
	}
	if v.Zoom != MinZoom {
		t.Errorf("zoom after repeated zoom-out = %f, want %f", v.Zoom, MinZoom)
	}
	if v.ZoomOut().Zoom != MinZoom {
		t.Errorf("zoom-out at MinZoom moved the zoom")
	}
}

func TestZoomIsGeometric(t *testing.T) {
	v := NewViewport()
	v = v.ZoomIn().ZoomIn()
	if math.Abs(v.Zoom-1.21) > 1e-9 {
		t.Errorf("two zoom-in steps = %f, want 1.21", v.Zoom)
	}

	v = NewViewport().ZoomIn().ZoomOut()
	if math.Abs(v.Zoom-0.99) > 1e-9 {
		t.Errorf("zoom-in then zoom-out = %f, want 0.99 (steps do not cancel)", v.Zoom)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Pan: Point{X: 40, Y: -12.5}, Zoom: 1.7}
	points := []Point{{0, 0}, {100, 250}, {-33.3, 7}}

	for _, p := range points {
		back := v.Invert(v.Apply(p))
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("round trip of %+v gave %+v", p, back)
		}
	}
}

func TestSectionToWorld(t *testing.T) {
	tests := []struct {
		name     string
		local    Point
		x, y     float64
		rotation float64
		want     Point
	}{
		{"identity", Point{10, 20}, 0, 0, 0, Point{10, 20}},
		{"translate only", Point{10, 20}, 100, 50, 0, Point{110, 70}},
		{"quarter turn", Point{10, 0}, 0, 0, 90, Point{0, 10}},
		{"half turn with offset", Point{10, 0}, 5, 5, 180, Point{-5, 5}},
	}

	for _, tt := range tests {
		got := SectionToWorld(tt.local, tt.x, tt.y, tt.rotation)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("%s: SectionToWorld = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestPlaceStraight(t *testing.T) {
	placements := PlaceStraight(4, 18, 25)
	if len(placements) != 4 {
		t.Fatalf("placed %d seats, want 4", len(placements))
	}

	// Seats are centered on the row midpoint at fixed spacing.
	wantX := []float64{-36, -18, 0, 18}
	for i, p := range placements {
		if math.Abs(p.X-wantX[i]) > 1e-9 {
			t.Errorf("seat %d X = %f, want %f", i, p.X, wantX[i])
		}
		if p.Y != 25 {
			t.Errorf("seat %d Y = %f, want 25", i, p.Y)
		}
	}

	if PlaceStraight(0, 18, 0) != nil {
		t.Errorf("expected no placements for empty row")
	}
}
