package geometry

import (
	"math"
	"testing"
)

func TestMaxSeats(t *testing.T) {
	tests := []struct {
		name    string
		curve   Curve
		spacing float64
		want    int
	}{
		{
			name:    "arena front row",
			curve:   Curve{Radius: 150, StartAngle: -35, EndAngle: 35},
			spacing: 18,
			want:    int(math.Floor(70 * math.Pi * 150 / 180 / 18)),
		},
		{
			name:    "tight arc fits nothing",
			curve:   Curve{Radius: 10, StartAngle: -5, EndAngle: 5},
			spacing: 18,
			want:    0,
		},
		{
			name:    "zero radius",
			curve:   Curve{Radius: 0, StartAngle: -35, EndAngle: 35},
			spacing: 18,
			want:    0,
		},
		{
			name:    "zero spacing",
			curve:   Curve{Radius: 150, StartAngle: -35, EndAngle: 35},
			spacing: 0,
			want:    0,
		},
	}

	for _, tt := range tests {
		if got := tt.curve.MaxSeats(tt.spacing); got != tt.want {
			t.Errorf("%s: MaxSeats = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestPlaceCurvedBounds(t *testing.T) {
	curve := Curve{Radius: 150, StartAngle: -35, EndAngle: 35}
	maxSeats := curve.MaxSeats(18)

	// The logical seat list is longer than the arc can hold; only the
	// fitting prefix is placed.
	placements := PlaceCurved(curve, maxSeats+15, 18)
	if len(placements) != maxSeats {
		t.Fatalf("placed %d seats, want %d", len(placements), maxSeats)
	}

	// A shorter list is placed in full.
	placements = PlaceCurved(curve, 4, 18)
	if len(placements) != 4 {
		t.Fatalf("placed %d seats, want 4", len(placements))
	}
}

func TestPlaceCurvedSymmetry(t *testing.T) {
	curve := Curve{Radius: 150, StartAngle: -35, EndAngle: 35}
	placements := PlaceCurved(curve, 8, 18)
	if len(placements) != 8 {
		t.Fatalf("placed %d seats, want 8", len(placements))
	}

	// The used span is re-centered on angle 0 regardless of the nominal
	// start/end, so the row is mirror-symmetric about the X axis.
	n := len(placements)
	for i := 0; i < n/2; i++ {
		a, b := placements[i], placements[n-1-i]
		if math.Abs(a.X-b.X) > 1e-9 {
			t.Errorf("seat %d/%d X not symmetric: %f vs %f", i, n-1-i, a.X, b.X)
		}
		if math.Abs(a.Y+b.Y) > 1e-9 {
			t.Errorf("seat %d/%d Y not symmetric: %f vs %f", i, n-1-i, a.Y, b.Y)
		}
	}
}

func TestPlaceCurvedExactSpacing(t *testing.T) {
	curve := Curve{Radius: 150, StartAngle: -35, EndAngle: 35}
	placements := PlaceCurved(curve, 8, 18)

	// Consecutive seats are exactly one spacing apart along the arc.
	for i := 1; i < len(placements); i++ {
		prev := math.Atan2(placements[i-1].Y, placements[i-1].X)
		cur := math.Atan2(placements[i].Y, placements[i].X)
		arc := (cur - prev) * curve.Radius
		if math.Abs(arc-18) > 1e-9 {
			t.Errorf("arc distance between seats %d and %d = %f, want 18", i-1, i, arc)
		}
	}

	// Every seat sits on the circle.
	for i, p := range placements {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-curve.Radius) > 1e-9 {
			t.Errorf("seat %d radius = %f, want %f", i, r, curve.Radius)
		}
	}
}

func TestPlaceCurvedFacesCenter(t *testing.T) {
	curve := Curve{Radius: 120, StartAngle: -35, EndAngle: 35}
	for i, p := range PlaceCurved(curve, 5, 18) {
		angle := math.Atan2(p.Y, p.X) * 180 / math.Pi
		if math.Abs(p.Rotation-(angle+90)) > 1e-9 {
			t.Errorf("seat %d rotation = %f, want %f", i, p.Rotation, angle+90)
		}
	}
}

func TestPlaceCurvedSingleSeat(t *testing.T) {
	curve := Curve{Radius: 120, StartAngle: -35, EndAngle: 35}
	placements := PlaceCurved(curve, 1, 18)
	if len(placements) != 1 {
		t.Fatalf("placed %d seats, want 1", len(placements))
	}
	if placements[0].X != 120 || placements[0].Y != 0 {
		t.Errorf("single seat at (%f, %f), want (120, 0)", placements[0].X, placements[0].Y)
	}
}
