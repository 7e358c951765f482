package geometry

import "math"

// Curve describes a curved row as an arc of a circle centered on the section
// origin. Angles are in degrees; StartAngle/EndAngle are the nominal span the
// designer assigned to the row.
type Curve struct {
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

// ArcLength returns the length of the nominal arc.
func (c Curve) ArcLength() float64 {
	return (c.EndAngle - c.StartAngle) * math.Pi * c.Radius / 180
}

// MaxSeats returns how many seats fit on the arc at the given spacing.
func (c Curve) MaxSeats(spacing float64) int {
	if spacing <= 0 || c.Radius <= 0 {
		return 0
	}
	return int(math.Floor(c.ArcLength() / spacing))
}

// PlaceCurved computes positions along the arc for up to seatCount seats.
//
// The row's logical seat list may hold more seats than fit geometrically; only
// the fitting prefix is placed and the rest are simply not rendered. The
// angular span actually used is re-derived from the seat spacing so placed
// seats are always exactly `spacing` apart and symmetric about angle 0,
// whatever the nominal start/end angles say. Each seat is rotated by its
// angle + 90 degrees so it faces the arc's center.
func PlaceCurved(c Curve, seatCount int, spacing float64) []Placement {
	n := seatCount
	if max := c.MaxSeats(spacing); n > max {
		n = max
	}
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Placement{{X: c.Radius, Y: 0, Rotation: 90}}
	}

	actualRange := spacing * float64(n-1) * 180 / (math.Pi * c.Radius)
	start := -actualRange / 2
	step := actualRange / float64(n-1)

	placements := make([]Placement, n)
	for i := 0; i < n; i++ {
		angle := start + float64(i)*step
		rad := angle * math.Pi / 180
		placements[i] = Placement{
			X:        c.Radius * math.Cos(rad),
			Y:        c.Radius * math.Sin(rad),
			Rotation: angle + 90,
		}
	}
	return placements
}
