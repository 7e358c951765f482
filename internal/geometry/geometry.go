package geometry

import "math"

// Point is a position in layout coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Placement is a computed seat position in section-local coordinates.
// Rotation is in degrees; 0 means the seat faces straight down the Y axis.
type Placement struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// PlaceStraight computes positions for a straight row of seatCount seats
// centered on the row's midpoint: seat i sits at (i - seatCount/2) * spacing.
func PlaceStraight(seatCount int, spacing, rowY float64) []Placement {
	if seatCount <= 0 {
		return nil
	}

	placements := make([]Placement, seatCount)
	half := float64(seatCount) / 2
	for i := 0; i < seatCount; i++ {
		placements[i] = Placement{
			X: (float64(i) - half) * spacing,
			Y: rowY,
		}
	}
	return placements
}

// SectionToWorld transforms a section-local point into layout coordinates by
// rotating it rigidly around the section origin and translating to the
// section position.
func SectionToWorld(local Point, sectionX, sectionY, rotationDeg float64) Point {
	rad := rotationDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Point{
		X: sectionX + local.X*cos - local.Y*sin,
		Y: sectionY + local.X*sin + local.Y*cos,
	}
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
