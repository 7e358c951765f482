package importer

import (
	"seatwise/internal/geometry"
	"seatwise/internal/layouts"

	"github.com/google/uuid"
)

// BuildSections converts detected sections into layout sections with the
// same identity scheme the designer uses: fresh section ids, alphabetic row
// labels, deterministic seat ids derived from row/seat indexes, seats on the
// standard grid. Imported geometry (position, rotation, curvature) is kept.
func BuildSections(detected []DetectedSection) []layouts.Section {
	sections := make([]layouts.Section, len(detected))
	for i, d := range detected {
		sections[i] = buildSection(d)
	}
	return sections
}

func buildSection(d DetectedSection) layouts.Section {
	tier := layouts.PricingTier(d.Pricing)
	if !tier.IsValid() {
		tier = layouts.PricingStandard
	}

	section := layouts.Section{
		ID:       uuid.NewString(),
		Name:     d.Name,
		X:        d.X,
		Y:        d.Y,
		Rotation: geometry.NormalizeDegrees(d.Rotation),
		Pricing:  tier,
		Color:    tier.DefaultColor(),
		Curved:   d.Curved,
	}

	section.Rows = make([]layouts.Row, d.Rows)
	for r := 0; r < d.Rows; r++ {
		row := layouts.Row{
			ID:    uuid.NewString(),
			Label: layouts.RowLabel(r),
			Y:     float64(r) * layouts.RowSpacing,
		}
		if d.Curved {
			row.Curve = &geometry.Curve{
				Radius:     layouts.BaseRadius + float64(r)*layouts.RadiusIncrement,
				StartAngle: -layouts.DefaultArcSpan / 2,
				EndAngle:   layouts.DefaultArcSpan / 2,
			}
		}

		row.Seats = make([]layouts.Seat, d.SeatsPerRow)
		for s, p := range geometry.PlaceStraight(d.SeatsPerRow, layouts.SeatSpacing, row.Y) {
			row.Seats[s] = layouts.Seat{
				ID:        layouts.SeatID(section.ID, r, s),
				SectionID: section.ID,
				Row:       row.Label,
				Number:    s + 1,
				X:         p.X,
				Y:         p.Y,
				Status:    layouts.SeatAvailable,
				Type:      layouts.SeatRegular,
			}
		}
		section.Rows[r] = row
	}
	return section
}

// buildStage converts a detected stage, falling back to the default when the
// detection carries no usable dimensions.
func buildStage(d *DetectedStage) *layouts.Stage {
	if d == nil || d.Width <= 0 || d.Height <= 0 {
		return &layouts.Stage{X: 400, Y: 40, Width: 400, Height: 80, Label: "STAGE", Type: "stage"}
	}
	return &layouts.Stage{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height, Label: "STAGE", Type: "stage"}
}
