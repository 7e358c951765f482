package layouts

import (
	"github.com/google/uuid"

	"seatwise/internal/geometry"
)

// Designer defaults. New sections get a straight 10x20 grid; curved rows
// derive their radius from the row index so successive rows nest outward.
const (
	DefaultRows        = 10
	DefaultSeatsPerRow = 20

	RowSpacing  = 25.0
	SeatSpacing = 18.0

	BaseRadius      = 120.0
	RadiusIncrement = 30.0
	DefaultArcSpan  = 70.0

	sectionStride = 400.0
	sectionBaseX  = 100.0
	sectionBaseY  = 220.0
)

// NewSeatingChart creates an empty seating-chart layout with a default stage
// and view box. Sections are added through the designer operations.
func NewSeatingChart(venueID uuid.UUID, name string) *Layout {
	return &Layout{
		ID:      uuid.New(),
		VenueID: venueID,
		Name:    name,
		Type:    LayoutTypeSeatingChart,
		Stage:   &Stage{X: 400, Y: 40, Width: 400, Height: 80, Label: "STAGE", Type: "stage"},
		ViewBox: ViewBox{Width: 1200, Height: 800},
	}
}

// Clone deep-copies the layout document. Every designer operation works on a
// clone and returns it, so callers always hold immutable snapshots.
func (l *Layout) Clone() *Layout {
	out := *l

	out.Sections = make([]Section, len(l.Sections))
	for i := range l.Sections {
		out.Sections[i] = cloneSection(l.Sections[i])
	}
	if l.Stage != nil {
		stage := *l.Stage
		out.Stage = &stage
	}
	out.Aisles = append([]Aisle(nil), l.Aisles...)
	out.PriceCategories = append([]PriceCategory(nil), l.PriceCategories...)
	out.GALevels = append([]GALevel(nil), l.GALevels...)
	return &out
}

func cloneSection(s Section) Section {
	out := s
	out.Rows = make([]Row, len(s.Rows))
	for i := range s.Rows {
		out.Rows[i] = cloneRow(s.Rows[i])
	}
	return out
}

func cloneRow(r Row) Row {
	out := r
	out.Seats = append([]Seat(nil), r.Seats...)
	if r.Curve != nil {
		curve := *r.Curve
		out.Curve = &curve
	}
	return out
}

// recomputeCapacity re-derives the capacity invariant: capacity always equals
// the sum of seat counts over all rows of all sections.
func (l *Layout) recomputeCapacity() {
	l.Capacity = l.SeatCount()
}

// AddSection appends a section with the default straight grid. Each new
// section is offset horizontally by a fixed stride so sections do not overlap
// when created in succession.
func (l *Layout) AddSection(name string) *Layout {
	out := l.Clone()

	index := len(out.Sections)
	section := Section{
		ID:      uuid.NewString(),
		Name:    name,
		X:       sectionBaseX + float64(index)*sectionStride,
		Y:       sectionBaseY,
		Pricing: PricingStandard,
		Color:   PricingStandard.DefaultColor(),
	}
	section.Rows = make([]Row, DefaultRows)
	for i := range section.Rows {
		section.Rows[i] = buildRow(section.ID, i, i, DefaultSeatsPerRow)
	}

	out.Sections = append(out.Sections, section)
	out.recomputeCapacity()
	return out
}

// buildRow creates a row at position rowIndex with seatCount seats on the
// straight grid. Seat ids embed idIndex, the row's creation index, which is
// fixed for the life of the row even as its position shifts.
func buildRow(sectionID string, rowIndex, idIndex, seatCount int) Row {
	row := Row{
		ID:    uuid.NewString(),
		Label: RowLabel(rowIndex),
		Y:     float64(rowIndex) * RowSpacing,
	}
	row.Seats = make([]Seat, seatCount)
	for i, p := range geometry.PlaceStraight(seatCount, SeatSpacing, row.Y) {
		row.Seats[i] = Seat{
			ID:        SeatID(sectionID, idIndex, i),
			SectionID: sectionID,
			Row:       row.Label,
			Number:    i + 1,
			X:         p.X,
			Y:         p.Y,
			Status:    SeatAvailable,
			Type:      SeatRegular,
		}
	}
	return row
}

// RemoveSection deletes the section and its seats. Unknown ids are a no-op.
func (l *Layout) RemoveSection(id string) *Layout {
	out := l.Clone()
	for i := range out.Sections {
		if out.Sections[i].ID == id {
			out.Sections = append(out.Sections[:i], out.Sections[i+1:]...)
			out.recomputeCapacity()
			break
		}
	}
	return out
}

// AddRow appends a row to the section. The new row inherits the seat count of
// the previous row (or the default if the section has none) and, when the
// section is curved, a curve one radius increment beyond the previous row.
// Capacity grows by the number of seats actually appended.
func (l *Layout) AddRow(sectionID string) *Layout {
	out := l.Clone()
	section := out.Section(sectionID)
	if section == nil {
		return out
	}

	index := len(section.Rows)
	seatCount := DefaultSeatsPerRow
	if index > 0 {
		seatCount = len(section.Rows[index-1].Seats)
	}

	row := buildRow(sectionID, index, nextRowIndex(section), seatCount)
	if section.Curved {
		row.Curve = curveForRow(section, index)
	}
	section.Rows = append(section.Rows, row)

	out.recomputeCapacity()
	return out
}

// nextRowIndex returns a seat-id row index no surviving seat in the section
// carries. Row positions are reused after a removal but creation indexes are
// not, so seat ids stay unique across remove-then-add sequences.
func nextRowIndex(section *Section) int {
	next := len(section.Rows)
	for i := range section.Rows {
		for j := range section.Rows[i].Seats {
			if r, _, ok := splitSeatID(section.Rows[i].Seats[j].ID); ok && r >= next {
				next = r + 1
			}
		}
	}
	return next
}

// curveForRow derives row index's curve: radius follows the base/increment
// ladder, the angular span is inherited from the section's existing rows.
func curveForRow(section *Section, index int) *geometry.Curve {
	start, end := -DefaultArcSpan/2, DefaultArcSpan/2
	for i := range section.Rows {
		if c := section.Rows[i].Curve; c != nil {
			start, end = c.StartAngle, c.EndAngle
			break
		}
	}
	return &geometry.Curve{
		Radius:     BaseRadius + float64(index)*RadiusIncrement,
		StartAngle: start,
		EndAngle:   end,
	}
}

// RemoveRow deletes the row at rowIndex and restores the section invariants:
// remaining rows are relabeled A... in order, re-stacked at the fixed row
// spacing, curved radii recomputed per index, and every seat's row/y fields
// re-synced. Removing a section's only row is rejected.
func (l *Layout) RemoveRow(sectionID string, rowIndex int) (*Layout, error) {
	out := l.Clone()
	section := out.Section(sectionID)
	if section == nil || rowIndex < 0 || rowIndex >= len(section.Rows) {
		return out, nil
	}
	if len(section.Rows) == 1 {
		return nil, ErrLastRow
	}

	section.Rows = append(section.Rows[:rowIndex], section.Rows[rowIndex+1:]...)
	for i := range section.Rows {
		row := &section.Rows[i]
		row.Label = RowLabel(i)
		row.Y = float64(i) * RowSpacing
		if row.Curve != nil {
			row.Curve.Radius = BaseRadius + float64(i)*RadiusIncrement
		}
		for j := range row.Seats {
			row.Seats[j].Row = row.Label
			row.Seats[j].Y = row.Y
		}
	}

	out.recomputeCapacity()
	return out, nil
}

// AddSeatToRow appends one seat at the row's trailing edge, one seat spacing
// beyond the previous last seat. The new seat id reuses the row's creation
// index from its existing seat ids, not the row's current position, so it
// cannot collide with a seat of another surviving row.
func (l *Layout) AddSeatToRow(sectionID string, rowIndex int) *Layout {
	out := l.Clone()
	section := out.Section(sectionID)
	if section == nil || rowIndex < 0 || rowIndex >= len(section.Rows) {
		return out
	}

	row := &section.Rows[rowIndex]
	x := 0.0
	if n := len(row.Seats); n > 0 {
		x = row.Seats[n-1].X + SeatSpacing
	}
	idRow, idSeat := nextRowIndex(section), len(row.Seats)
	for j := range row.Seats {
		r, s, ok := splitSeatID(row.Seats[j].ID)
		if !ok {
			continue
		}
		idRow = r
		if s >= idSeat {
			idSeat = s + 1
		}
	}
	row.Seats = append(row.Seats, Seat{
		ID:        SeatID(sectionID, idRow, idSeat),
		SectionID: sectionID,
		Row:       row.Label,
		Number:    len(row.Seats) + 1,
		X:         x,
		Y:         row.Y,
		Status:    SeatAvailable,
		Type:      SeatRegular,
	})

	out.recomputeCapacity()
	return out
}

// RemoveSeatFromRow pops the row's last seat. Empty rows are a no-op.
func (l *Layout) RemoveSeatFromRow(sectionID string, rowIndex int) *Layout {
	out := l.Clone()
	section := out.Section(sectionID)
	if section == nil || rowIndex < 0 || rowIndex >= len(section.Rows) {
		return out
	}

	row := &section.Rows[rowIndex]
	if len(row.Seats) == 0 {
		return out
	}
	row.Seats = row.Seats[:len(row.Seats)-1]

	out.recomputeCapacity()
	return out
}

// ToggleCurved switches the section between straight and arena-style curved
// rows. Turning the curve on attaches a curve descriptor to every row on the
// base-radius/increment ladder with the default symmetric arc; turning it off
// strips the descriptors. Seat lists and all other attributes are untouched
// either way, so toggling round-trips cleanly.
func (l *Layout) ToggleCurved(sectionID string) *Layout {
	out := l.Clone()
	section := out.Section(sectionID)
	if section == nil {
		return out
	}

	section.Curved = !section.Curved
	for i := range section.Rows {
		if section.Curved {
			section.Rows[i].Curve = &geometry.Curve{
				Radius:     BaseRadius + float64(i)*RadiusIncrement,
				StartAngle: -DefaultArcSpan / 2,
				EndAngle:   DefaultArcSpan / 2,
			}
		} else {
			section.Rows[i].Curve = nil
		}
	}
	return out
}

// ChangePricing retags the section's pricing tier. Seats, capacity and the
// section color are unaffected.
func (l *Layout) ChangePricing(sectionID string, tier PricingTier) *Layout {
	out := l.Clone()
	if section := out.Section(sectionID); section != nil && tier.IsValid() {
		section.Pricing = tier
	}
	return out
}

// ChangeColor sets the section's display color.
func (l *Layout) ChangeColor(sectionID, color string) *Layout {
	out := l.Clone()
	if section := out.Section(sectionID); section != nil {
		section.Color = color
	}
	return out
}

// RotateSection adds the delta to the section's rigid-body rotation, modulo
// 360.
func (l *Layout) RotateSection(sectionID string, deltaDeg float64) *Layout {
	out := l.Clone()
	if section := out.Section(sectionID); section != nil {
		section.Rotation = geometry.NormalizeDegrees(section.Rotation + deltaDeg)
	}
	return out
}

// MoveSection places the section origin at the given layout coordinates.
func (l *Layout) MoveSection(sectionID string, x, y float64) *Layout {
	out := l.Clone()
	if section := out.Section(sectionID); section != nil {
		section.X = x
		section.Y = y
	}
	return out
}

// MoveStage places the stage at the given layout coordinates.
func (l *Layout) MoveStage(x, y float64) *Layout {
	out := l.Clone()
	if out.Stage != nil {
		out.Stage.X = x
		out.Stage.Y = y
	}
	return out
}
