package layouts

import (
	"seatwise/internal/geometry"

	"github.com/google/uuid"
)

// RenderedSeat is one seat projected into layout (world) coordinates, with
// event availability already merged over the seat's stored default status.
type RenderedSeat struct {
	ID        string      `json:"id"`
	SectionID string      `json:"section_id"`
	Row       string      `json:"row"`
	Number    int         `json:"number"`
	X         float64     `json:"x"`
	Y         float64     `json:"y"`
	Rotation  float64     `json:"rotation"`
	Status    SeatStatus  `json:"status"`
	Type      SeatType    `json:"type"`
	Pricing   PricingTier `json:"pricing"`
	Color     string      `json:"color"`
}

// RenderedSection groups the rendered seats of one section.
type RenderedSection struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Pricing PricingTier    `json:"pricing"`
	Color   string         `json:"color"`
	Curved  bool           `json:"curved"`
	Seats   []RenderedSeat `json:"seats"`
}

// RenderedLayout is the read model served to preview clients. SeatCount is
// the number of seats actually rendered, which can be lower than the layout
// capacity when curved rows hold more seats than fit their arcs.
type RenderedLayout struct {
	LayoutID  uuid.UUID         `json:"layout_id"`
	Type      LayoutType        `json:"type"`
	Capacity  int               `json:"capacity"`
	SeatCount int               `json:"seat_count"`
	Sections  []RenderedSection `json:"sections"`
	Stage     *Stage            `json:"stage,omitempty"`
	Aisles    []Aisle           `json:"aisles,omitempty"`
	ViewBox   ViewBox           `json:"view_box"`
	GALevels  []GALevel         `json:"ga_levels,omitempty"`
}

// Render projects the layout into world coordinates. statuses is the
// availability overlay for the event being previewed, keyed by seat id; a
// seat absent from the overlay keeps its stored default status. Pass nil for
// a bare structural render.
//
// Straight rows use the seat's stored grid position. Curved rows are placed
// along their arc at the fixed seat spacing; seats beyond what the arc can
// hold are not rendered. Section position and rotation are applied as a
// rigid-body transform on top of either placement.
func Render(l *Layout, statuses map[string]SeatStatus) *RenderedLayout {
	out := &RenderedLayout{
		LayoutID: l.ID,
		Type:     l.Type,
		Capacity: l.Capacity,
		Stage:    l.Stage,
		Aisles:   l.Aisles,
		ViewBox:  l.ViewBox,
		GALevels: l.GALevels,
	}

	out.Sections = make([]RenderedSection, len(l.Sections))
	for i := range l.Sections {
		out.Sections[i] = renderSection(&l.Sections[i], statuses)
		out.SeatCount += len(out.Sections[i].Seats)
	}
	return out
}

func renderSection(s *Section, statuses map[string]SeatStatus) RenderedSection {
	out := RenderedSection{
		ID:      s.ID,
		Name:    s.Name,
		Pricing: s.Pricing,
		Color:   s.Color,
		Curved:  s.Curved,
		Seats:   make([]RenderedSeat, 0, s.SeatCount()),
	}

	for i := range s.Rows {
		row := &s.Rows[i]
		if s.Curved && row.Curve != nil {
			placements := geometry.PlaceCurved(*row.Curve, len(row.Seats), SeatSpacing)
			for j, p := range placements {
				out.Seats = append(out.Seats, renderSeat(s, &row.Seats[j], p, statuses))
			}
			continue
		}
		for j := range row.Seats {
			seat := &row.Seats[j]
			p := geometry.Placement{X: seat.X, Y: seat.Y}
			out.Seats = append(out.Seats, renderSeat(s, seat, p, statuses))
		}
	}
	return out
}

func renderSeat(s *Section, seat *Seat, p geometry.Placement, statuses map[string]SeatStatus) RenderedSeat {
	world := geometry.SectionToWorld(geometry.Point{X: p.X, Y: p.Y}, s.X, s.Y, s.Rotation)

	status := seat.Status
	if statuses != nil {
		if overlay, ok := statuses[seat.ID]; ok {
			status = overlay
		}
	}

	return RenderedSeat{
		ID:        seat.ID,
		SectionID: seat.SectionID,
		Row:       seat.Row,
		Number:    seat.Number,
		X:         world.X,
		Y:         world.Y,
		Rotation:  geometry.NormalizeDegrees(p.Rotation + s.Rotation),
		Status:    status,
		Type:      seat.Type,
		Pricing:   s.Pricing,
		Color:     s.Color,
	}
}
