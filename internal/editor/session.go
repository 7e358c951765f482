package editor

import (
	"seatwise/internal/geometry"
	"seatwise/internal/layouts"
)

// Session is one designer editing session over a seating-chart layout. It
// owns the transient editing state (viewport, drag mode, label offsets, seat
// selection) that is never persisted with the document. All coordinates are
// layout (world) coordinates; the client converts from screen space using the
// session viewport.
type Session struct {
	layout   *layouts.Layout
	viewport geometry.Viewport
	state    state

	// labelOffsets holds per-section label displacements, keyed by section id.
	labelOffsets map[string]geometry.Point

	// selectedSeats is the preview selection, keyed by seat id.
	selectedSeats map[string]bool

	dirty bool
}

// NewSession opens an editing session. General-admission layouts have no
// seat designer; opening one is rejected.
func NewSession(layout *layouts.Layout) (*Session, error) {
	if !layout.IsSeatingChart() {
		return nil, layouts.ErrNotSeatingChart
	}
	return &Session{
		layout:        layout.Clone(),
		viewport:      geometry.NewViewport(),
		state:         idle{},
		labelOffsets:  make(map[string]geometry.Point),
		selectedSeats: make(map[string]bool),
	}, nil
}

// Layout returns the session's current document snapshot.
func (s *Session) Layout() *layouts.Layout {
	return s.layout
}

// Viewport returns the session's current pan/zoom.
func (s *Session) Viewport() geometry.Viewport {
	return s.viewport
}

// Mode returns the current interaction mode name.
func (s *Session) Mode() string {
	return modeName(s.state)
}

// Dirty reports whether the document changed since the session was opened or
// last marked saved.
func (s *Session) Dirty() bool {
	return s.dirty
}

// MarkSaved clears the dirty flag after the document has been persisted.
func (s *Session) MarkSaved() {
	s.dirty = false
}

//  POINTER EVENTS

// PointerDownSection starts dragging a section. A pointer-down while another
// drag or pan is active is ignored.
func (s *Session) PointerDownSection(sectionID string, at geometry.Point) {
	if _, ok := s.state.(idle); !ok {
		return
	}
	section := s.layout.Section(sectionID)
	if section == nil {
		return
	}
	s.state = draggingSection{
		sectionID: sectionID,
		grab:      geometry.Point{X: at.X - section.X, Y: at.Y - section.Y},
	}
}

// PointerDownLabel starts dragging a section label.
func (s *Session) PointerDownLabel(sectionID string, at geometry.Point) {
	if _, ok := s.state.(idle); !ok {
		return
	}
	if s.layout.Section(sectionID) == nil {
		return
	}
	offset := s.labelOffsets[sectionID]
	s.state = draggingLabel{
		sectionID: sectionID,
		grab:      geometry.Point{X: at.X - offset.X, Y: at.Y - offset.Y},
	}
}

// PointerDownCanvas starts panning the viewport.
func (s *Session) PointerDownCanvas(at geometry.Point) {
	if _, ok := s.state.(idle); !ok {
		return
	}
	s.state = panning{start: at, originPan: s.viewport.Pan}
}

// PointerMove advances whichever drag or pan is active. In the idle state it
// is a no-op.
func (s *Session) PointerMove(at geometry.Point) {
	switch st := s.state.(type) {
	case draggingSection:
		s.layout = s.layout.MoveSection(st.sectionID, at.X-st.grab.X, at.Y-st.grab.Y)
		s.dirty = true
	case draggingLabel:
		s.labelOffsets[st.sectionID] = geometry.Point{X: at.X - st.grab.X, Y: at.Y - st.grab.Y}
	case panning:
		s.viewport = s.viewport.WithPan(geometry.Point{
			X: st.originPan.X + (at.X - st.start.X),
			Y: st.originPan.Y + (at.Y - st.start.Y),
		})
	}
}

// PointerUp ends the active drag or pan and returns to idle.
func (s *Session) PointerUp() {
	s.state = idle{}
}

//  VIEWPORT

func (s *Session) ZoomIn() {
	s.viewport = s.viewport.ZoomIn()
}

func (s *Session) ZoomOut() {
	s.viewport = s.viewport.ZoomOut()
}

//  SELECTION

// ToggleSeat flips a seat in and out of the preview selection.
func (s *Session) ToggleSeat(seatID string) {
	if s.selectedSeats[seatID] {
		delete(s.selectedSeats, seatID)
		return
	}
	s.selectedSeats[seatID] = true
}

// ClearSelection drops the preview selection, e.g. when the previewed event
// changes.
func (s *Session) ClearSelection() {
	s.selectedSeats = make(map[string]bool)
}

// SelectedSeats returns the selected seat ids.
func (s *Session) SelectedSeats() []string {
	ids := make([]string, 0, len(s.selectedSeats))
	for id := range s.selectedSeats {
		ids = append(ids, id)
	}
	return ids
}

// LabelOffset returns the cosmetic label displacement for a section.
func (s *Session) LabelOffset(sectionID string) geometry.Point {
	return s.labelOffsets[sectionID]
}

// Apply runs a designer operation against the session document and keeps the
// result as the new snapshot. Transient state keyed by ids the operation
// removed, selected seats and section label offsets, is dropped with it.
func (s *Session) Apply(op func(*layouts.Layout) (*layouts.Layout, error)) error {
	updated, err := op(s.layout)
	if err != nil {
		return err
	}
	s.layout = updated
	s.pruneStale()
	s.dirty = true
	return nil
}

// pruneStale drops selection entries and label offsets that no longer resolve
// against the current document.
func (s *Session) pruneStale() {
	for id := range s.labelOffsets {
		if s.layout.Section(id) == nil {
			delete(s.labelOffsets, id)
		}
	}
	if len(s.selectedSeats) == 0 {
		return
	}
	kept := make(map[string]bool, len(s.selectedSeats))
	for _, section := range s.layout.Sections {
		for _, row := range section.Rows {
			for _, seat := range row.Seats {
				if s.selectedSeats[seat.ID] {
					kept[seat.ID] = true
				}
			}
		}
	}
	s.selectedSeats = kept
}
