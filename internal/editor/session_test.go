package editor

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"

	"seatwise/internal/geometry"
	"seatwise/internal/layouts"
)

func newTestSession(t *testing.T) (*Session, string) {
	t.Helper()
	layout := layouts.NewSeatingChart(uuid.New(), "Main Hall").AddSection("Orchestra")
	session, err := NewSession(layout)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return session, layout.Sections[0].ID
}

func TestNewSessionRejectsGeneralAdmission(t *testing.T) {
	ga := &layouts.Layout{
		ID:   uuid.New(),
		Type: layouts.LayoutTypeGeneralAdmission,
	}
	if _, err := NewSession(ga); !errors.Is(err, layouts.ErrNotSeatingChart) {
		t.Fatalf("err = %v, want ErrNotSeatingChart", err)
	}
}

func TestSectionDrag(t *testing.T) {
	session, sectionID := newTestSession(t)
	origin := session.Layout().Section(sectionID)
	startX, startY := origin.X, origin.Y

	// Grab the section 10 units right of its origin and drag.
	session.PointerDownSection(sectionID, geometry.Point{X: startX + 10, Y: startY + 5})
	if session.Mode() != ModeDraggingSection {
		t.Fatalf("mode = %q, want %q", session.Mode(), ModeDraggingSection)
	}

	session.PointerMove(geometry.Point{X: startX + 110, Y: startY + 55})
	moved := session.Layout().Section(sectionID)
	if moved.X != startX+100 || moved.Y != startY+50 {
		t.Errorf("section at (%f, %f), want (%f, %f)", moved.X, moved.Y, startX+100, startY+50)
	}
	if !session.Dirty() {
		t.Error("section drag did not mark the session dirty")
	}

	session.PointerUp()
	if session.Mode() != ModeIdle {
		t.Errorf("mode after pointer-up = %q, want idle", session.Mode())
	}

	// Further moves in idle change nothing.
	session.PointerMove(geometry.Point{X: 999, Y: 999})
	after := session.Layout().Section(sectionID)
	if after.X != moved.X || after.Y != moved.Y {
		t.Error("pointer move in idle state moved the section")
	}
}

func TestLabelDragDoesNotTouchLayout(t *testing.T) {
	session, sectionID := newTestSession(t)
	before := *session.Layout().Section(sectionID)

	session.PointerDownLabel(sectionID, geometry.Point{X: 0, Y: 0})
	session.PointerMove(geometry.Point{X: 30, Y: -10})
	session.PointerUp()

	if offset := session.LabelOffset(sectionID); offset.X != 30 || offset.Y != -10 {
		t.Errorf("label offset = %+v, want (30, -10)", offset)
	}
	after := session.Layout().Section(sectionID)
	if after.X != before.X || after.Y != before.Y {
		t.Error("label drag moved the section")
	}
	if session.Dirty() {
		t.Error("label drag marked the document dirty")
	}
}

func TestCanvasPan(t *testing.T) {
	session, _ := newTestSession(t)

	session.PointerDownCanvas(geometry.Point{X: 100, Y: 100})
	session.PointerMove(geometry.Point{X: 140, Y: 75})
	session.PointerUp()

	pan := session.Viewport().Pan
	if pan.X != 40 || pan.Y != -25 {
		t.Errorf("pan = %+v, want (40, -25)", pan)
	}
}

func TestDragIgnoresConcurrentPointerDown(t *testing.T) {
	session, sectionID := newTestSession(t)

	session.PointerDownSection(sectionID, geometry.Point{})
	session.PointerDownCanvas(geometry.Point{X: 5, Y: 5})
	if session.Mode() != ModeDraggingSection {
		t.Errorf("mode = %q, pointer-down during a drag should be ignored", session.Mode())
	}
}

func TestPointerDownUnknownSectionStaysIdle(t *testing.T) {
	session, _ := newTestSession(t)

	session.PointerDownSection("missing", geometry.Point{})
	if session.Mode() != ModeIdle {
		t.Errorf("mode = %q, want idle for unknown section", session.Mode())
	}
}

func TestSeatSelection(t *testing.T) {
	session, sectionID := newTestSession(t)
	seatA := layouts.SeatID(sectionID, 0, 0)
	seatB := layouts.SeatID(sectionID, 0, 1)

	session.ToggleSeat(seatA)
	session.ToggleSeat(seatB)
	session.ToggleSeat(seatA) // deselect

	got := session.SelectedSeats()
	sort.Strings(got)
	if len(got) != 1 || got[0] != seatB {
		t.Errorf("selected seats = %v, want [%s]", got, seatB)
	}

	session.ClearSelection()
	if len(session.SelectedSeats()) != 0 {
		t.Error("clear selection left seats selected")
	}
}

func TestApplyKeepsSnapshot(t *testing.T) {
	session, sectionID := newTestSession(t)
	before := session.Layout().Capacity

	err := session.Apply(func(l *layouts.Layout) (*layouts.Layout, error) {
		return l.AddRow(sectionID), nil
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if session.Layout().Capacity != before+layouts.DefaultSeatsPerRow {
		t.Errorf("capacity = %d, want %d", session.Layout().Capacity, before+layouts.DefaultSeatsPerRow)
	}
	if !session.Dirty() {
		t.Error("Apply did not mark the session dirty")
	}

	session.MarkSaved()
	if session.Dirty() {
		t.Error("MarkSaved left the session dirty")
	}
}

func TestApplyPrunesStaleSelectionState(t *testing.T) {
	session, sectionID := newTestSession(t)

	// Select a seat in the first section and displace its label.
	session.ToggleSeat(layouts.SeatID(sectionID, 0, 0))
	session.PointerDownLabel(sectionID, geometry.Point{})
	session.PointerMove(geometry.Point{X: 12, Y: 4})
	session.PointerUp()

	err := session.Apply(func(l *layouts.Layout) (*layouts.Layout, error) {
		return l.AddSection("Balcony"), nil
	})
	if err != nil {
		t.Fatalf("Apply add section: %v", err)
	}
	otherID := session.Layout().Sections[1].ID
	otherSeat := layouts.SeatID(otherID, 0, 0)
	session.ToggleSeat(otherSeat)

	// Removing the first section drops its selected seat and label offset;
	// the other section's selection survives.
	err = session.Apply(func(l *layouts.Layout) (*layouts.Layout, error) {
		return l.RemoveSection(sectionID), nil
	})
	if err != nil {
		t.Fatalf("Apply remove section: %v", err)
	}
	got := session.SelectedSeats()
	if len(got) != 1 || got[0] != otherSeat {
		t.Errorf("selected seats = %v, want [%s]", got, otherSeat)
	}
	if offset := session.LabelOffset(sectionID); offset.X != 0 || offset.Y != 0 {
		t.Errorf("removed section kept label offset %+v", offset)
	}

	// Removing the row the surviving selection points at clears it too.
	err = session.Apply(func(l *layouts.Layout) (*layouts.Layout, error) {
		return l.RemoveRow(otherID, 0)
	})
	if err != nil {
		t.Fatalf("Apply remove row: %v", err)
	}
	if got := session.SelectedSeats(); len(got) != 0 {
		t.Errorf("selected seats = %v, want none after the row was removed", got)
	}
}

func TestApplyErrorLeavesSnapshot(t *testing.T) {
	session, sectionID := newTestSession(t)
	capacity := session.Layout().Capacity

	err := session.Apply(func(l *layouts.Layout) (*layouts.Layout, error) {
		for i := 0; i < layouts.DefaultRows; i++ {
			var rmErr error
			l, rmErr = l.RemoveRow(sectionID, 0)
			if rmErr != nil {
				return nil, rmErr
			}
		}
		return l, nil
	})
	if !errors.Is(err, layouts.ErrLastRow) {
		t.Fatalf("err = %v, want ErrLastRow", err)
	}
	if session.Layout().Capacity != capacity {
		t.Error("failed Apply mutated the session snapshot")
	}
	if session.Dirty() {
		t.Error("failed Apply marked the session dirty")
	}
}
