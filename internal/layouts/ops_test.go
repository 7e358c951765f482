package layouts

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func newTestChart(t *testing.T) (*Layout, string) {
	t.Helper()
	layout := NewSeatingChart(uuid.New(), "Main Hall").AddSection("Orchestra")
	return layout, layout.Sections[0].ID
}

func TestAddSectionDefaults(t *testing.T) {
	layout, _ := newTestChart(t)

	if got := len(layout.Sections); got != 1 {
		t.Fatalf("sections = %d, want 1", got)
	}
	section := layout.Sections[0]
	if len(section.Rows) != DefaultRows {
		t.Fatalf("rows = %d, want %d", len(section.Rows), DefaultRows)
	}
	for i, row := range section.Rows {
		if len(row.Seats) != DefaultSeatsPerRow {
			t.Errorf("row %d seats = %d, want %d", i, len(row.Seats), DefaultSeatsPerRow)
		}
		if want := RowLabel(i); row.Label != want {
			t.Errorf("row %d label = %q, want %q", i, row.Label, want)
		}
		if row.Y != float64(i)*RowSpacing {
			t.Errorf("row %d y = %f, want %f", i, row.Y, float64(i)*RowSpacing)
		}
	}
	if layout.Capacity != DefaultRows*DefaultSeatsPerRow {
		t.Errorf("capacity = %d, want %d", layout.Capacity, DefaultRows*DefaultSeatsPerRow)
	}
	if section.Pricing != PricingStandard {
		t.Errorf("pricing = %q, want %q", section.Pricing, PricingStandard)
	}
	if section.Color != PricingStandard.DefaultColor() {
		t.Errorf("color = %q, want tier default %q", section.Color, PricingStandard.DefaultColor())
	}

	// Successive sections are offset so they do not overlap.
	layout = layout.AddSection("Balcony")
	if dx := layout.Sections[1].X - layout.Sections[0].X; dx != sectionStride {
		t.Errorf("second section offset = %f, want %f", dx, sectionStride)
	}
}

func TestCapacityTracksSeatCount(t *testing.T) {
	layout, sectionID := newTestChart(t)

	check := func(step string) {
		t.Helper()
		if layout.Capacity != layout.SeatCount() {
			t.Fatalf("%s: capacity %d != seat count %d", step, layout.Capacity, layout.SeatCount())
		}
	}
	check("after add section")

	layout = layout.AddRow(sectionID)
	check("after add row")

	layout = layout.AddSeatToRow(sectionID, 3)
	check("after add seat")

	var err error
	layout, err = layout.RemoveRow(sectionID, 5)
	if err != nil {
		t.Fatalf("remove row: %v", err)
	}
	check("after remove row")

	layout = layout.RemoveSeatFromRow(sectionID, 0)
	check("after remove seat")

	layout = layout.AddSection("Balcony")
	check("after second section")

	layout = layout.RemoveSection(sectionID)
	check("after remove section")
}

func TestAddRowInheritsPreviousRowSeatCount(t *testing.T) {
	layout, sectionID := newTestChart(t)

	// Shrink the last row to 17 seats, then append a row.
	last := DefaultRows - 1
	for i := 0; i < 3; i++ {
		layout = layout.RemoveSeatFromRow(sectionID, last)
	}
	before := layout.Capacity

	layout = layout.AddRow(sectionID)
	section := layout.Section(sectionID)
	added := section.Rows[len(section.Rows)-1]
	if len(added.Seats) != 17 {
		t.Errorf("new row seats = %d, want 17 (inherited)", len(added.Seats))
	}
	if layout.Capacity != before+17 {
		t.Errorf("capacity grew by %d, want 17", layout.Capacity-before)
	}
}

func TestRemoveRowRelabelsAndResyncs(t *testing.T) {
	layout, sectionID := newTestChart(t)
	formerRow1SeatID := layout.Sections[0].Rows[1].Seats[0].ID

	layout, err := layout.RemoveRow(sectionID, 0)
	if err != nil {
		t.Fatalf("remove row: %v", err)
	}

	section := layout.Section(sectionID)
	if len(section.Rows) != DefaultRows-1 {
		t.Fatalf("rows = %d, want %d", len(section.Rows), DefaultRows-1)
	}
	for i, row := range section.Rows {
		if want := RowLabel(i); row.Label != want {
			t.Errorf("row %d label = %q, want %q", i, row.Label, want)
		}
		if row.Y != float64(i)*RowSpacing {
			t.Errorf("row %d y = %f, want %f", i, row.Y, float64(i)*RowSpacing)
		}
		for j, seat := range row.Seats {
			if seat.Row != row.Label {
				t.Errorf("row %d seat %d carries label %q, want %q", i, j, seat.Row, row.Label)
			}
			if seat.Y != row.Y {
				t.Errorf("row %d seat %d y = %f, want %f", i, j, seat.Y, row.Y)
			}
		}
	}
	if section.Rows[len(section.Rows)-1].Label != "I" {
		t.Errorf("last label = %q, want I", section.Rows[len(section.Rows)-1].Label)
	}

	// Seat ids are assigned at creation and survive relabeling.
	if got := section.Rows[0].Seats[0].ID; got != formerRow1SeatID {
		t.Errorf("promoted seat id = %q, want original %q", got, formerRow1SeatID)
	}

	if layout.Capacity != (DefaultRows-1)*DefaultSeatsPerRow {
		t.Errorf("capacity = %d, want %d", layout.Capacity, (DefaultRows-1)*DefaultSeatsPerRow)
	}
}

func TestRemoveOnlyRowRejected(t *testing.T) {
	layout, sectionID := newTestChart(t)

	var err error
	for i := 0; i < DefaultRows-1; i++ {
		layout, err = layout.RemoveRow(sectionID, 0)
		if err != nil {
			t.Fatalf("remove row %d: %v", i, err)
		}
	}

	if _, err = layout.RemoveRow(sectionID, 0); !errors.Is(err, ErrLastRow) {
		t.Fatalf("removing only row: err = %v, want ErrLastRow", err)
	}
	if got := len(layout.Section(sectionID).Rows); got != 1 {
		t.Errorf("rows = %d, want the last row preserved", got)
	}
}

func TestRemoveRowRecomputesCurveRadii(t *testing.T) {
	layout, sectionID := newTestChart(t)
	layout = layout.ToggleCurved(sectionID)

	layout, err := layout.RemoveRow(sectionID, 0)
	if err != nil {
		t.Fatalf("remove row: %v", err)
	}
	for i, row := range layout.Section(sectionID).Rows {
		want := BaseRadius + float64(i)*RadiusIncrement
		if row.Curve == nil {
			t.Fatalf("row %d lost its curve", i)
		}
		if row.Curve.Radius != want {
			t.Errorf("row %d radius = %f, want %f", i, row.Curve.Radius, want)
		}
	}
}

func TestToggleCurvedRoundTrip(t *testing.T) {
	layout, sectionID := newTestChart(t)

	curved := layout.ToggleCurved(sectionID)
	section := curved.Section(sectionID)
	if !section.Curved {
		t.Fatal("section not marked curved")
	}
	for i, row := range section.Rows {
		if row.Curve == nil {
			t.Fatalf("row %d has no curve", i)
		}
		if want := BaseRadius + float64(i)*RadiusIncrement; row.Curve.Radius != want {
			t.Errorf("row %d radius = %f, want %f", i, row.Curve.Radius, want)
		}
		if row.Curve.StartAngle != -DefaultArcSpan/2 || row.Curve.EndAngle != DefaultArcSpan/2 {
			t.Errorf("row %d arc = [%f, %f], want symmetric %f span",
				i, row.Curve.StartAngle, row.Curve.EndAngle, DefaultArcSpan)
		}
	}
	if curved.Capacity != layout.Capacity {
		t.Errorf("toggling changed capacity: %d -> %d", layout.Capacity, curved.Capacity)
	}

	// Toggling back restores the original document exactly: same seat ids,
	// counts and positions, no leftover curve fields.
	back := curved.ToggleCurved(sectionID)
	if !reflect.DeepEqual(back.Sections, layout.Sections) {
		t.Error("toggle on/off did not round-trip the sections")
	}
}

func TestPricingAndColorAreIndependent(t *testing.T) {
	layout, sectionID := newTestChart(t)
	layout = layout.ChangeColor(sectionID, "#123456")

	layout = layout.ChangePricing(sectionID, PricingVIP)
	section := layout.Section(sectionID)
	if section.Pricing != PricingVIP {
		t.Errorf("pricing = %q, want %q", section.Pricing, PricingVIP)
	}
	if section.Color != "#123456" {
		t.Errorf("changing the tier touched the color: %q", section.Color)
	}

	layout = layout.ChangeColor(sectionID, "#ABCDEF")
	section = layout.Section(sectionID)
	if section.Color != "#ABCDEF" {
		t.Errorf("color = %q, want #ABCDEF", section.Color)
	}
	if section.Pricing != PricingVIP {
		t.Errorf("changing the color touched the tier: %q", section.Pricing)
	}

	layout = layout.ChangePricing(sectionID, PricingTier("platinum"))
	if got := layout.Section(sectionID).Pricing; got != PricingVIP {
		t.Errorf("unknown tier accepted: %q", got)
	}
}

func TestRotateSectionWraps(t *testing.T) {
	layout, sectionID := newTestChart(t)

	layout = layout.RotateSection(sectionID, 270).RotateSection(sectionID, 180)
	if got := layout.Section(sectionID).Rotation; got != 90 {
		t.Errorf("rotation = %f, want 90", got)
	}

	layout = layout.RotateSection(sectionID, -180)
	if got := layout.Section(sectionID).Rotation; got != 270 {
		t.Errorf("rotation = %f, want 270", got)
	}
}

func TestAddAndRemoveSeat(t *testing.T) {
	layout, sectionID := newTestChart(t)
	row := layout.Sections[0].Rows[0]
	lastX := row.Seats[len(row.Seats)-1].X

	layout = layout.AddSeatToRow(sectionID, 0)
	row = layout.Sections[0].Rows[0]
	added := row.Seats[len(row.Seats)-1]
	if added.X != lastX+SeatSpacing {
		t.Errorf("appended seat x = %f, want %f", added.X, lastX+SeatSpacing)
	}
	if added.Number != DefaultSeatsPerRow+1 {
		t.Errorf("appended seat number = %d, want %d", added.Number, DefaultSeatsPerRow+1)
	}
	if want := SeatID(sectionID, 0, DefaultSeatsPerRow); added.ID != want {
		t.Errorf("appended seat id = %q, want %q", added.ID, want)
	}

	layout = layout.RemoveSeatFromRow(sectionID, 0)
	if got := len(layout.Sections[0].Rows[0].Seats); got != DefaultSeatsPerRow {
		t.Errorf("seats after remove = %d, want %d", got, DefaultSeatsPerRow)
	}
}

func assertUniqueSeatIDs(t *testing.T, layout *Layout) {
	t.Helper()
	seen := make(map[string]string)
	for _, section := range layout.Sections {
		for _, row := range section.Rows {
			for _, seat := range row.Seats {
				if prev, dup := seen[seat.ID]; dup {
					t.Fatalf("seat id %q appears in rows %s and %s", seat.ID, prev, row.Label)
				}
				seen[seat.ID] = row.Label
			}
		}
	}
}

func TestSeatIDsUniqueAfterRemoveThenAddRow(t *testing.T) {
	layout, sectionID := newTestChart(t)

	// Removing the first row shifts the surviving rows down one position, so
	// an appended row lands at a position a surviving row's seats were created
	// at. Its seat ids must still be fresh.
	layout, err := layout.RemoveRow(sectionID, 0)
	if err != nil {
		t.Fatalf("remove row: %v", err)
	}
	layout = layout.AddRow(sectionID)
	assertUniqueSeatIDs(t, layout)

	section := layout.Section(sectionID)
	added := section.Rows[len(section.Rows)-1]
	if want := SeatID(sectionID, DefaultRows, 0); added.Seats[0].ID != want {
		t.Errorf("appended row seat id = %q, want fresh creation index %q", added.Seats[0].ID, want)
	}
}

func TestSeatIDsUniqueAfterRemoveThenAddSeat(t *testing.T) {
	layout, sectionID := newTestChart(t)

	// After removing row 0 the row at position 5 carries creation index 6.
	// Shrink it below the untouched creation-index-5 row's seat count, then
	// append; the new seat id must not shadow that row's live seats.
	layout, err := layout.RemoveRow(sectionID, 0)
	if err != nil {
		t.Fatalf("remove row: %v", err)
	}
	layout = layout.RemoveSeatFromRow(sectionID, 5)
	layout = layout.RemoveSeatFromRow(sectionID, 5)
	layout = layout.AddSeatToRow(sectionID, 5)
	assertUniqueSeatIDs(t, layout)

	row := layout.Section(sectionID).Rows[5]
	if want := SeatID(sectionID, 6, DefaultSeatsPerRow-2); row.Seats[len(row.Seats)-1].ID != want {
		t.Errorf("appended seat id = %q, want %q", row.Seats[len(row.Seats)-1].ID, want)
	}
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	layout, sectionID := newTestChart(t)
	snapshot := layout.Clone()

	layout.AddSection("Balcony")
	layout.AddRow(sectionID)
	layout.AddSeatToRow(sectionID, 0)
	layout.ToggleCurved(sectionID)
	layout.ChangePricing(sectionID, PricingVIP)
	layout.RotateSection(sectionID, 45)
	layout.MoveSection(sectionID, 1, 2)
	layout.MoveStage(9, 9)
	if _, err := layout.RemoveRow(sectionID, 0); err != nil {
		t.Fatalf("remove row: %v", err)
	}

	if !reflect.DeepEqual(layout.Sections, snapshot.Sections) ||
		!reflect.DeepEqual(layout.Stage, snapshot.Stage) ||
		layout.Capacity != snapshot.Capacity {
		t.Error("operations mutated the original layout")
	}
}

func TestUnknownSectionIsNoOp(t *testing.T) {
	layout, _ := newTestChart(t)

	got := layout.AddRow("missing")
	if !reflect.DeepEqual(got.Sections, layout.Sections) {
		t.Error("add row on unknown section changed the document")
	}

	got, err := layout.RemoveRow("missing", 0)
	if err != nil {
		t.Fatalf("remove row on unknown section: %v", err)
	}
	if !reflect.DeepEqual(got.Sections, layout.Sections) {
		t.Error("remove row on unknown section changed the document")
	}
}

func TestRowLabel(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"}, {1, "B"}, {25, "Z"}, {26, "AA"}, {27, "AB"}, {51, "AZ"}, {52, "BA"},
	}
	for _, tt := range tests {
		if got := RowLabel(tt.index); got != tt.want {
			t.Errorf("RowLabel(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
