package layouts

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func ptrInt(v int) *int           { return &v }
func ptrFloat(v float64) *float64 { return &v }

func TestApplyActionDispatch(t *testing.T) {
	base := NewSeatingChart(uuid.New(), "Dispatch Hall").AddSection("Orchestra")
	sectionID := base.Sections[0].ID

	tests := []struct {
		name  string
		req   ActionRequest
		check func(t *testing.T, got *Layout)
	}{
		{
			name: "add_section defaults the name",
			req:  ActionRequest{Action: ActionAddSection},
			check: func(t *testing.T, got *Layout) {
				if len(got.Sections) != 2 {
					t.Fatalf("sections = %d, want 2", len(got.Sections))
				}
				if got.Sections[1].Name != "Section 2" {
					t.Errorf("name = %q, want Section 2", got.Sections[1].Name)
				}
			},
		},
		{
			name: "add_row grows the section",
			req:  ActionRequest{Action: ActionAddRow, SectionID: sectionID},
			check: func(t *testing.T, got *Layout) {
				if rows := len(got.Sections[0].Rows); rows != DefaultRows+1 {
					t.Errorf("rows = %d, want %d", rows, DefaultRows+1)
				}
			},
		},
		{
			name: "remove_seat uses the row index",
			req:  ActionRequest{Action: ActionRemoveSeat, SectionID: sectionID, RowIndex: ptrInt(0)},
			check: func(t *testing.T, got *Layout) {
				if seats := len(got.Sections[0].Rows[0].Seats); seats != DefaultSeatsPerRow-1 {
					t.Errorf("seats = %d, want %d", seats, DefaultSeatsPerRow-1)
				}
			},
		},
		{
			name: "change_pricing maps the tier",
			req:  ActionRequest{Action: ActionChangePricing, SectionID: sectionID, Pricing: "vip"},
			check: func(t *testing.T, got *Layout) {
				if got.Sections[0].Pricing != PricingVIP {
					t.Errorf("pricing = %q, want vip", got.Sections[0].Pricing)
				}
			},
		},
		{
			name: "rotate_section defaults to zero degrees",
			req:  ActionRequest{Action: ActionRotateSection, SectionID: sectionID},
			check: func(t *testing.T, got *Layout) {
				if got.Sections[0].Rotation != base.Sections[0].Rotation {
					t.Errorf("rotation changed with no degrees given")
				}
			},
		},
		{
			name: "move_stage relocates the stage",
			req:  ActionRequest{Action: ActionMoveStage, X: ptrFloat(250), Y: ptrFloat(30)},
			check: func(t *testing.T, got *Layout) {
				if got.Stage.X != 250 || got.Stage.Y != 30 {
					t.Errorf("stage = (%f, %f), want (250, 30)", got.Stage.X, got.Stage.Y)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyAction(base, tt.req)
			if err != nil {
				t.Fatalf("applyAction: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestApplyActionErrors(t *testing.T) {
	base := NewSeatingChart(uuid.New(), "Dispatch Hall").AddSection("Orchestra")
	sectionID := base.Sections[0].ID

	if _, err := applyAction(base, ActionRequest{Action: "explode"}); err == nil {
		t.Error("unknown action accepted")
	}
	if _, err := applyAction(base, ActionRequest{Action: ActionMoveSection, SectionID: sectionID}); err == nil {
		t.Error("move_section without coordinates accepted")
	}
	if _, err := applyAction(base, ActionRequest{Action: ActionMoveStage, X: ptrFloat(1)}); err == nil {
		t.Error("move_stage without y accepted")
	}

	// remove_row errors pass through untouched
	single := NewSeatingChart(uuid.New(), "One Row")
	single = single.AddSection("Pit")
	pit := single.Section(single.Sections[0].ID)
	pit.Rows = pit.Rows[:1]
	single.recomputeCapacity()
	if _, err := applyAction(single, ActionRequest{Action: ActionRemoveRow, SectionID: pit.ID, RowIndex: ptrInt(0)}); !errors.Is(err, ErrLastRow) {
		t.Errorf("err = %v, want ErrLastRow", err)
	}
}
