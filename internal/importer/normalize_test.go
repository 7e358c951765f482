package importer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	"seatwise/internal/layouts"
)

func TestBuildSectionsIdentityScheme(t *testing.T) {
	sections := BuildSections([]DetectedSection{
		{Name: "Orchestra", Rows: 3, SeatsPerRow: 4, X: 120, Y: 300, Pricing: "vip"},
	})
	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}

	section := sections[0]
	if section.Name != "Orchestra" || section.X != 120 || section.Y != 300 {
		t.Errorf("section geometry not kept: %+v", section)
	}
	if section.Pricing != layouts.PricingVIP {
		t.Errorf("pricing = %q, want vip", section.Pricing)
	}
	if section.Color != layouts.PricingVIP.DefaultColor() {
		t.Errorf("color = %q, want vip default", section.Color)
	}

	for r, row := range section.Rows {
		if want := layouts.RowLabel(r); row.Label != want {
			t.Errorf("row %d label = %q, want %q", r, row.Label, want)
		}
		for s, seat := range row.Seats {
			if want := layouts.SeatID(section.ID, r, s); seat.ID != want {
				t.Errorf("seat id = %q, want %q", seat.ID, want)
			}
			if seat.Status != layouts.SeatAvailable {
				t.Errorf("imported seat status = %q, want available", seat.Status)
			}
		}
	}
	if section.SeatCount() != 12 {
		t.Errorf("seat count = %d, want 12", section.SeatCount())
	}
}

func TestBuildSectionsCurved(t *testing.T) {
	sections := BuildSections([]DetectedSection{
		{Name: "Arena", Rows: 2, SeatsPerRow: 10, Curved: true},
	})

	section := sections[0]
	if !section.Curved {
		t.Fatal("section not marked curved")
	}
	for r, row := range section.Rows {
		if row.Curve == nil {
			t.Fatalf("row %d has no curve", r)
		}
		want := layouts.BaseRadius + float64(r)*layouts.RadiusIncrement
		if row.Curve.Radius != want {
			t.Errorf("row %d radius = %f, want %f", r, row.Curve.Radius, want)
		}
	}
}

func TestBuildSectionsUnknownPricingFallsBack(t *testing.T) {
	sections := BuildSections([]DetectedSection{
		{Name: "Floor", Rows: 1, SeatsPerRow: 2, Pricing: "platinum"},
	})
	if got := sections[0].Pricing; got != layouts.PricingStandard {
		t.Errorf("pricing = %q, want standard fallback", got)
	}
}

func TestDetectedLayoutValidation(t *testing.T) {
	validate := validator.New()

	valid := &DetectedLayout{
		Sections: []DetectedSection{{Name: "A", Rows: 5, SeatsPerRow: 10}},
	}
	if err := validate.Struct(valid); err != nil {
		t.Errorf("valid detection rejected: %v", err)
	}

	tests := []struct {
		name     string
		detected *DetectedLayout
	}{
		{"no sections", &DetectedLayout{}},
		{"zero rows", &DetectedLayout{Sections: []DetectedSection{{Name: "A", SeatsPerRow: 10}}}},
		{"oversized rows", &DetectedLayout{Sections: []DetectedSection{{Name: "A", Rows: 101, SeatsPerRow: 10}}}},
		{"unknown pricing", &DetectedLayout{Sections: []DetectedSection{{Name: "A", Rows: 1, SeatsPerRow: 1, Pricing: "gold"}}}},
	}
	for _, tt := range tests {
		if err := validate.Struct(tt.detected); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestDetectionClientAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/analyze" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var params AnalyzeParams
		json.NewDecoder(r.Body).Decode(&params)
		if params.Image == "" {
			t.Error("request carried no image payload")
		}
		if params.ExistingCapacity != 200 {
			t.Errorf("existing capacity = %d, want 200", params.ExistingCapacity)
		}
		json.NewEncoder(w).Encode(DetectedLayout{
			Sections: []DetectedSection{{Name: "Orchestra", Rows: 8, SeatsPerRow: 14}},
		})
	}))
	defer server.Close()

	client := NewDetectionClient(server.URL, 5*time.Second)
	detected, err := client.Analyze(context.Background(), AnalyzeParams{Image: "aW1hZ2U=", ExistingCapacity: 200})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(detected.Sections) != 1 || detected.Sections[0].Rows != 8 {
		t.Errorf("detected = %+v", detected)
	}
}

func TestDetectionClientErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(DetectedLayout{Error: "no seating visible in image"})
	}))
	defer server.Close()

	client := NewDetectionClient(server.URL, 5*time.Second)
	if _, err := client.Analyze(context.Background(), AnalyzeParams{Image: "aW1hZ2U="}); err == nil {
		t.Fatal("expected error from detection error payload")
	}
}

func TestTemplateClientGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/templates/generate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var params GenerateTemplateParams
		json.NewDecoder(r.Body).Decode(&params)
		if params.VenueType != "arena" {
			t.Errorf("venue type = %q, want arena", params.VenueType)
		}
		json.NewEncoder(w).Encode(Template{
			Name:          "Arena Bowl",
			Sections:      []DetectedSection{{Name: "Lower Bowl", Rows: 12, SeatsPerRow: 20, Curved: true}},
			TotalCapacity: 240,
		})
	}))
	defer server.Close()

	client := NewTemplateClient(server.URL, 5*time.Second)
	template, err := client.Generate(context.Background(), GenerateTemplateParams{
		VenueName: "City Arena",
		VenueType: "arena",
		Capacity:  240,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(template.Sections) != 1 || !template.Sections[0].Curved {
		t.Errorf("template = %+v", template)
	}
}

func TestBuildStageFallback(t *testing.T) {
	if stage := buildStage(nil); stage == nil || stage.Width != 400 {
		t.Errorf("nil detection: stage = %+v, want default", stage)
	}
	if stage := buildStage(&DetectedStage{Width: 0, Height: 50}); stage.Width != 400 {
		t.Errorf("degenerate detection: stage = %+v, want default", stage)
	}
	if stage := buildStage(&DetectedStage{X: 10, Y: 20, Width: 300, Height: 60}); stage.X != 10 || stage.Width != 300 {
		t.Errorf("stage = %+v, want detected dimensions kept", stage)
	}
}
