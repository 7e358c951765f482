package layouts

import (
	"time"

	"github.com/google/uuid"
)

// LayoutSummaryResponse is the listing view of a layout; the document body is
// omitted.
type LayoutSummaryResponse struct {
	ID           uuid.UUID  `json:"id"`
	VenueID      uuid.UUID  `json:"venue_id"`
	Name         string     `json:"name"`
	Type         LayoutType `json:"type"`
	Capacity     int        `json:"capacity"`
	SectionCount int        `json:"section_count"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToSummary converts a layout to its listing view.
func (l *Layout) ToSummary() LayoutSummaryResponse {
	return LayoutSummaryResponse{
		ID:           l.ID,
		VenueID:      l.VenueID,
		Name:         l.Name,
		Type:         l.Type,
		Capacity:     l.Capacity,
		SectionCount: len(l.Sections),
		UpdatedAt:    l.UpdatedAt,
	}
}
