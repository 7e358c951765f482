package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LayoutEventType identifies a layout lifecycle transition.
type LayoutEventType string

const (
	LayoutEventCreated LayoutEventType = "layout.created"
	LayoutEventUpdated LayoutEventType = "layout.updated"
	LayoutEventDeleted LayoutEventType = "layout.deleted"
)

// LayoutEvent is the message published to Kafka whenever a layout document
// changes. Downstream consumers (the booking service's seat catalog, search
// indexers) use it to resync their view of the venue.
type LayoutEvent struct {
	ID         uuid.UUID       `json:"id"`
	Type       LayoutEventType `json:"type"`
	LayoutID   uuid.UUID       `json:"layout_id"`
	VenueID    uuid.UUID       `json:"venue_id"`
	LayoutType string          `json:"layout_type"`
	Capacity   int             `json:"capacity"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewLayoutEvent builds a lifecycle event for the given layout.
func NewLayoutEvent(eventType LayoutEventType, layoutID, venueID uuid.UUID, layoutType string, capacity int) *LayoutEvent {
	return &LayoutEvent{
		ID:         uuid.New(),
		Type:       eventType,
		LayoutID:   layoutID,
		VenueID:    venueID,
		LayoutType: layoutType,
		Capacity:   capacity,
		OccurredAt: time.Now(),
	}
}

// ToJSON serializes the event for the wire.
func (e *LayoutEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetPartitionKey returns the Kafka partition key. Events of one venue stay
// on one partition so consumers see them in order.
func (e *LayoutEvent) GetPartitionKey() string {
	return e.VenueID.String()
}
