package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client fetches per-event seat availability from the booking service. The
// booking service owns seat state; this client only reads it.
type Client interface {
	FetchOverlay(ctx context.Context, eventID string) (Overlay, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient creates an availability client against the booking service base
// URL, e.g. "http://bookings:8081/api/v1".
func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// availabilityResponse mirrors the booking service's wire format: a list of
// seat id/status pairs for the event.
type availabilityResponse struct {
	EventID string           `json:"event_id"`
	Seats   []seatStatusPair `json:"seats"`
}

type seatStatusPair struct {
	SeatID string `json:"seat_id"`
	Status string `json:"status"`
}

func (c *httpClient) FetchOverlay(ctx context.Context, eventID string) (Overlay, error) {
	endpoint := fmt.Sprintf("%s/seats/availability?eventId=%s", c.baseURL, url.QueryEscape(eventID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for event %s: %w", eventID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("availability request for event %s returned status %d", eventID, resp.StatusCode)
	}

	var body availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode availability response: %w", err)
	}

	overlay := make(Overlay, len(body.Seats))
	for _, seat := range body.Seats {
		overlay[seat.SeatID] = seat.Status
	}
	return overlay, nil
}
