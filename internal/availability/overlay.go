package availability

// Seat statuses reported by the booking service.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusHeld      = "held"
	StatusBlocked   = "blocked"
)

// Overlay is the per-event seat state, keyed by seat id. Seats absent from
// the overlay fall back to the status stored on the layout. An overlay is
// always fetched and replaced as a whole when the previewed event changes;
// overlays of different events are never merged.
type Overlay map[string]string

// Status resolves a seat's effective status: the overlay entry when present,
// the layout default otherwise.
func (o Overlay) Status(seatID, fallback string) string {
	if o == nil {
		return fallback
	}
	if status, ok := o[seatID]; ok {
		return status
	}
	return fallback
}

// Counts tallies seats per status for a set of seat ids, using the given
// fallback for seats the overlay does not cover.
func (o Overlay) Counts(seatIDs []string, fallback string) map[string]int {
	counts := make(map[string]int)
	for _, id := range seatIDs {
		counts[o.Status(id, fallback)]++
	}
	return counts
}
