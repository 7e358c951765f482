package constants

import "time"

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Seatwise application
// Pattern: seatwise:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_MEDIUM = 12 * time.Hour // 12 hours - for architectural data
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_LONG  = 4 * time.Hour // 4 hours - for saved layout documents
	TTL_SEMI_STATIC_SHORT = 1 * time.Hour // 1 hour - for venue layout listings
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for rendered previews
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for template catalogs
)

// Highly Dynamic (Micro TTL: real-time sensitive)
const (
	TTL_REALTIME_SHORT = 30 * time.Second // 30 seconds - for seat availability overlays
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "seatwise"
)

// ================== LAYOUTS MODULE ==================

// Layout Cache Keys
const (
	// Venue layout listings
	CACHE_KEY_VENUE_LAYOUTS = CACHE_PREFIX + ":layouts:venue:" // + venue-id

	// Individual layout documents
	CACHE_KEY_LAYOUT_DETAIL = CACHE_PREFIX + ":layouts:detail:uuid:" // + layout-id

	// Rendered previews (world-space seats with availability merged)
	CACHE_KEY_LAYOUT_PREVIEW = CACHE_PREFIX + ":layouts:preview:uuid:" // + layout-id:event:event-id
)

// Layout Cache TTLs
const (
	TTL_VENUE_LAYOUTS  = TTL_SEMI_STATIC_SHORT // 1 hour
	TTL_LAYOUT_DETAIL  = TTL_SEMI_STATIC_LONG  // 4 hours
	TTL_LAYOUT_PREVIEW = TTL_DYNAMIC_MEDIUM    // 10 minutes
)

// ================== AVAILABILITY MODULE ==================

// Availability Cache Keys
const (
	CACHE_KEY_SEAT_AVAILABILITY = CACHE_PREFIX + ":availability:event:" // + event-id
)

// Availability Cache TTLs
const (
	TTL_SEAT_AVAILABILITY = TTL_REALTIME_SHORT // 30 seconds
)

// ================== IMPORTER MODULE ==================

// Importer Cache Keys
const (
	CACHE_KEY_TEMPLATE_CATALOG = CACHE_PREFIX + ":importer:templates:catalog" // template list from the template service
)

// Importer Cache TTLs
const (
	TTL_TEMPLATE_CATALOG = TTL_DYNAMIC_SHORT // 5 minutes
)

// ================== USERS MODULE ==================

// User Cache Keys
const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":users:profile:uuid:" // + user-id
)

// User Cache TTLs
const (
	TTL_USER_PROFILE = TTL_STATIC_MEDIUM // 12 hours
)

// ================== CACHE INVALIDATION PATTERNS ==================

// Patterns for cache invalidation (used with Redis KEYS command or manual invalidation)
const (
	// Layout-related invalidation patterns
	PATTERN_INVALIDATE_LAYOUTS_ALL = CACHE_PREFIX + ":layouts:*"

	// Availability invalidation patterns
	PATTERN_INVALIDATE_AVAILABILITY = CACHE_PREFIX + ":availability:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildVenueLayoutsKey(venueID string) string {
	return CACHE_KEY_VENUE_LAYOUTS + venueID
}

func BuildLayoutDetailKey(layoutID string) string {
	return CACHE_KEY_LAYOUT_DETAIL + layoutID
}

func BuildLayoutPreviewKey(layoutID, eventID string) string {
	return CACHE_KEY_LAYOUT_PREVIEW + layoutID + ":event:" + eventID
}

func BuildSeatAvailabilityKey(eventID string) string {
	return CACHE_KEY_SEAT_AVAILABILITY + eventID
}
