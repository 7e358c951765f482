package availability

import (
	"context"
	"fmt"
	"log"

	"seatwise/internal/shared/constants"
	"seatwise/pkg/cache"

	"github.com/redis/go-redis/v9"
)

// Service returns availability overlays, caching them briefly so rapid
// preview refreshes do not hammer the booking service.
type Service interface {
	GetOverlay(ctx context.Context, eventID string) (Overlay, error)
	InvalidateOverlay(ctx context.Context, eventID string) error
}

type service struct {
	client       Client
	cacheService cache.Service
}

func NewService(client Client, redisClient *redis.Client) Service {
	var cacheService cache.Service
	if redisClient != nil {
		cacheService = cache.NewService(redisClient)
	}
	return &service{
		client:       client,
		cacheService: cacheService,
	}
}

func (s *service) GetOverlay(ctx context.Context, eventID string) (Overlay, error) {
	cacheKey := constants.BuildSeatAvailabilityKey(eventID)

	// Try to get from cache first
	if s.cacheService != nil {
		var cached Overlay
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			log.Printf("Cache HIT for availability overlay: %s", cacheKey)
			return cached, nil
		} else {
			log.Printf("Cache MISS for availability overlay: %s (error: %v)", cacheKey, err)
		}
	}

	// Cache miss - fetch from the booking service
	overlay, err := s.client.FetchOverlay(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability overlay: %w", err)
	}

	// Cache the result with a short TTL; seat state is real-time sensitive
	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, overlay, constants.TTL_SEAT_AVAILABILITY); err != nil {
			log.Printf("Warning: failed to cache availability overlay: %v", err)
		}
	}

	return overlay, nil
}

func (s *service) InvalidateOverlay(ctx context.Context, eventID string) error {
	if s.cacheService == nil {
		return nil
	}
	return s.cacheService.Delete(ctx, constants.BuildSeatAvailabilityKey(eventID))
}
