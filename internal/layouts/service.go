package layouts

import (
	"context"
	"errors"
	"fmt"
	"log"

	"seatwise/internal/availability"
	"seatwise/internal/notifications"
	"seatwise/internal/shared/constants"
	"seatwise/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Service interface {
	// Layout documents
	CreateLayout(ctx context.Context, req CreateLayoutRequest) (*Layout, error)
	CreateGeneralAdmission(ctx context.Context, venueID, name string, levels []GALevel) (*Layout, error)
	GetLayoutByID(ctx context.Context, id string) (*Layout, error)
	GetLayoutsByVenue(ctx context.Context, venueID string) ([]LayoutSummaryResponse, error)
	ReplaceLayout(ctx context.Context, id string, req ReplaceLayoutRequest) (*Layout, error)
	DeleteLayout(ctx context.Context, id string) error

	// Designer operations
	ApplyAction(ctx context.Context, id string, req ActionRequest) (*Layout, error)

	// Rendered preview with availability merged
	Preview(ctx context.Context, id, eventID string) (*RenderedLayout, error)
}

type service struct {
	repo         Repository
	availability availability.Service
	producer     notifications.LayoutEventProducer
	redisClient  *redis.Client
}

func NewService(repo Repository, availabilitySvc availability.Service, producer notifications.LayoutEventProducer) Service {
	return &service{
		repo:         repo,
		availability: availabilitySvc,
		producer:     producer,
		redisClient:  cache.Client(),
	}
}

//  LAYOUT DOCUMENTS

func (s *service) CreateLayout(ctx context.Context, req CreateLayoutRequest) (*Layout, error) {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	layout := NewSeatingChart(venueID, req.Name)
	if err := s.repo.Create(ctx, layout); err != nil {
		return nil, fmt.Errorf("failed to create layout: %w", err)
	}

	s.invalidate(ctx, layout.VenueID, &layout.ID)
	s.publish(ctx, notifications.LayoutEventCreated, layout)

	return layout, nil
}

func (s *service) CreateGeneralAdmission(ctx context.Context, venueID, name string, levels []GALevel) (*Layout, error) {
	venueUUID, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	capacity := 0
	for _, level := range levels {
		capacity += level.Capacity
	}

	layout := &Layout{
		ID:       uuid.New(),
		VenueID:  venueUUID,
		Name:     name,
		Type:     LayoutTypeGeneralAdmission,
		Capacity: capacity,
		GALevels: levels,
		ViewBox:  ViewBox{Width: 1200, Height: 800},
	}
	if err := s.repo.Create(ctx, layout); err != nil {
		return nil, fmt.Errorf("failed to create GA layout: %w", err)
	}

	s.invalidate(ctx, layout.VenueID, &layout.ID)
	s.publish(ctx, notifications.LayoutEventCreated, layout)

	return layout, nil
}

func (s *service) GetLayoutByID(ctx context.Context, id string) (*Layout, error) {
	layoutID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid layout ID: %w", err)
	}

	cacheKey := constants.BuildLayoutDetailKey(id)

	// Try to get from cache first
	var cachedLayout Layout
	if err := GetCache(ctx, s.redisClient, cacheKey, &cachedLayout); err == nil {
		log.Printf("Cache HIT for layout: %s", cacheKey)
		return &cachedLayout, nil
	} else {
		log.Printf("Cache MISS for layout: %s (error: %v)", cacheKey, err)
	}

	// Cache miss
	layout, err := s.repo.GetByID(ctx, layoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLayoutNotFound
		}
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}

	// Cache it
	if err := SetCache(ctx, s.redisClient, cacheKey, layout, constants.TTL_LAYOUT_DETAIL); err != nil {
		log.Printf("Warning: failed to cache layout: %v", err)
	}

	return layout, nil
}

func (s *service) GetLayoutsByVenue(ctx context.Context, venueID string) ([]LayoutSummaryResponse, error) {
	venueUUID, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	cacheKey := constants.BuildVenueLayoutsKey(venueID)

	var cachedSummaries []LayoutSummaryResponse
	if err := GetCache(ctx, s.redisClient, cacheKey, &cachedSummaries); err == nil {
		log.Printf("Cache HIT for venue layouts: %s", cacheKey)
		return cachedSummaries, nil
	} else {
		log.Printf("Cache MISS for venue layouts: %s (error: %v)", cacheKey, err)
	}

	layouts, err := s.repo.GetByVenueID(ctx, venueUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue layouts: %w", err)
	}

	summaries := make([]LayoutSummaryResponse, len(layouts))
	for i := range layouts {
		summaries[i] = layouts[i].ToSummary()
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, summaries, constants.TTL_VENUE_LAYOUTS); err != nil {
		log.Printf("Warning: failed to cache venue layouts: %v", err)
	}

	return summaries, nil
}

func (s *service) ReplaceLayout(ctx context.Context, id string, req ReplaceLayoutRequest) (*Layout, error) {
	layoutID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid layout ID: %w", err)
	}

	layout, err := s.repo.GetByID(ctx, layoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLayoutNotFound
		}
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}

	if req.Name != nil {
		layout.Name = *req.Name
	}
	if req.Sections != nil {
		layout.Sections = req.Sections
	}
	if req.Stage != nil {
		layout.Stage = req.Stage
	}
	if req.Aisles != nil {
		layout.Aisles = req.Aisles
	}
	if req.ViewBox != nil {
		layout.ViewBox = *req.ViewBox
	}
	if req.PriceCategories != nil {
		layout.PriceCategories = req.PriceCategories
	}
	if req.GALevels != nil {
		layout.GALevels = req.GALevels
	}
	layout.recomputeCapacity()
	if layout.IsGeneralAdmission() {
		capacity := 0
		for _, level := range layout.GALevels {
			capacity += level.Capacity
		}
		layout.Capacity = capacity
	}

	if err := s.repo.Save(ctx, layout); err != nil {
		return nil, fmt.Errorf("failed to save layout: %w", err)
	}

	s.invalidate(ctx, layout.VenueID, &layout.ID)
	s.publish(ctx, notifications.LayoutEventUpdated, layout)

	return layout, nil
}

func (s *service) DeleteLayout(ctx context.Context, id string) error {
	layoutID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid layout ID: %w", err)
	}

	layout, err := s.repo.GetByID(ctx, layoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLayoutNotFound
		}
		return fmt.Errorf("failed to get layout: %w", err)
	}

	if err := s.repo.Delete(ctx, layoutID); err != nil {
		return fmt.Errorf("failed to delete layout: %w", err)
	}

	s.invalidate(ctx, layout.VenueID, &layoutID)
	s.publish(ctx, notifications.LayoutEventDeleted, layout)

	return nil
}

//  DESIGNER OPERATIONS

func (s *service) ApplyAction(ctx context.Context, id string, req ActionRequest) (*Layout, error) {
	layoutID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid layout ID: %w", err)
	}

	// Always operate on the stored document, not a cached copy.
	layout, err := s.repo.GetByID(ctx, layoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLayoutNotFound
		}
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}

	if !layout.IsSeatingChart() {
		return nil, ErrNotSeatingChart
	}

	updated, err := applyAction(layout, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save layout: %w", err)
	}

	s.invalidate(ctx, updated.VenueID, &updated.ID)
	s.publish(ctx, notifications.LayoutEventUpdated, updated)

	return updated, nil
}

// applyAction dispatches a named designer action to the layout operation it
// stands for.
func applyAction(layout *Layout, req ActionRequest) (*Layout, error) {
	rowIndex := 0
	if req.RowIndex != nil {
		rowIndex = *req.RowIndex
	}

	switch req.Action {
	case ActionAddSection:
		name := req.Name
		if name == "" {
			name = fmt.Sprintf("Section %d", len(layout.Sections)+1)
		}
		return layout.AddSection(name), nil
	case ActionRemoveSection:
		return layout.RemoveSection(req.SectionID), nil
	case ActionAddRow:
		return layout.AddRow(req.SectionID), nil
	case ActionRemoveRow:
		return layout.RemoveRow(req.SectionID, rowIndex)
	case ActionAddSeat:
		return layout.AddSeatToRow(req.SectionID, rowIndex), nil
	case ActionRemoveSeat:
		return layout.RemoveSeatFromRow(req.SectionID, rowIndex), nil
	case ActionToggleCurved:
		return layout.ToggleCurved(req.SectionID), nil
	case ActionChangePricing:
		return layout.ChangePricing(req.SectionID, PricingTier(req.Pricing)), nil
	case ActionChangeColor:
		return layout.ChangeColor(req.SectionID, req.Color), nil
	case ActionRotateSection:
		degrees := 0.0
		if req.Degrees != nil {
			degrees = *req.Degrees
		}
		return layout.RotateSection(req.SectionID, degrees), nil
	case ActionMoveSection:
		if req.X == nil || req.Y == nil {
			return nil, fmt.Errorf("move_section requires x and y")
		}
		return layout.MoveSection(req.SectionID, *req.X, *req.Y), nil
	case ActionMoveStage:
		if req.X == nil || req.Y == nil {
			return nil, fmt.Errorf("move_stage requires x and y")
		}
		return layout.MoveStage(*req.X, *req.Y), nil
	default:
		return nil, fmt.Errorf("unknown action: %s", req.Action)
	}
}

//  PREVIEW

func (s *service) Preview(ctx context.Context, id, eventID string) (*RenderedLayout, error) {
	cacheKey := constants.BuildLayoutPreviewKey(id, eventID)

	var cachedPreview RenderedLayout
	if err := GetCache(ctx, s.redisClient, cacheKey, &cachedPreview); err == nil {
		log.Printf("Cache HIT for layout preview: %s", cacheKey)
		return &cachedPreview, nil
	} else {
		log.Printf("Cache MISS for layout preview: %s (error: %v)", cacheKey, err)
	}

	layout, err := s.GetLayoutByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var statuses map[string]SeatStatus
	if eventID != "" && s.availability != nil {
		overlay, err := s.availability.GetOverlay(ctx, eventID)
		if err != nil {
			// A preview without live availability is still useful; fall back
			// to the stored seat defaults.
			log.Printf("Warning: availability overlay unavailable for event %s: %v", eventID, err)
		} else {
			statuses = make(map[string]SeatStatus, len(overlay))
			for seatID, status := range overlay {
				statuses[seatID] = SeatStatus(status)
			}
		}
	}

	rendered := Render(layout, statuses)

	if err := SetCache(ctx, s.redisClient, cacheKey, rendered, constants.TTL_LAYOUT_PREVIEW); err != nil {
		log.Printf("Warning: failed to cache layout preview: %v", err)
	}

	return rendered, nil
}

//  HELPER FUNCTIONS

func (s *service) invalidate(ctx context.Context, venueID uuid.UUID, layoutID *uuid.UUID) {
	if err := InvalidateLayoutCache(ctx, s.redisClient, venueID, layoutID); err != nil {
		log.Printf("Warning: failed to invalidate layout cache: %v", err)
	}
}

func (s *service) publish(ctx context.Context, eventType notifications.LayoutEventType, layout *Layout) {
	if s.producer == nil {
		return
	}
	event := notifications.NewLayoutEvent(eventType, layout.ID, layout.VenueID, string(layout.Type), layout.Capacity)
	if err := s.producer.PublishLayoutEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event for layout %s: %v", eventType, layout.ID, err)
	}
}
