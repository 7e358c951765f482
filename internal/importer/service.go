package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"seatwise/internal/layouts"
	"seatwise/internal/shared/constants"
	"seatwise/pkg/cache"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// Service imports layouts from outside sources: AI floor-plan analysis, the
// template catalog, and the general-admission wizard. Every import replaces
// the target layout's document wholesale; imports are never merged into
// existing sections.
type Service interface {
	AnalyzeAndImport(ctx context.Context, layoutID string, req AnalyzeRequest) (*layouts.Layout, error)
	ApplyTemplate(ctx context.Context, layoutID string, req ApplyTemplateRequest) (*layouts.Layout, error)
	ListTemplates(ctx context.Context) ([]TemplateSummary, error)
	CreateGeneralAdmission(ctx context.Context, req CreateGARequest) (*layouts.Layout, error)
}

type service struct {
	detection   DetectionClient
	templates   TemplateClient
	layouts     layouts.Service
	validate    *validator.Validate
	redisClient *redis.Client
}

func NewService(detection DetectionClient, templates TemplateClient, layoutService layouts.Service) Service {
	return &service{
		detection:   detection,
		templates:   templates,
		layouts:     layoutService,
		validate:    validator.New(),
		redisClient: cache.Client(),
	}
}

func (s *service) AnalyzeAndImport(ctx context.Context, layoutID string, req AnalyzeRequest) (*layouts.Layout, error) {
	// The current capacity gives the detection model a scale hint, and looking
	// the layout up first turns a bad id into a not-found instead of a wasted
	// analysis call.
	current, err := s.layouts.GetLayoutByID(ctx, layoutID)
	if err != nil {
		return nil, err
	}

	detected, err := s.detection.Analyze(ctx, AnalyzeParams{
		Image:            req.Image,
		VenueType:        req.VenueType,
		ExistingCapacity: current.Capacity,
	})
	if err != nil {
		return nil, fmt.Errorf("floor plan analysis failed: %w", err)
	}

	if err := s.validate.Struct(detected); err != nil {
		return nil, fmt.Errorf("detection result failed validation: %w", err)
	}

	sections := BuildSections(detected.Sections)
	return s.layouts.ReplaceLayout(ctx, layoutID, layouts.ReplaceLayoutRequest{
		Sections: sections,
		Stage:    buildStage(detected.Stage),
	})
}

func (s *service) ApplyTemplate(ctx context.Context, layoutID string, req ApplyTemplateRequest) (*layouts.Layout, error) {
	var (
		template *Template
		err      error
	)
	if req.TemplateID != "" {
		template, err = s.templates.GetTemplate(ctx, req.TemplateID)
	} else {
		template, err = s.templates.Generate(ctx, GenerateTemplateParams{
			VenueName:  req.VenueName,
			VenueType:  req.VenueType,
			Capacity:   req.Capacity,
			LayoutType: req.LayoutType,
		})
	}
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(template); err != nil {
		return nil, fmt.Errorf("template failed validation: %w", err)
	}

	sections := BuildSections(template.Sections)
	return s.layouts.ReplaceLayout(ctx, layoutID, layouts.ReplaceLayoutRequest{
		Sections: sections,
		Stage:    buildStage(template.Stage),
	})
}

func (s *service) ListTemplates(ctx context.Context) ([]TemplateSummary, error) {
	cacheKey := constants.CACHE_KEY_TEMPLATE_CATALOG

	// Try to get from cache first
	if s.redisClient != nil {
		data, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []TemplateSummary
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				log.Printf("Cache HIT for template catalog: %s", cacheKey)
				return cached, nil
			}
		} else {
			log.Printf("Cache MISS for template catalog: %s (error: %v)", cacheKey, err)
		}
	}

	summaries, err := s.templates.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(summaries); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, data, constants.TTL_TEMPLATE_CATALOG).Err(); err != nil {
				log.Printf("Warning: failed to cache template catalog: %v", err)
			}
		}
	}

	return summaries, nil
}

func (s *service) CreateGeneralAdmission(ctx context.Context, req CreateGARequest) (*layouts.Layout, error) {
	levels := make([]layouts.GALevel, len(req.Levels))
	for i, level := range req.Levels {
		levels[i] = layouts.GALevel{
			ID:       fmt.Sprintf("level-%d", i+1),
			Name:     level.Name,
			Capacity: level.Capacity,
			Type:     level.Type,
		}
	}
	return s.layouts.CreateGeneralAdmission(ctx, req.VenueID, req.Name, levels)
}
