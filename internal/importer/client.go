package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DetectedSection is one seating block the detection service found in a
// floor-plan image. Validation tags bound what a trusted-but-fallible model
// may hand us before it reaches a layout document.
type DetectedSection struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Rows        int     `json:"rows" validate:"required,min=1,max=100"`
	SeatsPerRow int     `json:"seats_per_row" validate:"required,min=1,max=500"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Rotation    float64 `json:"rotation" validate:"min=-360,max=360"`
	Curved      bool    `json:"curved"`
	Pricing     string  `json:"pricing" validate:"omitempty,oneof=vip premium standard economy"`
}

// DetectedLayout is the detection service's reading of a floor plan. Error is
// the service's own failure channel; a response carrying it has no sections.
type DetectedLayout struct {
	Sections      []DetectedSection `json:"sections" validate:"required,min=1,dive"`
	TotalCapacity int               `json:"total_capacity"`
	Stage         *DetectedStage    `json:"stage"`
	Message       string            `json:"message"`
	Error         string            `json:"error"`
}

type DetectedStage struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width" validate:"min=0"`
	Height float64 `json:"height" validate:"min=0"`
}

// AnalyzeParams is the detection request. The current capacity gives the
// model a scale hint for the venue in the image.
type AnalyzeParams struct {
	Image            string `json:"image"`
	VenueType        string `json:"venue_type,omitempty"`
	ExistingCapacity int    `json:"existing_capacity,omitempty"`
}

// DetectionClient sends a floor-plan image to the AI detection service and
// returns the sections it recognized. One request per import; the caller
// decides whether to retry.
type DetectionClient interface {
	Analyze(ctx context.Context, params AnalyzeParams) (*DetectedLayout, error)
}

type detectionClient struct {
	baseURL string
	client  *http.Client
}

// NewDetectionClient creates a client for the detection service. Analysis of
// a large floor plan can take a while, so the timeout is the caller's choice.
func NewDetectionClient(baseURL string, timeout time.Duration) DetectionClient {
	return &detectionClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *detectionClient) Analyze(ctx context.Context, params AnalyzeParams) (*DetectedLayout, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detection service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detection service returned status %d", resp.StatusCode)
	}

	var detected DetectedLayout
	if err := json.NewDecoder(resp.Body).Decode(&detected); err != nil {
		return nil, fmt.Errorf("failed to decode detection response: %w", err)
	}
	if detected.Error != "" {
		return nil, fmt.Errorf("detection service rejected image: %s", detected.Error)
	}
	return &detected, nil
}

// Template is a venue layout produced by the template service, either a
// prebuilt catalog entry or one generated on demand for a venue archetype.
type Template struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Sections      []DetectedSection `json:"sections" validate:"required,min=1,dive"`
	TotalCapacity int               `json:"total_capacity"`
	Stage         *DetectedStage    `json:"stage"`
}

// GenerateTemplateParams describes the venue a template should be generated
// for.
type GenerateTemplateParams struct {
	VenueName  string `json:"venue_name"`
	VenueType  string `json:"venue_type"`
	Capacity   int    `json:"capacity"`
	LayoutType string `json:"layout_type"`
}

// TemplateSummary is the catalog listing entry.
type TemplateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

// TemplateClient talks to the template service: browse the prebuilt catalog
// or generate a layout for a venue archetype.
type TemplateClient interface {
	ListTemplates(ctx context.Context) ([]TemplateSummary, error)
	GetTemplate(ctx context.Context, id string) (*Template, error)
	Generate(ctx context.Context, params GenerateTemplateParams) (*Template, error)
}

type templateClient struct {
	baseURL string
	client  *http.Client
}

func NewTemplateClient(baseURL string, timeout time.Duration) TemplateClient {
	return &templateClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *templateClient) ListTemplates(ctx context.Context) ([]TemplateSummary, error) {
	var summaries []TemplateSummary
	if err := c.getJSON(ctx, c.baseURL+"/templates", &summaries); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return summaries, nil
}

func (c *templateClient) GetTemplate(ctx context.Context, id string) (*Template, error) {
	var template Template
	if err := c.getJSON(ctx, c.baseURL+"/templates/"+id, &template); err != nil {
		return nil, fmt.Errorf("failed to get template %s: %w", id, err)
	}
	return &template, nil
}

func (c *templateClient) Generate(ctx context.Context, params GenerateTemplateParams) (*Template, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/templates/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("template service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("template service returned status %d", resp.StatusCode)
	}

	var template Template
	if err := json.NewDecoder(resp.Body).Decode(&template); err != nil {
		return nil, fmt.Errorf("failed to decode generated template: %w", err)
	}
	return &template, nil
}

func (c *templateClient) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("template service returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
