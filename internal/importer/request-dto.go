package importer

type AnalyzeRequest struct {
	// Image is the floor plan, base64 encoded.
	Image     string `json:"image" binding:"required"`
	VenueType string `json:"venue_type" binding:"omitempty,max=100"`
}

// ApplyTemplateRequest either names a catalog template to apply or describes
// the venue a template should be generated for.
type ApplyTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"omitempty"`
	VenueName  string `json:"venue_name" binding:"required_without=TemplateID,omitempty,max=255"`
	VenueType  string `json:"venue_type" binding:"required_without=TemplateID,omitempty,max=100"`
	Capacity   int    `json:"capacity" binding:"omitempty,min=1"`
	LayoutType string `json:"layout_type" binding:"omitempty,max=50"`
}

type GALevelRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Type     string `json:"type" binding:"required,oneof=standing seated mixed"`
}

type CreateGARequest struct {
	VenueID string           `json:"venue_id" binding:"required,uuid"`
	Name    string           `json:"name" binding:"required,min=1,max=255"`
	Levels  []GALevelRequest `json:"levels" binding:"required,min=1,dive"`
}
