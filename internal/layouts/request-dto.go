package layouts

type CreateLayoutRequest struct {
	VenueID string `json:"venue_id" binding:"required,uuid"`
	Name    string `json:"name" binding:"required,min=1,max=255"`
}

// ReplaceLayoutRequest carries a complete layout document. Saving is always
// wholesale; fields left nil keep their stored value, but sections are
// replaced as a unit when present.
type ReplaceLayoutRequest struct {
	Name            *string         `json:"name" binding:"omitempty,min=1,max=255"`
	Sections        []Section       `json:"sections"`
	Stage           *Stage          `json:"stage"`
	Aisles          []Aisle         `json:"aisles"`
	ViewBox         *ViewBox        `json:"view_box"`
	PriceCategories []PriceCategory `json:"price_categories"`
	GALevels        []GALevel       `json:"ga_levels"`
}

// Designer action names accepted by ActionRequest.
const (
	ActionAddSection    = "add_section"
	ActionRemoveSection = "remove_section"
	ActionAddRow        = "add_row"
	ActionRemoveRow     = "remove_row"
	ActionAddSeat       = "add_seat"
	ActionRemoveSeat    = "remove_seat"
	ActionToggleCurved  = "toggle_curved"
	ActionChangePricing = "change_pricing"
	ActionChangeColor   = "change_color"
	ActionRotateSection = "rotate_section"
	ActionMoveSection   = "move_section"
	ActionMoveStage     = "move_stage"
)

// ActionRequest is one designer operation applied to a stored layout.
type ActionRequest struct {
	Action    string   `json:"action" binding:"required,oneof=add_section remove_section add_row remove_row add_seat remove_seat toggle_curved change_pricing change_color rotate_section move_section move_stage"`
	SectionID string   `json:"section_id" binding:"omitempty"`
	RowIndex  *int     `json:"row_index" binding:"omitempty,min=0"`
	Name      string   `json:"name" binding:"omitempty,max=255"`
	Pricing   string   `json:"pricing" binding:"omitempty,oneof=vip premium standard economy"`
	Color     string   `json:"color" binding:"omitempty,hexcolor"`
	Degrees   *float64 `json:"degrees"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
}
