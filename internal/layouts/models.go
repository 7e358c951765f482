package layouts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"seatwise/internal/geometry"

	"github.com/google/uuid"
)

// LayoutType discriminates the two structural variants of a layout. Seating
// charts carry sections/rows/seats and are editable in the designer; general
// admission layouts carry flat capacity levels and are editable only through
// the GA wizard.
type LayoutType string

const (
	LayoutTypeSeatingChart     LayoutType = "seating_chart"
	LayoutTypeGeneralAdmission LayoutType = "general_admission"
)

// PricingTier is the revenue category of a section, independent of its
// display color.
type PricingTier string

const (
	PricingVIP      PricingTier = "vip"
	PricingPremium  PricingTier = "premium"
	PricingStandard PricingTier = "standard"
	PricingEconomy  PricingTier = "economy"
)

// IsValid reports whether the tier is one of the known pricing tiers.
func (t PricingTier) IsValid() bool {
	switch t {
	case PricingVIP, PricingPremium, PricingStandard, PricingEconomy:
		return true
	}
	return false
}

// DefaultColor returns the fill color a section gets when created with this
// tier. Changing the tier later never touches the color.
func (t PricingTier) DefaultColor() string {
	switch t {
	case PricingVIP:
		return "#FFD700"
	case PricingPremium:
		return "#9B59B6"
	case PricingEconomy:
		return "#2ECC71"
	default:
		return "#3498DB"
	}
}

// SeatStatus is a seat's default booking state stored on the layout itself.
// Event-specific state comes from the availability overlay at render time.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatSold      SeatStatus = "sold"
	SeatHeld      SeatStatus = "held"
	SeatBlocked   SeatStatus = "blocked"
)

// SeatType marks accessibility seating.
type SeatType string

const (
	SeatRegular    SeatType = "regular"
	SeatWheelchair SeatType = "wheelchair"
)

// Seat is the atomic bookable unit. Its id is derived deterministically from
// the owning section and the row/seat indexes at creation time and never
// changes afterwards, so availability data keyed by seat id merges without
// ambiguity.
type Seat struct {
	ID        string     `json:"id"`
	SectionID string     `json:"section_id"`
	Row       string     `json:"row"`
	Number    int        `json:"number"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Status    SeatStatus `json:"status"`
	Type      SeatType   `json:"type"`
	Angle     *float64   `json:"angle,omitempty"`
}

// Row is an ordered, labeled line of seats within a section. Label is always
// the alphabetic sequence A, B, C, ... matching the row's index within its
// section; it is re-derived whenever rows are inserted or removed.
type Row struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Y     float64         `json:"y"`
	Seats []Seat          `json:"seats"`
	Curve *geometry.Curve `json:"curve,omitempty"`
}

// Section is a named, independently positioned and rotated block of rows.
// Row and seat coordinates are section-local and rotate as a rigid body.
type Section struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Rotation float64     `json:"rotation"`
	Rows     []Row       `json:"rows"`
	Pricing  PricingTier `json:"pricing"`
	Color    string      `json:"color"`
	Curved   bool        `json:"curved"`
}

// SeatCount returns the number of seats across all rows of the section.
func (s *Section) SeatCount() int {
	total := 0
	for i := range s.Rows {
		total += len(s.Rows[i].Seats)
	}
	return total
}

// Stage is the singleton stage marker of a layout; it belongs to no section.
type Stage struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Label  string  `json:"label"`
	Type   string  `json:"type"`
}

// Aisle is a walkway rectangle drawn between sections.
type Aisle struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

// ViewBox is the logical coordinate rectangle mapped onto the rendering
// surface; runtime pan/zoom is applied on top of it.
type ViewBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PriceCategory attaches a concrete price to a pricing tier for one layout.
type PriceCategory struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Tier  PricingTier `json:"tier"`
	Price float64     `json:"price"`
	Color string      `json:"color"`
}

// GALevel is one capacity bucket of a general-admission layout.
type GALevel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"` // standing, seated, mixed
}

// Layout is the persisted venue layout document. The document fields are
// stored as jsonb columns so a layout is always saved and loaded as one
// atomic unit; it is never partially persisted.
type Layout struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"venue_id"`
	Name            string          `gorm:"not null;size:255" json:"name"`
	Type            LayoutType      `gorm:"type:varchar(20);not null;default:'seating_chart'" json:"type"`
	Capacity        int             `gorm:"not null;default:0;check:capacity >= 0" json:"capacity"`
	Sections        []Section       `gorm:"type:jsonb;serializer:json" json:"sections"`
	Stage           *Stage          `gorm:"type:jsonb;serializer:json" json:"stage,omitempty"`
	Aisles          []Aisle         `gorm:"type:jsonb;serializer:json" json:"aisles,omitempty"`
	ViewBox         ViewBox         `gorm:"type:jsonb;serializer:json" json:"view_box"`
	PriceCategories []PriceCategory `gorm:"type:jsonb;serializer:json" json:"price_categories,omitempty"`
	GALevels        []GALevel       `gorm:"type:jsonb;serializer:json" json:"ga_levels,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName sets the table name for Layout.
func (Layout) TableName() string {
	return "layouts"
}

// IsSeatingChart reports whether the layout is editable in the seat designer.
func (l *Layout) IsSeatingChart() bool {
	return l.Type == LayoutTypeSeatingChart
}

// IsGeneralAdmission reports whether the layout is the GA variant.
func (l *Layout) IsGeneralAdmission() bool {
	return l.Type == LayoutTypeGeneralAdmission
}

// SeatCount returns the total number of seats across all sections. For a
// consistent layout this always equals Capacity.
func (l *Layout) SeatCount() int {
	total := 0
	for i := range l.Sections {
		total += l.Sections[i].SeatCount()
	}
	return total
}

// Section returns the section with the given id, or nil if absent.
func (l *Layout) Section(id string) *Section {
	for i := range l.Sections {
		if l.Sections[i].ID == id {
			return &l.Sections[i]
		}
	}
	return nil
}

// SeatID derives the deterministic seat id for the seat at the given row and
// seat index within a section.
func SeatID(sectionID string, rowIndex, seatIndex int) string {
	return fmt.Sprintf("%s-R%dS%d", sectionID, rowIndex, seatIndex)
}

// splitSeatID recovers the creation row and seat indexes embedded in a
// generated seat id. ok is false for ids not in the generated form.
func splitSeatID(id string) (rowIndex, seatIndex int, ok bool) {
	r := strings.LastIndex(id, "-R")
	s := strings.LastIndex(id, "S")
	if r < 0 || s < r+3 {
		return 0, 0, false
	}
	rowIndex, err := strconv.Atoi(id[r+2 : s])
	if err != nil {
		return 0, 0, false
	}
	seatIndex, err = strconv.Atoi(id[s+1:])
	if err != nil {
		return 0, 0, false
	}
	return rowIndex, seatIndex, true
}

// RowLabel returns the alphabetic label for a row index: A, B, ..., Z, AA, AB.
func RowLabel(index int) string {
	label := ""
	for index >= 0 {
		label = string(rune('A'+index%26)) + label
		index = index/26 - 1
	}
	return label
}
