package editor

import (
	"errors"
	"net/http"

	"seatwise/internal/geometry"
	"seatwise/internal/layouts"
	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Editor event types accepted by the events endpoint.
const (
	EventPointerDownSection = "pointer_down_section"
	EventPointerDownLabel   = "pointer_down_label"
	EventPointerDownCanvas  = "pointer_down_canvas"
	EventPointerMove        = "pointer_move"
	EventPointerUp          = "pointer_up"
	EventZoomIn             = "zoom_in"
	EventZoomOut            = "zoom_out"
	EventToggleSeat         = "toggle_seat"
	EventClearSelection     = "clear_selection"
)

type EventRequest struct {
	Type      string  `json:"type" binding:"required,oneof=pointer_down_section pointer_down_label pointer_down_canvas pointer_move pointer_up zoom_in zoom_out toggle_seat clear_selection"`
	SectionID string  `json:"section_id"`
	SeatID    string  `json:"seat_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// StateResponse is the session view returned after every event.
type StateResponse struct {
	Mode          string                    `json:"mode"`
	Viewport      geometry.Viewport         `json:"viewport"`
	Dirty         bool                      `json:"dirty"`
	SelectedSeats []string                  `json:"selected_seats"`
	LabelOffsets  map[string]geometry.Point `json:"label_offsets"`
	Capacity      int                       `json:"capacity"`
}

type Controller struct {
	manager *Manager
	layouts layouts.Service
}

func NewController(manager *Manager, layoutService layouts.Service) *Controller {
	return &Controller{manager: manager, layouts: layoutService}
}

// OpenSession loads the layout and opens an editing session for it.
func (c *Controller) OpenSession(ctx *gin.Context) {
	id := ctx.Param("id")

	layout, err := c.layouts.GetLayoutByID(ctx.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, layouts.ErrLayoutNotFound) {
			status = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", status, "Failed to open editor session", nil, err.Error())
		return
	}

	session, err := NewSession(layout)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusConflict, "Failed to open editor session", nil, err.Error())
		return
	}

	c.manager.Open(id, session)
	response.RespondJSON(ctx, "success", http.StatusCreated, "Editor session opened", c.stateOf(session), nil)
}

// HandleEvent applies one pointer/zoom/selection event to the session.
func (c *Controller) HandleEvent(ctx *gin.Context) {
	id := ctx.Param("id")

	session, err := c.manager.Get(id)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "No editor session open", nil, err.Error())
		return
	}

	var req EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	at := geometry.Point{X: req.X, Y: req.Y}
	switch req.Type {
	case EventPointerDownSection:
		session.PointerDownSection(req.SectionID, at)
	case EventPointerDownLabel:
		session.PointerDownLabel(req.SectionID, at)
	case EventPointerDownCanvas:
		session.PointerDownCanvas(at)
	case EventPointerMove:
		session.PointerMove(at)
	case EventPointerUp:
		session.PointerUp()
	case EventZoomIn:
		session.ZoomIn()
	case EventZoomOut:
		session.ZoomOut()
	case EventToggleSeat:
		session.ToggleSeat(req.SeatID)
	case EventClearSelection:
		session.ClearSelection()
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event applied", c.stateOf(session), nil)
}

// GetState returns the current session state.
func (c *Controller) GetState(ctx *gin.Context) {
	session, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "No editor session open", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Editor session state", c.stateOf(session), nil)
}

// SaveSession persists the session document back to storage.
func (c *Controller) SaveSession(ctx *gin.Context) {
	id := ctx.Param("id")

	session, err := c.manager.Get(id)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "No editor session open", nil, err.Error())
		return
	}

	doc := session.Layout()
	layout, err := c.layouts.ReplaceLayout(ctx.Request.Context(), id, layouts.ReplaceLayoutRequest{
		Name:            &doc.Name,
		Sections:        doc.Sections,
		Stage:           doc.Stage,
		Aisles:          doc.Aisles,
		ViewBox:         &doc.ViewBox,
		PriceCategories: doc.PriceCategories,
	})
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to save editor session", nil, err.Error())
		return
	}

	session.MarkSaved()
	response.RespondJSON(ctx, "success", http.StatusOK, "Editor session saved", layout, nil)
}

// CloseSession discards the session and any unsaved edits.
func (c *Controller) CloseSession(ctx *gin.Context) {
	c.manager.Close(ctx.Param("id"))
	response.RespondJSON(ctx, "success", http.StatusOK, "Editor session closed", nil, nil)
}

func (c *Controller) stateOf(session *Session) StateResponse {
	offsets := make(map[string]geometry.Point)
	for _, section := range session.Layout().Sections {
		if offset := session.LabelOffset(section.ID); offset.X != 0 || offset.Y != 0 {
			offsets[section.ID] = offset
		}
	}
	return StateResponse{
		Mode:          session.Mode(),
		Viewport:      session.Viewport(),
		Dirty:         session.Dirty(),
		SelectedSeats: session.SelectedSeats(),
		LabelOffsets:  offsets,
		Capacity:      session.Layout().Capacity,
	}
}
