package layouts

import (
	"errors"
	"net/http"

	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

//  LAYOUT DOCUMENTS

func (c *Controller) CreateLayout(ctx *gin.Context) {
	var req CreateLayoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	layout, err := c.service.CreateLayout(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create layout", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Layout created successfully", layout, nil)
}

func (c *Controller) GetLayout(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Layout ID is required", nil, "missing layout ID")
		return
	}

	layout, err := c.service.GetLayoutByID(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", statusForError(err), "Failed to get layout", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout retrieved successfully", layout, nil)
}

func (c *Controller) GetLayoutsByVenue(ctx *gin.Context) {
	venueID := ctx.Param("venueId")
	if venueID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue ID is required", nil, "missing venue ID")
		return
	}

	summaries, err := c.service.GetLayoutsByVenue(ctx.Request.Context(), venueID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get venue layouts", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue layouts retrieved successfully", summaries, nil)
}

func (c *Controller) ReplaceLayout(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Layout ID is required", nil, "missing layout ID")
		return
	}

	var req ReplaceLayoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	layout, err := c.service.ReplaceLayout(ctx.Request.Context(), id, req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusForError(err), "Failed to save layout", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout saved successfully", layout, nil)
}

func (c *Controller) DeleteLayout(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Layout ID is required", nil, "missing layout ID")
		return
	}

	if err := c.service.DeleteLayout(ctx.Request.Context(), id); err != nil {
		response.RespondJSON(ctx, "error", statusForError(err), "Failed to delete layout", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout deleted successfully", nil, nil)
}

//  DESIGNER OPERATIONS

func (c *Controller) ApplyAction(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Layout ID is required", nil, "missing layout ID")
		return
	}

	var req ActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	layout, err := c.service.ApplyAction(ctx.Request.Context(), id, req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusForError(err), "Failed to apply action", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Action applied successfully", layout, nil)
}

//  PREVIEW

func (c *Controller) PreviewLayout(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Layout ID is required", nil, "missing layout ID")
		return
	}
	eventID := ctx.Query("event_id")

	rendered, err := c.service.Preview(ctx.Request.Context(), id, eventID)
	if err != nil {
		response.RespondJSON(ctx, "error", statusForError(err), "Failed to render layout preview", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout preview rendered successfully", rendered, nil)
}

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrLayoutNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrLastRow), errors.Is(err, ErrNotSeatingChart):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
