package importer

import (
	"errors"
	"net/http"

	"seatwise/internal/layouts"
	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) AnalyzeLayout(ctx *gin.Context) {
	id := ctx.Param("id")

	var req AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	layout, err := c.service.AnalyzeAndImport(ctx.Request.Context(), id, req)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, layouts.ErrLayoutNotFound) {
			status = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", status, "Failed to import floor plan", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Floor plan imported successfully", layout, nil)
}

func (c *Controller) ApplyTemplate(ctx *gin.Context) {
	id := ctx.Param("id")

	var req ApplyTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	layout, err := c.service.ApplyTemplate(ctx.Request.Context(), id, req)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, layouts.ErrLayoutNotFound) {
			status = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", status, "Failed to apply template", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Template applied successfully", layout, nil)
}

func (c *Controller) ListTemplates(ctx *gin.Context) {
	summaries, err := c.service.ListTemplates(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to list templates", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Templates retrieved successfully", summaries, nil)
}

func (c *Controller) CreateGeneralAdmission(ctx *gin.Context) {
	var req CreateGARequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	layout, err := c.service.CreateGeneralAdmission(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create GA layout", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "GA layout created successfully", layout, nil)
}
