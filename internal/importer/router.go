package importer

import (
	"seatwise/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupImporterRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("/layouts/:id/analyze", controller.AnalyzeLayout)  // POST /api/v1/admin/layouts/:id/analyze
		admin.POST("/layouts/:id/template", controller.ApplyTemplate) // POST /api/v1/admin/layouts/:id/template
		admin.GET("/templates", controller.ListTemplates)             // GET /api/v1/admin/templates
		admin.POST("/layouts/ga", controller.CreateGeneralAdmission)  // POST /api/v1/admin/layouts/ga
	}
}
