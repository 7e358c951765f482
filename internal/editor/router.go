package editor

import (
	"seatwise/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEditorRoutes(rg *gin.RouterGroup, controller *Controller) {
	editor := rg.Group("/admin/layouts/:id/editor")
	editor.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		editor.POST("", controller.OpenSession)        // POST /api/v1/admin/layouts/:id/editor
		editor.GET("", controller.GetState)            // GET /api/v1/admin/layouts/:id/editor
		editor.POST("/events", controller.HandleEvent) // POST /api/v1/admin/layouts/:id/editor/events
		editor.POST("/save", controller.SaveSession)   // POST /api/v1/admin/layouts/:id/editor/save
		editor.DELETE("", controller.CloseSession)     // DELETE /api/v1/admin/layouts/:id/editor
	}
}
