package layouts

import (
	"seatwise/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupLayoutRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Layout authoring routes (admin only)
	admin := rg.Group("/admin/layouts")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateLayout)            // POST /api/v1/admin/layouts
		admin.GET("/:id", controller.GetLayout)            // GET /api/v1/admin/layouts/:id
		admin.PUT("/:id", controller.ReplaceLayout)        // PUT /api/v1/admin/layouts/:id
		admin.DELETE("/:id", controller.DeleteLayout)      // DELETE /api/v1/admin/layouts/:id
		admin.POST("/:id/actions", controller.ApplyAction) // POST /api/v1/admin/layouts/:id/actions
	}

	venues := rg.Group("/admin/venues")
	venues.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		venues.GET("/:venueId/layouts", controller.GetLayoutsByVenue) // GET /api/v1/admin/venues/:venueId/layouts
	}

	// Rendered previews are readable by any authenticated user
	layouts := rg.Group("/layouts")
	layouts.Use(middleware.JWTAuth())
	{
		layouts.GET("/:id/preview", controller.PreviewLayout) // GET /api/v1/layouts/:id/preview?event_id=
	}
}
