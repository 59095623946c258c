package events

import (
	"nextu/internal/shared/middleware"
	"nextu/internal/shared/session"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	evts := router.Group("/events")
	evts.Use(middleware.JWTAuth())
	{
		evts.GET("", controller.GetEvents)
	}

	// Direct submissions share the content role with the draft workflow.
	submit := router.Group("/pending-events")
	submit.Use(middleware.JWTAuth(), middleware.RequireRoles(session.RoleAdmin, session.RoleStaffContent))
	{
		submit.POST("", controller.CreatePendingEvent)
	}

	review := router.Group("/pending-events")
	review.Use(middleware.JWTAuth(), middleware.RequireRoles(session.RoleAdmin, session.RoleManager))
	{
		review.GET("", controller.GetPendingEvents)
		review.POST("/:id/approve", controller.ApprovePendingEvent)
		review.POST("/:id/reject", controller.RejectPendingEvent)
	}
}
