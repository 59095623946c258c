package notifications

import (
	"nextu/internal/shared/middleware"
	"nextu/internal/shared/session"

	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(rg *gin.RouterGroup, controller Controller) {
	notifications := rg.Group("/notifications")
	notifications.Use(middleware.JWTAuth())
	notifications.Use(middleware.RequireRoles(session.RoleAdmin, session.RoleManager))
	{
		notifications.POST("/announcements", controller.SendAnnouncement)
	}
}
