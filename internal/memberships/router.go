package memberships

import (
	"nextu/internal/shared/middleware"
	"nextu/internal/shared/session"

	"github.com/gin-gonic/gin"
)

func SetupMembershipRoutes(rg *gin.RouterGroup, controller Controller) {
	requests := rg.Group("/membership-requests")
	requests.Use(middleware.JWTAuth())
	{
		requests.POST("", middleware.RequireRoles(session.RoleAdmin, session.RoleStaffOnboarding), controller.CreateRequest)
		requests.GET("", middleware.RequireRoles(session.RoleAdmin, session.RoleManager, session.RoleStaffOnboarding), controller.GetRequests)
		requests.POST("/:id/approve", middleware.RequireRoles(session.RoleAdmin, session.RoleManager), controller.ApproveRequest)
		requests.POST("/:id/reject", middleware.RequireRoles(session.RoleAdmin, session.RoleManager), controller.RejectRequest)
	}
}
