package rooms

import (
	"nextu/internal/shared/middleware"
	"nextu/internal/shared/session"

	"github.com/gin-gonic/gin"
)

func SetupRoomRoutes(router *gin.RouterGroup, controller Controller) {
	viewable := router.Group("/rooms")
	viewable.Use(middleware.JWTAuth())
	{
		viewable.GET("/dashboard", controller.GetDashboard)
		viewable.GET("/attributes", controller.GetAttributes)
		viewable.GET("/types", controller.GetAllRoomTypes)
		viewable.GET("", controller.GetAllRooms)
	}

	managed := router.Group("/rooms")
	managed.Use(middleware.JWTAuth(), middleware.RequireRoles(session.RoleAdmin, session.RoleStaffOnboarding))
	{
		managed.POST("/attributes", controller.CreateAttribute)
		managed.PUT("/attributes/:id", controller.UpdateAttribute)
		managed.DELETE("/attributes/:id", controller.DeleteAttribute)

		managed.POST("/types", controller.CreateRoomType)
		managed.PUT("/types/:id", controller.UpdateRoomType)
		managed.DELETE("/types/:id", controller.DeleteRoomType)

		managed.POST("", controller.CreateRoom)
		managed.PUT("/:id", controller.UpdateRoom)
		managed.DELETE("/:id", controller.DeleteRoom)
	}
}
