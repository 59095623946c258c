package levels

import (
	"nextu/internal/shared/middleware"
	"nextu/internal/shared/session"

	"github.com/gin-gonic/gin"
)

func SetupLevelRoutes(router *gin.RouterGroup, controller Controller) {
	lvls := router.Group("/levels")
	lvls.Use(middleware.JWTAuth())
	{
		lvls.GET("", controller.GetAllLevels)
		lvls.GET("/:id", controller.GetLevel)
	}

	managed := router.Group("/levels")
	managed.Use(middleware.JWTAuth(), middleware.RequireRoles(session.RoleAdmin, session.RoleStaffContent))
	{
		managed.POST("", controller.CreateLevel)
		managed.PUT("/:id", controller.UpdateLevel)
		managed.DELETE("/:id", controller.DeleteLevel)
	}
}
