package categories

import (
	"nextu/internal/shared/middleware"
	"nextu/internal/shared/session"

	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(router *gin.RouterGroup, controller Controller) {
	categories := router.Group("/categories")
	categories.Use(middleware.JWTAuth())
	{
		// Every console role can read the enumeration
		categories.GET("", controller.GetAllCategories)
		categories.GET("/:id", controller.GetCategory)
	}

	managed := router.Group("/categories")
	managed.Use(middleware.JWTAuth(), middleware.RequireRoles(session.RoleAdmin, session.RoleStaffContent))
	{
		managed.POST("", controller.CreateCategory)
		managed.PUT("/:id", controller.UpdateCategory)
		managed.DELETE("/:id", controller.DeleteCategory)
	}
}
