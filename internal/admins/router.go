package admins

import (
	"nextu/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(router *gin.RouterGroup, controller Controller) {
	accounts := router.Group("/admins")
	accounts.Use(middleware.JWTAuth(), middleware.RequireSuperAdmin())
	{
		accounts.POST("", controller.CreateAdmin)
		accounts.GET("", controller.GetAllAdmins)
		accounts.POST("/:id/lock", controller.LockAdmin)
		accounts.POST("/:id/unlock", controller.UnlockAdmin)
		accounts.DELETE("/:id", controller.DeleteAdmin)
	}
}
