package drafts

import (
	"nextu/internal/shared/middleware"
	"nextu/internal/shared/session"

	"github.com/gin-gonic/gin"
)

func SetupDraftRoutes(router *gin.RouterGroup, controller Controller) {
	d := router.Group("/drafts")
	d.Use(middleware.JWTAuth(), middleware.RequireRoles(session.RoleAdmin, session.RoleStaffContent))
	{
		d.POST("", controller.OpenDraft)
		d.GET("/:id", controller.GetDraft)
		d.GET("/:id/context", controller.GetDraftContext)
		d.POST("/:id/advance", controller.AdvanceDraft)
		d.PUT("/:id/basic-info", controller.UpdateBasicInfo)
		d.PUT("/:id/schedule", controller.UpdateSchedule)

		d.POST("/:id/ticket-types", controller.AddTicketType)
		d.PUT("/:id/ticket-types/:index", controller.UpdateTicketType)
		d.DELETE("/:id/ticket-types/:index", controller.RemoveTicketType)

		d.POST("/:id/add-ons", controller.AddAddOn)
		d.PUT("/:id/add-ons/:index", controller.UpdateAddOn)
		d.DELETE("/:id/add-ons/:index", controller.RemoveAddOn)

		d.POST("/:id/locations", controller.AddLocation)
		d.PUT("/:id/locations/:index", controller.UpdateLocation)
		d.DELETE("/:id/locations/:index", controller.RemoveLocation)

		d.POST("/:id/submit", controller.SubmitDraft)
		d.DELETE("/:id", controller.CancelDraft)
	}
}
