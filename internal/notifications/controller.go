package notifications

import (
	"net/http"

	"nextu/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	SendAnnouncement(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) SendAnnouncement(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	queued, err := ctrl.service.Announce(req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadGateway, "Failed to queue announcement", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusAccepted, "Announcement queued", gin.H{"queued": queued}, nil)
}
