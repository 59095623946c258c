package events

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nextu/internal/shared/session"
	"nextu/internal/shared/utils/response"
)

type Controller interface {
	GetEvents(c *gin.Context)
	CreatePendingEvent(c *gin.Context)
	GetPendingEvents(c *gin.Context)
	ApprovePendingEvent(c *gin.Context)
	RejectPendingEvent(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetEvents(c *gin.Context) {
	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	evts, err := ctrl.service.GetEvents(query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Events retrieved successfully", evts, nil)
}

func (ctrl *controller) CreatePendingEvent(c *gin.Context) {
	var req SubmitEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	sess, err := session.FromContext(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	pending, err := ctrl.service.CreateFromSubmission(req, sess.UserID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Event submitted for approval", pending, nil)
}

func (ctrl *controller) GetPendingEvents(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))

	pendings, err := ctrl.service.GetPendingEvents(status)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "invalid status filter" {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Pending events retrieved successfully", pendings, nil)
}

func (ctrl *controller) ApprovePendingEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid pending event ID", nil, err.Error())
		return
	}

	sess, err := session.FromContext(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	pending, err := ctrl.service.ApprovePendingEvent(id, sess.UserID)
	if err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "pending event not found" {
			statusCode = http.StatusNotFound
		} else if strings.Contains(err.Error(), "already") {
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event approved and published", pending, nil)
}

func (ctrl *controller) RejectPendingEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid pending event ID", nil, err.Error())
		return
	}

	var req RejectEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	sess, err := session.FromContext(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	if err := ctrl.service.RejectPendingEvent(id, req.Reason, sess.UserID); err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "pending event not found" {
			statusCode = http.StatusNotFound
		} else if strings.Contains(err.Error(), "already") {
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event rejected", nil, nil)
}
