package memberships

import (
	"net/http"
	"strings"

	"nextu/internal/shared/session"
	"nextu/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateRequest(c *gin.Context)
	GetRequests(c *gin.Context)
	ApproveRequest(c *gin.Context)
	RejectRequest(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateRequest(c *gin.Context) {
	var req CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	created, err := ctrl.service.CreateRequest(req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create membership request", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Membership request created", created, nil)
}

func (ctrl *controller) GetRequests(c *gin.Context) {
	var query MembershipListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	requests, err := ctrl.service.GetRequests(query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch membership requests", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Membership requests fetched successfully", requests, nil)
}

func (ctrl *controller) ApproveRequest(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	sess, err := session.FromContext(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Unauthorized", nil, err.Error())
		return
	}

	approved, err := ctrl.service.ApproveRequest(id, sess.UserID)
	if err != nil {
		respondDecisionError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Membership request approved", approved, nil)
}

func (ctrl *controller) RejectRequest(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	var req RejectMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	sess, err := session.FromContext(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Unauthorized", nil, err.Error())
		return
	}

	rejected, err := ctrl.service.RejectRequest(id, req.Note, sess.UserID)
	if err != nil {
		respondDecisionError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Membership request rejected", rejected, nil)
}

func requestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request ID", nil, err.Error())
		return uuid.Nil, false
	}
	return id, true
}

func respondDecisionError(c *gin.Context, err error) {
	switch {
	case strings.Contains(err.Error(), "not found"):
		response.RespondJSON(c, "error", http.StatusNotFound, "Membership request not found", nil, err.Error())
	case strings.Contains(err.Error(), "already"):
		response.RespondJSON(c, "error", http.StatusConflict, "Membership request already decided", nil, err.Error())
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to decide membership request", nil, err.Error())
	}
}
