package drafts

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nextu/internal/shared/session"
	"nextu/internal/shared/utils/response"
)

type Controller interface {
	OpenDraft(c *gin.Context)
	GetDraft(c *gin.Context)
	GetDraftContext(c *gin.Context)
	AdvanceDraft(c *gin.Context)
	UpdateBasicInfo(c *gin.Context)
	UpdateSchedule(c *gin.Context)
	AddTicketType(c *gin.Context)
	UpdateTicketType(c *gin.Context)
	RemoveTicketType(c *gin.Context)
	AddAddOn(c *gin.Context)
	UpdateAddOn(c *gin.Context)
	RemoveAddOn(c *gin.Context)
	AddLocation(c *gin.Context)
	UpdateLocation(c *gin.Context)
	RemoveLocation(c *gin.Context)
	SubmitDraft(c *gin.Context)
	CancelDraft(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) OpenDraft(c *gin.Context) {
	sess, err := session.FromContext(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	draft, err := ctrl.service.Open(c.Request.Context(), sess.UserID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Draft opened", draft, nil)
}

func (ctrl *controller) GetDraft(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	draft, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Draft retrieved", draft, nil)
}

func (ctrl *controller) GetDraftContext(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	workflowCtx, err := ctrl.service.Context(c.Request.Context(), id)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Draft context retrieved", workflowCtx, nil)
}

func (ctrl *controller) AdvanceDraft(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	draft, err := ctrl.service.Advance(c.Request.Context(), id, req.Direction)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Draft step updated", draft, nil)
}

func (ctrl *controller) UpdateBasicInfo(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	var req UpdateBasicInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	draft, err := ctrl.service.UpdateBasicInfo(c.Request.Context(), id, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Basic info updated", draft, nil)
}

func (ctrl *controller) UpdateSchedule(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	draft, err := ctrl.service.UpdateSchedule(c.Request.Context(), id, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Schedule updated", draft, nil)
}

func (ctrl *controller) AddTicketType(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	var req TicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	draft, err := ctrl.service.AddTicketType(c.Request.Context(), id, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket type added", draft, nil)
}

func (ctrl *controller) UpdateTicketType(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}
	index, ok := ctrl.listIndex(c)
	if !ok {
		return
	}

	var req TicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	draft, err := ctrl.service.UpdateTicketType(c.Request.Context(), id, index, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket type updated", draft, nil)
}

func (ctrl *controller) RemoveTicketType(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}
	index, ok := ctrl.listIndex(c)
	if !ok {
		return
	}

	draft, err := ctrl.service.RemoveTicketType(c.Request.Context(), id, index)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket type removed", draft, nil)
}

func (ctrl *controller) AddAddOn(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	var req AddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	draft, err := ctrl.service.AddAddOn(c.Request.Context(), id, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Add-on added", draft, nil)
}

func (ctrl *controller) UpdateAddOn(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}
	index, ok := ctrl.listIndex(c)
	if !ok {
		return
	}

	var req AddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	draft, err := ctrl.service.UpdateAddOn(c.Request.Context(), id, index, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Add-on updated", draft, nil)
}

func (ctrl *controller) RemoveAddOn(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}
	index, ok := ctrl.listIndex(c)
	if !ok {
		return
	}

	draft, err := ctrl.service.RemoveAddOn(c.Request.Context(), id, index)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Add-on removed", draft, nil)
}

func (ctrl *controller) AddLocation(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	draft, err := ctrl.service.AddLocation(c.Request.Context(), id, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Location added", draft, nil)
}

func (ctrl *controller) UpdateLocation(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}
	index, ok := ctrl.listIndex(c)
	if !ok {
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	draft, err := ctrl.service.UpdateLocation(c.Request.Context(), id, index, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Location updated", draft, nil)
}

func (ctrl *controller) RemoveLocation(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}
	index, ok := ctrl.listIndex(c)
	if !ok {
		return
	}

	draft, err := ctrl.service.RemoveLocation(c.Request.Context(), id, index)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Location removed", draft, nil)
}

func (ctrl *controller) SubmitDraft(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	sess, err := session.FromContext(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	pending, err := ctrl.service.Submit(c.Request.Context(), id, sess.UserID)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Event submitted for approval", pending, nil)
}

func (ctrl *controller) CancelDraft(c *gin.Context) {
	id, ok := ctrl.draftID(c)
	if !ok {
		return
	}

	if err := ctrl.service.Cancel(c.Request.Context(), id); err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Draft cancelled", nil, nil)
}

func (ctrl *controller) draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid draft ID", nil, err.Error())
		return uuid.Nil, false
	}
	return id, true
}

func (ctrl *controller) listIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid list index", nil, err.Error())
		return 0, false
	}
	return index, true
}

// respondError maps service errors to status codes. Validation errors
// keep the draft intact and name the failing field; a submission
// rejected downstream surfaces the collaborator's message verbatim.
func (ctrl *controller) respondError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.RespondJSON(c, "error", http.StatusUnprocessableEntity, verr.Message, nil, []response.FieldError{{Field: verr.Field, Message: verr.Message}})
	case errors.Is(err, ErrDraftNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "draft not found", nil, nil)
	case errors.Is(err, ErrSubmitInFlight):
		response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
	case strings.Contains(err.Error(), "index out of range"):
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case strings.Contains(err.Error(), "invalid direction"):
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
	default:
		response.RespondJSON(c, "error", http.StatusBadGateway, err.Error(), nil, nil)
	}
}
