package rooms

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"nextu/internal/shared/utils/response"
)

type Controller interface {
	GetDashboard(c *gin.Context)
	CreateAttribute(c *gin.Context)
	GetAttributes(c *gin.Context)
	UpdateAttribute(c *gin.Context)
	DeleteAttribute(c *gin.Context)
	CreateRoomType(c *gin.Context)
	GetAllRoomTypes(c *gin.Context)
	UpdateRoomType(c *gin.Context)
	DeleteRoomType(c *gin.Context)
	CreateRoom(c *gin.Context)
	GetAllRooms(c *gin.Context)
	UpdateRoom(c *gin.Context)
	DeleteRoom(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetDashboard(c *gin.Context) {
	dashboard := ctrl.service.GetDashboard(c.Request.Context())
	response.RespondJSON(c, "success", http.StatusOK, "Room dashboard retrieved successfully", dashboard, nil)
}

func (ctrl *controller) CreateAttribute(c *gin.Context) {
	var req CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	attr, err := ctrl.service.CreateAttribute(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Room attribute created successfully", attr, nil)
}

func (ctrl *controller) GetAttributes(c *gin.Context) {
	kind := c.Query("kind")
	if kind == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "kind query parameter is required", nil, nil)
		return
	}

	attrs, err := ctrl.service.GetAttributes(c.Request.Context(), kind)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "invalid attribute kind" {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Room attributes retrieved successfully", attrs, nil)
}

func (ctrl *controller) UpdateAttribute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	attr, err := ctrl.service.UpdateAttribute(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Room attribute updated successfully", attr, nil)
}

func (ctrl *controller) DeleteAttribute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteAttribute(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Room attribute deleted successfully", nil, nil)
}

func (ctrl *controller) CreateRoomType(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	roomType, err := ctrl.service.CreateRoomType(req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Room type created successfully", roomType, nil)
}

func (ctrl *controller) GetAllRoomTypes(c *gin.Context) {
	roomTypes, err := ctrl.service.GetAllRoomTypes()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Room types retrieved successfully", roomTypes, nil)
}

func (ctrl *controller) UpdateRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	roomType, err := ctrl.service.UpdateRoomType(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Room type updated successfully", roomType, nil)
}

func (ctrl *controller) DeleteRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteRoomType(id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Room type deleted successfully", nil, nil)
}

func (ctrl *controller) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	room, err := ctrl.service.CreateRoom(req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "already exists") {
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Room created successfully", room, nil)
}

func (ctrl *controller) GetAllRooms(c *gin.Context) {
	var query RoomListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	list, err := ctrl.service.GetAllRooms(query)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "invalid room status filter" {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Rooms retrieved successfully", list, nil)
}

func (ctrl *controller) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	room, err := ctrl.service.UpdateRoom(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Room updated successfully", room, nil)
}

func (ctrl *controller) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteRoom(id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Room deleted successfully", nil, nil)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ID", nil, err.Error())
		return 0, false
	}
	return id, true
}

func respondServiceError(c *gin.Context, err error) {
	statusCode := http.StatusBadRequest
	msg := err.Error()
	switch {
	case strings.HasSuffix(msg, "not found"):
		statusCode = http.StatusNotFound
	case strings.Contains(msg, "already exists"):
		statusCode = http.StatusConflict
	}
	response.RespondJSON(c, "error", statusCode, msg, nil, nil)
}
