package levels

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nextu/internal/shared/utils/response"
)

type Controller interface {
	CreateLevel(c *gin.Context)
	GetLevel(c *gin.Context)
	UpdateLevel(c *gin.Context)
	DeleteLevel(c *gin.Context)
	GetAllLevels(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateLevel(c *gin.Context) {
	var req CreateLevelRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	level, err := ctrl.service.CreateLevel(req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "a level with this name already exists" {
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Level created successfully", level, nil)
}

func (ctrl *controller) GetLevel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid level ID", nil, err.Error())
		return
	}

	level, err := ctrl.service.GetLevelByID(id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "level not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Level retrieved successfully", level, nil)
}

func (ctrl *controller) UpdateLevel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid level ID", nil, err.Error())
		return
	}

	var req UpdateLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	level, err := ctrl.service.UpdateLevel(id, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "level not found" {
			statusCode = http.StatusNotFound
		} else if err.Error() == "a level with this name already exists" {
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Level updated successfully", level, nil)
}

func (ctrl *controller) DeleteLevel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid level ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteLevel(id); err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "level not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Level deleted successfully", nil, nil)
}

func (ctrl *controller) GetAllLevels(c *gin.Context) {
	lvls, err := ctrl.service.GetAllLevels()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Levels retrieved successfully", lvls, nil)
}
