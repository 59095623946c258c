package admins

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nextu/internal/shared/utils/response"
)

type Controller interface {
	CreateAdmin(c *gin.Context)
	GetAllAdmins(c *gin.Context)
	LockAdmin(c *gin.Context)
	UnlockAdmin(c *gin.Context)
	DeleteAdmin(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	admin, err := ctrl.service.CreateAdmin(req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "already exists") {
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Admin created successfully", admin, nil)
}

func (ctrl *controller) GetAllAdmins(c *gin.Context) {
	list, err := ctrl.service.GetAllAdmins()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Admins retrieved successfully", list, nil)
}

func (ctrl *controller) LockAdmin(c *gin.Context) {
	ctrl.setLocked(c, true)
}

func (ctrl *controller) UnlockAdmin(c *gin.Context) {
	ctrl.setLocked(c, false)
}

func (ctrl *controller) setLocked(c *gin.Context, locked bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid admin ID", nil, err.Error())
		return
	}

	var admin *AdminResponse
	if locked {
		admin, err = ctrl.service.LockAdmin(id)
	} else {
		admin, err = ctrl.service.UnlockAdmin(id)
	}
	if err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "admin not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	msg := "Admin unlocked successfully"
	if locked {
		msg = "Admin locked successfully"
	}
	response.RespondJSON(c, "success", http.StatusOK, msg, admin, nil)
}

func (ctrl *controller) DeleteAdmin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid admin ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteAdmin(id); err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "admin not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Admin deleted successfully", nil, nil)
}
