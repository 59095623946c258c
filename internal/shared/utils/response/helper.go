package response

import "github.com/gin-gonic/gin"

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondFieldError reports a validation failure on a single named field.
func RespondFieldError(c *gin.Context, code int, field, message string) {
	RespondJSON(c, "error", code, message, nil, []FieldError{{Field: field, Message: message}})
}
