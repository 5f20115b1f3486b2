package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
)

// Result is the JSON contract shared by the widget-facing endpoints.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success sends a 200 result with a human-readable message.
func Success(c *gin.Context, message string) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, Result{Success: true, Message: message})
}

// Fail sends a failed result with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Result{Success: false, Error: message})
}

// Error normalises the error and sends it as a failed result.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	Fail(c, appErr.Status, appErr.Message)
}

// JSON sends a raw payload, used by the read-only projection endpoints.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}
