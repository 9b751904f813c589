package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError is an error that carries the HTTP status code it should be
// answered with.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(message string, code int) *AppError {
	return &AppError{Code: code, Message: message}
}

// RespondError writes the JSON error envelope. Client faults (4xx) report
// status "fail", everything else "error"; unknown errors become a 500
// without leaking internals.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := "error"
		if appErr.Code < http.StatusInternalServerError {
			status = "fail"
		}
		c.JSON(appErr.Code, gin.H{"status": status, "message": appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Something went wrong",
	})
}
