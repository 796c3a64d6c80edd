// Package response writes the JSON envelopes shared by every handler.
package response

import (
	"net/http"

	"sportsclub-app/internal/apperr"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternal       = "INTERNAL_SERVER_ERROR"
)

func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Error maps service errors to their status and system code. Anything that
// is not an apperr kind is a 500 and is recorded on the context for the access log.
func Error(c *gin.Context, err error) {
	if e, ok := apperr.From(err); ok && e.Kind != apperr.KindInternal {
		Abort(c, e.Status(), e.Code)
		return
	}
	_ = c.Error(err)
	Abort(c, http.StatusInternalServerError, CodeInternal)
}

// BadRequest rejects a body that failed binding or validation.
func BadRequest(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	Abort(c, http.StatusBadRequest, CodeInvalidRequest)
}

func Abort(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": gin.H{"system_code": code}})
}
