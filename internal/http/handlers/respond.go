package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// RenderError is the single boundary that turns errors into HTTP responses.
// Operational errors surface their classification and message; anything else
// is a 500 whose detail only shows outside release mode.
func RenderError(c *gin.Context, err error) {
	var e *domain.Error
	if !errors.As(err, &e) || e.Kind == domain.KindInternal {
		body := gin.H{"status": "error", "message": "something went very wrong!"}
		if gin.Mode() != gin.ReleaseMode {
			body["error"] = err.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		return
	}

	status := statusOf(e.Kind)
	c.AbortWithStatusJSON(status, gin.H{
		"status":  statusWord(status),
		"message": e.Message,
	})
}

func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func statusWord(status int) string {
	if status < 500 {
		return "fail"
	}
	return "error"
}
