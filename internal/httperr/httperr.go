package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/crm-api/internal/logger"
)

type HTTPError struct {
	Code    string              `json:"error_code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Abort(c, http.StatusUnauthorized, code, message)
}

// Respond writes err as the JSON error envelope. Anything that is not a
// BusinessError is logged and reported as internal_error.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		c.JSON(be.Kind.Status(), HTTPError{
			Code:    be.Code,
			Message: be.Message,
			Errors:  be.Fields,
		})
		return
	}

	logger.FromGin(c).Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Internal(c, "internal_error", "Internal server error.")
}
