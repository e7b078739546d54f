// Package handlers contains the gin HTTP handlers for the surfgen API.
// Every response uses the shared envelope: success flag, data or structured
// error, request ID and timestamp.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matgen-io/surfgen/internal/interfaces/http/middleware"
	apperrors "github.com/matgen-io/surfgen/pkg/errors"
	"github.com/matgen-io/surfgen/pkg/types/common"
)

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, common.APIResponse[interface{}]{
		Success:   true,
		Data:      data,
		RequestID: middleware.GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// respondError maps an error to the envelope.  AppErrors carry their own
// code and HTTP status; anything else is masked as an internal error.
func respondError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := apperrors.HTTPStatusForCode(code)
	message := err.Error()
	if code == apperrors.ErrCodeUnknown {
		code = apperrors.ErrCodeInternal
		status = http.StatusInternalServerError
		message = apperrors.DefaultMessageForCode(code)
	}

	c.JSON(status, common.APIResponse[interface{}]{
		Success: false,
		Error: &common.ErrorDetail{
			Code:    code.String(),
			Message: message,
		},
		RequestID: middleware.GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

func respondBadRequest(c *gin.Context, err error) {
	respondError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "malformed request body"))
}
