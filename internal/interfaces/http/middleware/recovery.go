package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/matgen-io/surfgen/pkg/errors"
	"github.com/matgen-io/surfgen/pkg/types/common"
)

// Recovery converts a handler panic into a structured 500 response instead
// of tearing down the connection.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.Named("http")

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("handler panic",
					logging.Any("panic", r),
					logging.String("path", c.Request.URL.Path),
					logging.String("request_id", GetRequestID(c)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, common.APIResponse[any]{
					Success: false,
					Error: &common.ErrorDetail{
						Code:    apperrors.ErrCodeInternal.String(),
						Message: apperrors.DefaultMessageForCode(apperrors.ErrCodeInternal),
					},
					RequestID: GetRequestID(c),
					Timestamp: time.Now().UTC(),
				})
			}
		}()
		c.Next()
	}
}
