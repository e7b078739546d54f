package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the browser demo front end to call the API from another
// origin.  The permissive default suits a local demo; production deployments
// should pass an explicit origin list.
func CORS(allowedOrigins ...string) gin.HandlerFunc {
	allowed := "*"
	if len(allowedOrigins) > 0 {
		allowed = allowedOrigins[0]
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowed)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
