package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed on every response for log correlation.
const RequestIDHeader = "X-Request-ID"

const contextRequestID = "requestID"

// RequestID assigns a fresh id to each request unless the caller supplied
// one, and echoes it in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextRequestID, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFromContext returns the request's correlation id.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(contextRequestID)
}
