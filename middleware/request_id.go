package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// XRequestID is the request correlation header.
const XRequestID = "X-Request-ID"

// RequestIDMiddleware propagates an inbound request ID or generates one, and
// echoes it on the response for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(XRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(XRequestID, reqID)
		c.Writer.Header().Set(XRequestID, reqID)
		c.Next()
	}
}
