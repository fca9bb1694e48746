package middleware

import (
	"github.com/gin-gonic/gin"

	"gmao/internal/shared/constants"
	"gmao/internal/shared/id"
)

// RequestID propagates the X-Request-ID header through the request context,
// generating a fresh identifier when the client did not send one. The
// identifier is echoed back in the response so clients can correlate logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = id.MustGenerate(constants.RequestIDLength)
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
