package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spendwise/internal/logger"
)

// RequestIDKey holds the request id on the gin context. A caller-supplied
// X-Request-ID is kept so ids survive proxies.
const RequestIDKey = "requestID"

const requestIDHeader = "X-Request-ID"

// quietPaths are served without a log line.
var quietPaths = map[string]bool{"/api/health": true}

// RequestLogging logs one line per request at a level matching its status.
// Event streams get an extra line when they open, since the closing line
// only appears once the client leaves.
func RequestLogging() gin.HandlerFunc {
	log := logger.Named("http")

	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		path := c.Request.URL.Path
		reqLog := log.With("request_id", requestID, "method", c.Request.Method, "path", path)
		if c.GetHeader("Accept") == "text/event-stream" {
			reqLog.Infow("stream opened", "client_ip", c.ClientIP())
		}

		c.Next()

		if quietPaths[path] {
			return
		}

		status := c.Writer.Status()
		fields := []any{
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if uid, ok := c.Get(UserIDKey); ok {
			fields = append(fields, "owner", uid)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			reqLog.Errorw("request", fields...)
		case status >= 400:
			reqLog.Warnw("request", fields...)
		default:
			reqLog.Infow("request", fields...)
		}
	}
}

// RequestID returns the id RequestLogging assigned to c, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
