package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey - gin context key holding the request id
const RequestIDKey = "request_id"

// RequestIDHeader -
const RequestIDHeader = "X-Request-ID"

// RequestID - reuses the caller's X-Request-ID or mints one
func RequestID() gin.HandlerFunc {

	return func(c *gin.Context) {

		id := c.GetHeader(RequestIDHeader)

		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

// Logger - access log through logrus
func Logger(log *logrus.Logger) gin.HandlerFunc {

	return func(c *gin.Context) {

		start := time.Now()

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		})

		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}

		entry.Debug("request served")
	}
}
