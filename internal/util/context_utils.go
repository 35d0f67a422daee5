package util

import (
	"github.com/gin-gonic/gin"
	"github.com/windoze95/servicehub-api/internal/logger"
	"go.uber.org/zap"
)

// GetRequestIDFromContext returns the correlation ID set by the request ID
// middleware, or "" when absent.
func GetRequestIDFromContext(c *gin.Context) string {
	val, ok := c.Get(logger.RequestIDKey)
	if !ok {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}

// LoggerFromContext returns the global logger tagged with the request ID.
func LoggerFromContext(c *gin.Context) *zap.Logger {
	if id := GetRequestIDFromContext(c); id != "" {
		return logger.WithRequestID(id)
	}
	return logger.Get()
}
