package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/volunteer-server/internal/logger"
)

// Logging logs every HTTP request and its result.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs route, duration and status. Server errors are also logged at error level.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	l.logger.Debug("HTTP request started",
		"method", c.Request.Method,
		"path", c.Request.URL.Path)

	c.Next()

	status := c.Writer.Status()
	l.logger.Info("HTTP request completed",
		"method", c.Request.Method,
		"route", route(c),
		"duration_ms", time.Since(start).Milliseconds(),
		"status", status)

	if status >= http.StatusInternalServerError {
		l.logger.Error("HTTP request failed",
			"method", c.Request.Method,
			"route", route(c),
			"status", status,
			"errors", c.Errors.String())
	}
}

// route returns the matched route pattern, or "unmatched".
func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}
