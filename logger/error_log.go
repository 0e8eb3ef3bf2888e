package logger

import (
	"github.com/gin-gonic/gin"
)

// LogHTTPError logs an error that occurred while handling an HTTP request,
// together with request-scoped metadata.
func LogHTTPError(c *gin.Context, err error, statusCode int, message string) {
	log := GetLogger()

	requestID := ""
	if v, ok := c.Get("request_id"); ok {
		if s, ok := v.(string); ok {
			requestID = s
		}
	}

	log.Errorw(message,
		"error", err,
		"status_code", statusCode,
		"request_id", requestID,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"client_ip", c.ClientIP(),
	)
}
