package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gruhahomes/gruha-backend/errors"
	"github.com/gruhahomes/gruha-backend/logger"
)

// ErrorHandler maps errors attached to the gin context onto JSON responses.
// AppErrors carry their own status; binding errors become 422 validation
// responses; anything else is a sanitized 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// Handle AppError
		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			response := map[string]interface{}{
				"type":    string(appError.Type),
				"message": appError.Message,
				"code":    strconv.Itoa(statusCode),
			}

			// Only include details for validation and not-found errors or in debug mode
			if appError.Detail != "" && (gin.IsDebugging() ||
				appError.Type == errors.ValidationError ||
				appError.Type == errors.NotFoundError) {
				response["details"] = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		// Handle Gin binding errors
		if c.Errors.Last().Type == gin.ErrorTypeBind {
			logger.LogHTTPError(c, err, http.StatusUnprocessableEntity, "Request binding error")

			response := map[string]interface{}{
				"type":    string(errors.ValidationError),
				"message": "Failed to bind request",
				"code":    strconv.Itoa(http.StatusUnprocessableEntity),
			}
			if gin.IsDebugging() {
				response["details"] = err.Error()
			}

			c.JSON(http.StatusUnprocessableEntity, response)
			return
		}

		// Handle unknown errors
		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")

		response := map[string]interface{}{
			"type":    string(errors.ServerError),
			"message": "Internal Server Error",
			"code":    strconv.Itoa(http.StatusInternalServerError),
		}
		if gin.IsDebugging() {
			response["details"] = err.Error()
		}

		c.JSON(http.StatusInternalServerError, response)
	}
}
