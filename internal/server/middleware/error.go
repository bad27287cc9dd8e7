package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-catalog-api/pkg/api"
	"go.uber.org/zap"
)

// ErrorHandler renders errors attached by handlers into a standard JSON shape.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *api.Error
		if errors.As(err, &appErr) {
			if appErr.Log != nil {
				logger.Error("request failed",
					zap.Int("status", appErr.Code),
					zap.Error(appErr.Log),
				)
			}
			c.AbortWithStatusJSON(appErr.Code, api.ErrorResponse{
				Code:     appErr.Code,
				Message:  appErr.Message,
				Metadata: appErr.Metadata,
			})
			return
		}

		// Unknown error, catch-all 500.
		logger.Error("unhandled error", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "An unexpected error occurred.",
		})
	}
}
