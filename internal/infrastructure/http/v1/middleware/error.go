package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taproom/internal/core/apperror"
	"taproom/internal/infrastructure/http/v1/dto"
	"taproom/pkg/logger"
)

// ErrorHandler renders errors registered with c.Error as dto.ErrorResponse.
// AppErrors keep their status and message; anything else becomes a 500
// with a generic message while the cause is logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// A handler that already started the body owns the response.
		if c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		ctx := c.Request.Context()
		body := dto.ErrorResponse{
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				logger.Error(ctx, "request failed", "code", appErr.Code, "error", err)
			} else if appErr.Err != nil {
				logger.Debug(ctx, "request rejected", "code", appErr.Code, "cause", appErr.Err)
			}

			body.Status = appErr.HTTPStatus
			body.Message = appErr.Message
			body.Code = appErr.Code
			body.Details = appErr.Details
			c.JSON(appErr.HTTPStatus, body)
			return
		}

		logger.Error(ctx, "unhandled error", "error", err)

		body.Status = http.StatusInternalServerError
		body.Message = "Internal server error"
		body.Code = apperror.CodeInternal
		c.JSON(http.StatusInternalServerError, body)
	}
}
