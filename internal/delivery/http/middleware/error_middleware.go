package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"zk-contact-backend/internal/delivery/http/response"
	"zk-contact-backend/pkg/apperror"
	"zk-contact-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				// Never expose unclassified error details to clients
				logger.Log.Error("Internal Server Error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", "")
			}
		}
	}
}

// Recovery turns a panic into the standard error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered", "panic", recovered, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "Unable to process request", fmt.Sprint(recovered))
		c.Abort()
	})
}
