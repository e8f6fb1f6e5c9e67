package middlewares

import (
	"errors"
	"net/http"

	domainErrors "go-scheduler-api/src/domain/errors"
	logger "go-scheduler-api/src/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error a handler attached with ctx.Error.
// Errors that are not AppErrors are treated as internal.
func ErrorHandler(loggerInstance *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *domainErrors.AppError
		if !errors.As(err, &appErr) {
			appErr = domainErrors.NewAppError(err, domainErrors.UnknownError)
		}

		status, message := domainErrors.AppErrorToHTTP(appErr)
		if status == http.StatusInternalServerError {
			loggerInstance.Error("Request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		}
		c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
	}
}

// Recovery turns a panic into a generic JSON 500.
func Recovery(loggerInstance *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		loggerInstance.Error("Recovered from panic",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   domainErrors.UnknownErrorMessage,
		})
	})
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "endpoint not found"})
}
