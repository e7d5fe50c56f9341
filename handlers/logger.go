package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"remindly/utils"
)

// getLogger returns the process logger, enriched with the request id when
// the middleware has tagged one onto the context.
func getLogger(c *gin.Context) *zap.Logger {
	logger := utils.GetLogger()
	if id := c.GetString("requestID"); id != "" {
		return logger.With(zap.String("requestId", id))
	}
	return logger
}
