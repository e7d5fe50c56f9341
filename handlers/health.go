package handlers

import (
	"net/http"

	"remindly/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the latest dependency snapshot collected by the
// background monitor.
func HealthHandler(c *gin.Context) {
	health := utils.GetHealthStatus()

	status := "ok"
	code := http.StatusOK
	if !health.Mongo || !health.Redis {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"mongo":     health.Mongo,
		"redis":     health.Redis,
		"checkedAt": health.CheckedAt,
	})
}
