package routes

import (
	"time"

	"remindly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReminderRoutes registers the reminder endpoints. Paths are flat,
// not grouped under /api, matching what deployed clients already call.
func RegisterReminderRoutes(r *gin.Engine, h *handlers.ReminderHandler) {
	r.POST("/format-reminder", h.FormatReminder)
	r.OPTIONS("/format-reminder", h.OptionsAck)

	r.GET("/reminders", h.ListReminders)
	r.GET("/reminders/:id", h.GetReminderByID)

	r.POST("/reminder-data", h.SaveReminderData)
	r.OPTIONS("/reminder-data", h.OptionsAck)

	r.POST("/delete-reminder", h.DeleteReminder)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, reminderHandler *handlers.ReminderHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterReminderRoutes(r, reminderHandler)
	RegisterHealthRoute(r)
}
