package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"remindly/models"
	ai "remindly/services/intelligence"
	"remindly/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes the reminder endpoints.
type ReminderHandler struct {
	Service reminder.ReminderService
}

func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: svc}
}

type formatReminderRequest struct {
	Input  string `json:"input"`
	UserID string `json:"userId"`
}

type deleteReminderRequest struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}

// FormatReminder handles POST /format-reminder: free-form text in,
// extracted and persisted reminder(s) out.
func (h *ReminderHandler) FormatReminder(c *gin.Context) {
	logger := getLogger(c)

	var req formatReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No input provided. Please send JSON with 'input' field."})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No userId provided. Please send JSON with 'userId' field."})
		return
	}

	result, err := h.Service.FormatFromText(c.Request.Context(), req.UserID, req.Input)
	if err != nil {
		var noJSON *ai.NoJSONError
		var parseErr *ai.ParseError
		var batchErr *reminder.BatchFailedError
		switch {
		case errors.As(err, &noJSON):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON found in LLM response", "raw": noJSON.Raw})
		case errors.As(err, &parseErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse or post JSON", "details": parseErr.Err.Error(), "raw": parseErr.Raw})
		case errors.As(err, &batchErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": batchErr.Error(), "details": batchErr.Errors})
		default:
			logger.Error("format reminder failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if result.Single != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "reminder": result.Single})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"reminders": result.Batch.Saved,
		"count":     len(result.Batch.Saved),
		"errors":    result.Batch.Errors,
	})
}

// ListReminders handles GET /reminders?userId=.
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	views, err := h.Service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("list reminders failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reminders": views, "count": len(views)})
}

// GetReminderByID handles GET /reminders/:id. Lookups are not owner-scoped.
func (h *ReminderHandler) GetReminderByID(c *gin.Context) {
	id := c.Param("id")

	view, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		var nf *reminder.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
			return
		}
		getLogger(c).Error("get reminder failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reminder": view})
}

// SaveReminderData handles POST /reminder-data: a single reminder object or
// an array of them, stored as given (plus defaults). The body is sniffed for
// its first byte to tell the two apart.
func (h *ReminderHandler) SaveReminderData(c *gin.Context) {
	logger := getLogger(c)

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No reminder data provided"})
		return
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte("{}")) || bytes.Equal(trimmed, []byte("[]")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No reminder data provided"})
		return
	}

	if trimmed[0] == '[' {
		var inputs []models.ReminderInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if len(inputs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No reminder data provided"})
			return
		}

		res, err := h.Service.SaveRaw(c.Request.Context(), inputs)
		if err != nil {
			var batchErr *reminder.BatchFailedError
			if errors.As(err, &batchErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": batchErr.Error(), "details": batchErr.Errors})
				return
			}
			logger.Error("save reminder batch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save reminder data: %v", err)})
			return
		}

		c.Header("Access-Control-Allow-Origin", "*")
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"reminders": res.Saved,
			"count":     len(res.Saved),
			"errors":    res.Errors,
		})
		return
	}

	var input models.ReminderInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	view, err := h.Service.SaveOne(c.Request.Context(), input)
	if err != nil {
		logger.Error("save reminder failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save reminder data: %v", err)})
		return
	}

	c.Header("Access-Control-Allow-Origin", "*")
	c.JSON(http.StatusOK, gin.H{"success": true, "reminder": view})
}

// DeleteReminder handles POST /delete-reminder. The filter requires both the
// id and the owning userId; anything else is a 404, never someone else's row.
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	var req deleteReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.ID == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both id and userId are required"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), req.ID, req.UserID); err != nil {
		var nf *reminder.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
			return
		}
		getLogger(c).Error("delete reminder failed", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Reminder with ID %s deleted", req.ID)})
}

// OptionsAck answers non-preflight OPTIONS requests on the POST routes the
// way the old API did; real browser preflights are handled by the CORS
// middleware before they reach this handler.
func (h *ReminderHandler) OptionsAck(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Header("Access-Control-Allow-Methods", "POST")
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
