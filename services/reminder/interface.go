package reminder

import (
	"context"

	reminderRepo "remindly/database/repository/reminder"
	"remindly/models"
	ai "remindly/services/intelligence"
)

// ListCache caches each user's reminder list. Implementations must be safe
// for concurrent use; every method failure is survivable and callers degrade
// to the store.
type ListCache interface {
	Get(ctx context.Context, userID string) ([]models.ReminderView, bool, error)
	Set(ctx context.Context, userID string, views []models.ReminderView) error
	Invalidate(ctx context.Context, userID string) error
}

// BatchResult reports a batch save: stored records in input order, plus one
// message per failed record. Errors stays nil when every record went in.
type BatchResult struct {
	Saved  []models.ReminderView
	Errors []string
}

// FormatResult is the outcome of the format flow. Exactly one field is set,
// mirroring whether the model replied with a lone object or an array.
type FormatResult struct {
	Single *models.ReminderView
	Batch  *BatchResult
}

type ReminderService interface {
	// FormatFromText runs the LLM over free-form input and persists whatever
	// reminders could be extracted for the given user.
	FormatFromText(ctx context.Context, userID, input string) (*FormatResult, error)

	// SaveRaw persists client-supplied reminders record by record; one bad
	// record never aborts its siblings.
	SaveRaw(ctx context.Context, inputs []models.ReminderInput) (*BatchResult, error)

	// SaveOne persists a single client-supplied reminder.
	SaveOne(ctx context.Context, input models.ReminderInput) (*models.ReminderView, error)

	ListByUser(ctx context.Context, userID string) ([]models.ReminderView, error)
	GetByID(ctx context.Context, id string) (*models.ReminderView, error)
	Delete(ctx context.Context, id, userID string) error
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo  reminderRepo.ReminderRepository
	AI    ai.Client
	Cache ListCache // nil disables list caching
}
