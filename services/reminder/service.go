package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"remindly/models"
	ai "remindly/services/intelligence"
	"remindly/utils"

	"go.uber.org/zap"
)

// Prompts sent with every format request. The system prompt is the exact
// text the deployed model was tuned against; do not reword it.
const (
	reminderSystemPrompt = "Format user input as one or more reminders. Extract title, date and time for each reminder. Always return a JSON array with each reminder having id, title, date and time fields. Date should be in YYYY-MM-DD format. If date is not mentioned set it has null and same for the title. Time should be in HH:MM format. If there are multiple reminders in the input, create multiple JSON objects in the array."
	reminderUserPrompt   = "Parse this into reminders: %s"
)

// llmTimeout bounds the chat-completion call; nothing upstream does.
const llmTimeout = 30 * time.Second

// FormatFromText asks the model to structure the free-form input, then
// persists whatever it extracted for the given user.
//
// Array replies save record by record: a failed record becomes an entry in
// BatchResult.Errors and its siblings still go in. Lone-object replies save
// once; a persistence failure there is folded into *ai.ParseError so the
// caller reports it exactly like a bad parse, raw reply included.
func (s *DefaultReminderService) FormatFromText(ctx context.Context, userID, input string) (*FormatResult, error) {
	logger := utils.GetLogger()

	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	content, err := s.AI.Chat(llmCtx, reminderSystemPrompt, fmt.Sprintf(reminderUserPrompt, input))
	if err != nil {
		return nil, fmt.Errorf("LLM call failed: %w", err)
	}
	logger.Debug("LLM response", zap.String("content", content))

	extraction, err := ai.Extract(content)
	if err != nil {
		return nil, err
	}

	if extraction.Single != nil {
		view, err := s.saveDraft(ctx, userID, *extraction.Single)
		if err != nil {
			return nil, &ai.ParseError{Raw: content, Err: err}
		}
		return &FormatResult{Single: view}, nil
	}

	batch := s.saveBatch(ctx, userID, extraction.Drafts)
	if len(batch.Saved) == 0 {
		return nil, &BatchFailedError{Errors: batch.Errors}
	}
	return &FormatResult{Batch: batch}, nil
}

// SaveRaw persists client-supplied reminders with the same per-record
// isolation as the format flow. Each record carries its own userId.
func (s *DefaultReminderService) SaveRaw(ctx context.Context, inputs []models.ReminderInput) (*BatchResult, error) {
	res := &BatchResult{Saved: make([]models.ReminderView, 0, len(inputs))}
	for _, in := range inputs {
		if in.UserID == "" {
			res.Errors = append(res.Errors, "Error processing reminder: userId is required")
			continue
		}
		view, err := s.saveDraft(ctx, in.UserID, models.ReminderDraft{Title: in.Title, Date: in.Date, Time: in.Time})
		if err != nil {
			msg := fmt.Sprintf("Error processing reminder: %v", err)
			utils.GetLogger().Warn(msg)
			res.Errors = append(res.Errors, msg)
			continue
		}
		res.Saved = append(res.Saved, *view)
	}
	if len(res.Saved) == 0 {
		return nil, &BatchFailedError{Errors: res.Errors}
	}
	return res, nil
}

// SaveOne persists a single client-supplied reminder.
func (s *DefaultReminderService) SaveOne(ctx context.Context, input models.ReminderInput) (*models.ReminderView, error) {
	if input.UserID == "" {
		return nil, errors.New("userId is required")
	}
	return s.saveDraft(ctx, input.UserID, models.ReminderDraft{Title: input.Title, Date: input.Date, Time: input.Time})
}

// ListByUser serves the user's reminders cache-first. Cache trouble is
// logged and absorbed; the store stays authoritative.
func (s *DefaultReminderService) ListByUser(ctx context.Context, userID string) ([]models.ReminderView, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		views, hit, err := s.Cache.Get(ctx, userID)
		if err != nil {
			logger.Warn("reminder cache read failed", zap.String("userId", userID), zap.Error(err))
		} else if hit {
			return views, nil
		}
	}

	reminders, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := models.ViewAll(reminders)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, userID, views); err != nil {
			logger.Warn("reminder cache write failed", zap.String("userId", userID), zap.Error(err))
		}
	}
	return views, nil
}

func (s *DefaultReminderService) GetByID(ctx context.Context, id string) (*models.ReminderView, error) {
	rem, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rem == nil {
		return nil, &NotFoundError{ID: id}
	}
	view := rem.View()
	return &view, nil
}

func (s *DefaultReminderService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.Repo.DeleteByIDAndUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &NotFoundError{ID: id, UserID: userID}
	}
	s.invalidate(ctx, userID)
	return nil
}

// saveDraft applies the defaulting policy, persists, and invalidates the
// owner's cached list.
func (s *DefaultReminderService) saveDraft(ctx context.Context, userID string, draft models.ReminderDraft) (*models.ReminderView, error) {
	rem := &models.Reminder{
		UserID: userID,
		Title:  draft.Title,
		Date:   draft.Date,
		Time:   draft.Time,
	}
	applyDefaults(rem)

	if _, err := s.Repo.Insert(ctx, rem); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)

	view := rem.View()
	return &view, nil
}

func (s *DefaultReminderService) saveBatch(ctx context.Context, userID string, drafts []models.ReminderDraft) *BatchResult {
	res := &BatchResult{Saved: make([]models.ReminderView, 0, len(drafts))}
	for _, draft := range drafts {
		view, err := s.saveDraft(ctx, userID, draft)
		if err != nil {
			msg := fmt.Sprintf("Error processing reminder: %v", err)
			utils.GetLogger().Warn(msg)
			res.Errors = append(res.Errors, msg)
			continue
		}
		res.Saved = append(res.Saved, *view)
	}
	return res
}

func (s *DefaultReminderService) invalidate(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, userID); err != nil {
		utils.GetLogger().Warn("reminder cache invalidation failed",
			zap.String("userId", userID), zap.Error(err))
	}
}

// applyDefaults fills the gaps the model (or the client) left: a generic
// title, today's date. Time stays empty when the input named none.
func applyDefaults(r *models.Reminder) {
	if r.Title == "" {
		r.Title = "New Reminder"
	}
	if r.Date == "" {
		r.Date = time.Now().Format("2006-01-02")
	}
}
