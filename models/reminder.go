// File: models/reminder.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reminder is the persisted reminder document. The store assigns _id on
// insert; every other field is set by the service before the write.
type Reminder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	Time      string             `bson:"time" json:"time"` // HH:MM, or "" when the input named none
	CreatedAt time.Time          `bson:"created_at" json:"-"`
	UpdatedAt time.Time          `bson:"updated_at" json:"-"`
}

// ReminderDraft is a candidate record carved out of raw model output.
// Fields the model omitted (or returned as null) stay empty and are
// filled in by the defaulting policy before persistence.
type ReminderDraft struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// ReminderInput is the request payload for the raw-save endpoint: one
// reminder as the client wants it stored, plus the owning user.
type ReminderInput struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	UserID string `json:"userId"`
}

// ReminderView is the JSON-friendly projection returned to clients:
// the ObjectID rendered as a hex string and timestamps as RFC 3339.
// It is a derived, disposable copy of the stored document.
type ReminderView struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// View converts the stored document into its outward projection.
func (r Reminder) View() ReminderView {
	return ReminderView{
		ID:        r.ID.Hex(),
		UserID:    r.UserID,
		Title:     r.Title,
		Date:      r.Date,
		Time:      r.Time,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

// ViewAll converts a slice of documents, preserving order. It always
// returns a non-nil slice so empty results render as [] rather than null.
func ViewAll(reminders []Reminder) []ReminderView {
	views := make([]ReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, r.View())
	}
	return views
}
