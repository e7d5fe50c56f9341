package models

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestView_RendersHexAndRFC3339(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("ObjectIDFromHex: %v", err)
	}
	created := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	r := Reminder{
		ID:        oid,
		UserID:    "u1",
		Title:     "Dentist",
		Date:      "2025-04-01",
		Time:      "09:00",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}
	v := r.View()

	if v.ID != "507f1f77bcf86cd799439011" {
		t.Errorf("ID = %q", v.ID)
	}
	if v.UserID != "u1" || v.Title != "Dentist" || v.Date != "2025-04-01" || v.Time != "09:00" {
		t.Errorf("view = %+v", v)
	}
	if v.CreatedAt != "2025-03-01T10:30:00Z" {
		t.Errorf("CreatedAt = %q", v.CreatedAt)
	}
	if v.UpdatedAt != "2025-03-01T11:30:00Z" {
		t.Errorf("UpdatedAt = %q", v.UpdatedAt)
	}
}

func TestViewAll_PreservesOrder(t *testing.T) {
	reminders := []Reminder{
		{Title: "first"},
		{Title: "second"},
	}
	views := ViewAll(reminders)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].Title != "first" || views[1].Title != "second" {
		t.Errorf("views = %+v", views)
	}
}

func TestViewAll_EmptyMarshalsAsArray(t *testing.T) {
	views := ViewAll(nil)
	if views == nil {
		t.Fatal("ViewAll(nil) should return a non-nil slice")
	}
	b, err := json.Marshal(views)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("marshaled = %s, want []", b)
	}
}
