package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"remindly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// newContext bounds a repository operation with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// Insert stores a new reminder and returns the assigned ObjectID.
// CreatedAt and UpdatedAt are stamped here so they always match on insert.
func (r *MongoReminderRepo) Insert(ctx context.Context, reminder *models.Reminder) (primitive.ObjectID, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, reminder)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert reminder: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	reminder.ID = oid
	return oid, nil
}

// FindByUser fetches all reminders owned by the given user.
func (r *MongoReminderRepo) FindByUser(ctx context.Context, userID string) ([]models.Reminder, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminders: %w", err)
	}
	return reminders, nil
}

// FindByID retrieves a reminder by its ObjectID hex string.
func (r *MongoReminderRepo) FindByID(ctx context.Context, id string) (*models.Reminder, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var reminder models.Reminder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&reminder); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reminder %s: %w", id, err)
	}
	return &reminder, nil
}

// DeleteByIDAndUser removes the reminder only when it belongs to the given
// user, and reports how many documents matched.
func (r *MongoReminderRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete reminder %s: %w", id, err)
	}
	return res.DeletedCount, nil
}
