package reminderRepo

import (
	"context"
	"fmt"

	"remindly/config"
	"remindly/database"
	"remindly/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReminderRepository abstracts reminder persistence.
//
// Lookups that match nothing return (nil, nil) rather than an error;
// callers decide what not-found means for them. A malformed hex id can
// never match a stored ObjectID, so it is treated the same way.
type ReminderRepository interface {
	Insert(ctx context.Context, reminder *models.Reminder) (primitive.ObjectID, error)
	FindByUser(ctx context.Context, userID string) ([]models.Reminder, error)
	FindByID(ctx context.Context, id string) (*models.Reminder, error)
	DeleteByIDAndUser(ctx context.Context, id, userID string) (int64, error)
}

// MongoReminderRepo implements ReminderRepository using MongoDB.
type MongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo creates a new ReminderRepository backed by the
// global Mongo client, using the database and collection from config.
func NewMongoReminderRepo() ReminderRepository {
	db := database.MongoClient.Database(config.AppConfig.DBName)
	repo := &MongoReminderRepo{
		coll: db.Collection(config.AppConfig.RemindersCollection),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
