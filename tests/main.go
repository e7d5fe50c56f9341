package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"remindly/config"
	"remindly/database"
	"remindly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the reminders collection with sample data for local development.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	coll := client.Database(config.AppConfig.DBName).Collection(config.AppConfig.RemindersCollection)

	// Clear existing reminders.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear reminders collection: %v", err)
	}

	users := []string{"demo-user-1", "demo-user-2", "demo-user-3"}
	titles := []string{
		"Call mom",
		"Pay rent",
		"Team standup",
		"Dentist appointment",
		"Water the plants",
		"Renew car insurance",
		"Gym session",
		"Pick up groceries",
	}
	// Empty time is valid: the input named no clock time.
	clockTimes := []string{"", "07:00", "09:30", "12:00", "15:45", "18:00", "20:15"}

	// Generate dates for the next 7 days.
	var weekDates []string
	today := time.Now()
	for i := 0; i < 7; i++ {
		weekDates = append(weekDates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}

	remindersPerUser := 8
	var docs []interface{}
	for _, userID := range users {
		for i := 0; i < remindersPerUser; i++ {
			now := time.Now().UTC()
			docs = append(docs, models.Reminder{
				UserID:    userID,
				Title:     titles[rand.Intn(len(titles))],
				Date:      weekDates[rand.Intn(len(weekDates))],
				Time:      clockTimes[rand.Intn(len(clockTimes))],
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}

	insertResult, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert reminders: %v", err)
	}
	fmt.Printf("Inserted %d reminders for %d users\n", len(insertResult.InsertedIDs), len(users))
}
