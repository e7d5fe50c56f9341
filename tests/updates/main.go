package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reminders written before timestamps were tracked have no created_at or
// updated_at field. Stamp both with the current time so every document
// renders a valid timestamp in API responses.
func main() {
	// Create a context with timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect to MongoDB. Adjust the URI as necessary.
	clientOptions := options.Client().ApplyURI("mongodb://localhost:27017")
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database("remindly").Collection("reminders")

	now := time.Now().UTC()
	res, err := coll.UpdateMany(ctx,
		bson.M{"created_at": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"created_at": now, "updated_at": now}},
	)
	if err != nil {
		log.Fatalf("Error backfilling timestamps: %v", err)
	}
	fmt.Printf("Backfilled timestamps on %d reminders\n", res.ModifiedCount)
}
