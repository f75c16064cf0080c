package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	usersCollection := db.Collection("users")
	notesCollection := db.Collection("notes")
	ratingsCollection := db.Collection("ratings")
	categoriesCollection := db.Collection("categories")
	reputationCollection := db.Collection("reputation_events")

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true),
		},
	}

	noteIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "uploader_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("uploader_notes_date"),
		},
		// Public listing sorted by rating
		{
			Keys: bson.D{
				{Key: "is_public", Value: 1},
				{Key: "average_rating", Value: -1},
			},
			Options: options.Index().
				SetName("public_notes_by_rating"),
		},
		{
			Keys: bson.D{{Key: "category_id", Value: 1}},
			Options: options.Index().
				SetName("notes_by_category"),
		},
		// Text search index
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "tags", Value: "text"},
			},
			Options: options.Index().
				SetName("text_search").
				SetDefaultLanguage("english").
				SetWeights(bson.D{
					{Key: "title", Value: 10},
					{Key: "description", Value: 5},
					{Key: "tags", Value: 3},
				}),
		},
	}

	ratingIndexes := []mongo.IndexModel{
		// One rating per (note, user) pair. The upsert in RatingsRepo
		// relies on this to never produce duplicates.
		{
			Keys: bson.D{
				{Key: "note_id", Value: 1},
				{Key: "user_id", Value: 1},
			},
			Options: options.Index().
				SetName("note_user_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "note_id", Value: 1}},
			Options: options.Index().
				SetName("ratings_by_note"),
		},
	}

	categoryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetName("category_name_unique").
				SetUnique(true),
		},
	}

	reputationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("ledger_by_user_date"),
		},
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	if _, err := notesCollection.Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create notes indexes: %w", err)
	}
	if _, err := ratingsCollection.Indexes().CreateMany(ctx, ratingIndexes); err != nil {
		return fmt.Errorf("failed to create ratings indexes: %w", err)
	}
	if _, err := categoriesCollection.Indexes().CreateMany(ctx, categoryIndexes); err != nil {
		return fmt.Errorf("failed to create category indexes: %w", err)
	}
	if _, err := reputationCollection.Indexes().CreateMany(ctx, reputationIndexes); err != nil {
		return fmt.Errorf("failed to create reputation ledger indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
