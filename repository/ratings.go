package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"edushare/model"
	"edushare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RatingsRepo stores one rating per (note, user) pair. The pair is also
// guarded by a unique compound index, see SetupIndexes.
type RatingsRepo struct {
	MongoCollection *mongo.Collection
}

func GetRatingsRepo(client *mongo.Client) *RatingsRepo {
	return &RatingsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("ratings"),
	}
}

// Upsert creates or replaces the rating for (noteID, userID) and returns the
// pre-image when one existed. Callers need the old value to reverse the
// reputation delta it produced before applying the new one.
func (r *RatingsRepo) Upsert(ctx context.Context, noteID, userID string, value int) (old *model.Rating, current *model.Rating, created bool, err error) {
	if value < model.MinRatingValue || value > model.MaxRatingValue {
		return nil, nil, false, fmt.Errorf("rating value %d out of range [%d,%d]",
			value, model.MinRatingValue, model.MaxRatingValue)
	}

	timer := utils.TrackDBOperation("upsert", "ratings")
	defer timer.ObserveDuration()

	now := time.Now()
	filter := bson.M{"note_id": noteID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{"value": value, "updated_at": now},
		"$setOnInsert": bson.M{
			"_id":        utils.GenerateID(),
			"note_id":    noteID,
			"user_id":    userID,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var before model.Rating
	findErr := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&before)
	if findErr != nil {
		if findErr != mongo.ErrNoDocuments {
			utils.TrackError("database", "rating_upsert_failed")
			return nil, nil, false, fmt.Errorf("failed to upsert rating: %w", findErr)
		}
		// No pre-image: the rating was just created.
		created = true
	} else {
		old = &before
	}

	current, err = r.Find(ctx, noteID, userID)
	if err != nil {
		return nil, nil, false, err
	}
	if current == nil {
		return nil, nil, false, fmt.Errorf("rating missing after upsert for note %s", noteID)
	}
	return old, current, created, nil
}

// Find returns the rating for (noteID, userID), or nil when the user has
// not rated the note.
func (r *RatingsRepo) Find(ctx context.Context, noteID, userID string) (*model.Rating, error) {
	timer := utils.TrackDBOperation("find", "ratings")
	defer timer.ObserveDuration()

	var rating model.Rating
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"note_id": noteID, "user_id": userID}).Decode(&rating)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "rating_lookup_error")
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}
	return &rating, nil
}

// ListByNote returns every rating for a note, oldest first.
func (r *RatingsRepo) ListByNote(ctx context.Context, noteID string) ([]*model.Rating, error) {
	timer := utils.TrackDBOperation("find", "ratings")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"note_id": noteID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []*model.Rating
	if err = cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("failed to decode ratings: %w", err)
	}
	return ratings, nil
}

// DeleteByNote removes all ratings for a note. Used by the note-deletion
// cascade.
func (r *RatingsRepo) DeleteByNote(ctx context.Context, noteID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "ratings")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"note_id": noteID})
	if err != nil {
		utils.TrackError("database", "rating_cascade_failed")
		return 0, fmt.Errorf("failed to delete ratings for note: %w", err)
	}
	return result.DeletedCount, nil
}

// CountByNote counts the ratings currently stored for a note.
func (r *RatingsRepo) CountByNote(ctx context.Context, noteID string) (int, error) {
	timer := utils.TrackDBOperation("count", "ratings")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"note_id": noteID})
	if err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	return int(count), nil
}
