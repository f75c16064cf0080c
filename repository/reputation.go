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

// ReputationRepo holds the append-only reputation ledger. Entries are
// never updated or deleted.
type ReputationRepo struct {
	MongoCollection *mongo.Collection
}

func GetReputationRepo(client *mongo.Client) *ReputationRepo {
	return &ReputationRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("reputation_events"),
	}
}

func (r *ReputationRepo) Append(ctx context.Context, event *model.ReputationEvent) error {
	timer := utils.TrackDBOperation("insert", "reputation_events")
	defer timer.ObserveDuration()

	event.CreatedAt = time.Now()
	_, err := r.MongoCollection.InsertOne(ctx, event)
	if err != nil {
		utils.TrackError("database", "ledger_append_failed")
		return fmt.Errorf("failed to append reputation event: %w", err)
	}
	return nil
}

// ListByUser returns a user's ledger entries, newest first.
func (r *ReputationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.ReputationEvent, error) {
	timer := utils.TrackDBOperation("find", "reputation_events")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reputation events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*model.ReputationEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode reputation events: %w", err)
	}
	return events, nil
}

// CountByUser counts a user's ledger entries.
func (r *ReputationRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "reputation_events")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count reputation events: %w", err)
	}
	return int(count), nil
}
