package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"edushare/model"
	"edushare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

// ListOptions controls public listings and search.
type ListOptions struct {
	Query      string // text search across title/description/tags
	CategoryID string
	SortBy     string // "rating" or "created_at"
	Page       int
	PageSize   int
}

// CreateNote inserts a new note with zeroed rating aggregates.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UploaderID == "" {
		return errors.New("uploader ID is required")
	}

	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	note.AverageRating = 0
	note.TotalRatings = 0

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// GetNote retrieves a note by ID, or nil when it does not exist.
func (r *NotesRepo) GetNote(ctx context.Context, noteID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return &note, nil
}

// GetUserNotes retrieves all notes uploaded by a user, newest first.
func (r *NotesRepo) GetUserNotes(ctx context.Context, uploaderID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"uploader_id": uploaderID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list user notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// ListPublicNotes lists public notes, newest first or by average rating
// when opts.SortBy is "rating".
func (r *NotesRepo) ListPublicNotes(ctx context.Context, opts ListOptions) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"is_public": true}
	if opts.CategoryID != "" {
		filter["category_id"] = opts.CategoryID
	}

	sort := bson.D{{Key: "created_at", Value: -1}}
	if opts.SortBy == "rating" {
		sort = bson.D{{Key: "average_rating", Value: -1}, {Key: "total_ratings", Value: -1}}
	}

	cursor, err := r.MongoCollection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to list public notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// SearchPublicNotes runs a full-text search over title, description and
// tags, best match first. Field weights come from the text_search index.
func (r *NotesRepo) SearchPublicNotes(ctx context.Context, query string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"is_public": true,
		"$text":     bson.M{"$search": query},
	}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// UpdateNote applies content edits. Rating aggregates are deliberately not
// part of the $set: those fields belong to UpdateRatingStats alone.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID string, updates *model.Note) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	updates.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":       updates.Title,
			"description": updates.Description,
			"file_url":    updates.FileURL,
			"category_id": updates.CategoryID,
			"tags":        updates.Tags,
			"is_public":   updates.IsPublic,
			"updated_at":  updates.UpdatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": noteID}, update)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("note not found")
	}
	return nil
}

// UpdateRatingStats writes the recomputed aggregates back to the note.
// Only the rating engine calls this.
func (r *NotesRepo) UpdateRatingStats(ctx context.Context, noteID string, average float64, total int) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": noteID},
		bson.M{"$set": bson.M{"average_rating": average, "total_ratings": total}})
	if err != nil {
		utils.TrackError("database", "note_stats_update_failed")
		return fmt.Errorf("failed to update note rating stats: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("note not found")
	}
	return nil
}

// DeleteNote removes a note. Rating cascade is the caller's job so it can
// run in the same transaction.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": noteID})
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if result.DeletedCount == 0 {
		return errors.New("note not found")
	}
	return nil
}

// GetNotesByCategory retrieves every note filed under a category,
// public or not. The category-deletion cascade walks this list.
func (r *NotesRepo) GetNotesByCategory(ctx context.Context, categoryID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return nil, fmt.Errorf("failed to list notes by category: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// TopRatedPublicNotes returns the best-rated public notes for the
// dashboard.
func (r *NotesRepo) TopRatedPublicNotes(ctx context.Context, limit int) ([]*model.Note, error) {
	return r.publicNotesSorted(ctx,
		bson.D{{Key: "average_rating", Value: -1}, {Key: "total_ratings", Value: -1}}, limit)
}

// RecentPublicNotes returns the newest public notes for the dashboard.
func (r *NotesRepo) RecentPublicNotes(ctx context.Context, limit int) ([]*model.Note, error) {
	return r.publicNotesSorted(ctx, bson.D{{Key: "created_at", Value: -1}}, limit)
}

func (r *NotesRepo) publicNotesSorted(ctx context.Context, sort bson.D, limit int) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(sort).SetLimit(int64(limit))
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"is_public": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list public notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// CountNotes counts every note, public or private.
func (r *NotesRepo) CountNotes(ctx context.Context) (int, error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return int(count), nil
}

// CountNotesByCategory groups note counts per category ID. Notes without
// a category are keyed under the empty string.
func (r *NotesRepo) CountNotesByCategory(ctx context.Context) (map[string]int, error) {
	timer := utils.TrackDBOperation("aggregate", "notes")
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$category_id",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count notes by category: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		CategoryID string `bson:"_id"`
		Count      int    `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode category counts: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}

// CountUserNotes counts the notes uploaded by a user.
func (r *NotesRepo) CountUserNotes(ctx context.Context, uploaderID string) (int, error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"uploader_id": uploaderID})
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return int(count), nil
}
