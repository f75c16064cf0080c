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

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

func GetCategoriesRepo(client *mongo.Client) *CategoriesRepo {
	return &CategoriesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("categories"),
	}
}

func (r *CategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	category.CreatedAt = time.Now()
	_, err := r.MongoCollection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("category name already exists")
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoriesRepo) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var category model.Category
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

func (r *CategoriesRepo) UpdateCategory(ctx context.Context, categoryID string, updates *model.Category) error {
	timer := utils.TrackDBOperation("update", "categories")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"name":        updates.Name,
			"description": updates.Description,
			"parent_id":   updates.ParentID,
		},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": categoryID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("category name already exists")
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("category not found")
	}
	return nil
}

func (r *CategoriesRepo) DeleteCategory(ctx context.Context, categoryID string) error {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": categoryID})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return errors.New("category not found")
	}
	return nil
}

// DetachChildren clears the parent reference on every subcategory of the
// given category. Called when the parent is deleted so children survive
// as top-level categories.
func (r *CategoriesRepo) DetachChildren(ctx context.Context, parentID string) error {
	timer := utils.TrackDBOperation("update", "categories")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"parent_id": parentID},
		bson.M{"$unset": bson.M{"parent_id": ""}})
	if err != nil {
		return fmt.Errorf("failed to detach subcategories: %w", err)
	}
	return nil
}

// CountCategories counts every category.
func (r *CategoriesRepo) CountCategories(ctx context.Context) (int, error) {
	timer := utils.TrackDBOperation("count", "categories")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return int(count), nil
}

// GetAllCategories lists every category sorted by name.
func (r *CategoriesRepo) GetAllCategories(ctx context.Context) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*model.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}
