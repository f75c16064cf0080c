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

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("users"),
	}
}

func (r *UserRepo) AddUser(ctx context.Context, user *model.User) (interface{}, error) {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Username == "" || user.Password == "" {
		utils.TrackError("database", "invalid_user_data")
		return nil, errors.New("username and password required")
	}

	result, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.New("username or email already exists")
		}
		utils.TrackError("database", "user_creation_failed")
		return nil, fmt.Errorf("failed to add user: %w", err)
	}
	return result.InsertedID, nil
}

// FindUser returns the user by ID, or nil when no such user exists.
func (r *UserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// ApplyReputationDelta adds delta to the user's reputation counter. The
// $inc keeps the read-modify-write inside a single atomic document update,
// so concurrent raters never overwrite each other's adjustments. There is
// no floor or ceiling; reputation may go negative.
func (r *UserRepo) ApplyReputationDelta(ctx context.Context, userID string, delta int) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$inc": bson.M{"reputation": delta}})
	if err != nil {
		utils.TrackError("database", "reputation_update_failed")
		return fmt.Errorf("failed to apply reputation delta: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}

// TopByReputation returns the highest-reputation active users, for the
// leaderboard. Pending accounts are excluded.
func (r *UserRepo) TopByReputation(ctx context.Context, limit int) ([]*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	opts := options.Find().
		SetSort(bson.D{{Key: "reputation", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list top users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// CountActiveUsers counts approved accounts.
func (r *UserRepo) CountActiveUsers(ctx context.Context) (int, error) {
	timer := utils.TrackDBOperation("count", "users")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return int(count), nil
}

// SetActive flips account activation. Admin approval of pending teacher
// accounts goes through this.
func (r *UserRepo) SetActive(ctx context.Context, userID string, active bool) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"is_active": active}})
	if err != nil {
		return fmt.Errorf("failed to set active flag: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}

// RecordLogin stamps the last login time and the device the user signed
// in from.
func (r *UserRepo) RecordLogin(ctx context.Context, userID, device string, at time.Time) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"last_login_at": at, "last_login_device": device}})
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	return nil
}
