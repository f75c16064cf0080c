package repository

import (
	"context"
	"testing"
	"time"

	"edushare/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupUserRepo(t *testing.T) (*UserRepo, func()) {
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	db := client.Database("edushare_test")
	if err := SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	repo := GetUserRepo(client)
	cleanup := func() {
		if err := db.Collection("users").Drop(context.Background()); err != nil {
			t.Errorf("Failed to clean up users collection: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}
	return repo, cleanup
}

func insertUser(t *testing.T, repo *UserRepo, reputation int, active bool) *model.User {
	t.Helper()
	user := &model.User{
		UserID:     uuid.New().String(),
		Username:   "user-" + uuid.New().String()[:8],
		Email:      uuid.New().String()[:8] + "@school.edu",
		Password:   "hashed",
		UserType:   model.UserTypeStudent,
		Reputation: reputation,
		IsActive:   active,
		CreatedAt:  time.Now(),
	}
	if _, err := repo.AddUser(context.Background(), user); err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
	return user
}

func TestTopByReputation(t *testing.T) {
	repo, cleanup := setupUserRepo(t)
	defer cleanup()
	ctx := context.Background()

	leader := insertUser(t, repo, 90, true)
	runnerUp := insertUser(t, repo, 40, true)
	insertUser(t, repo, 10, true)
	insertUser(t, repo, 500, false) // pending accounts never rank

	t.Run("OrderedAndLimited", func(t *testing.T) {
		users, err := repo.TopByReputation(ctx, 2)
		if err != nil {
			t.Fatalf("TopByReputation failed: %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("got %d users, want 2", len(users))
		}
		if users[0].UserID != leader.UserID || users[1].UserID != runnerUp.UserID {
			t.Errorf("order = (%d, %d), want (90, 40)",
				users[0].Reputation, users[1].Reputation)
		}
	})

	t.Run("ExcludesInactive", func(t *testing.T) {
		users, err := repo.TopByReputation(ctx, 10)
		if err != nil {
			t.Fatalf("TopByReputation failed: %v", err)
		}
		for _, user := range users {
			if !user.IsActive {
				t.Errorf("inactive user %s on leaderboard", user.Username)
			}
		}
	})
}

func TestCountActiveUsers(t *testing.T) {
	repo, cleanup := setupUserRepo(t)
	defer cleanup()
	ctx := context.Background()

	insertUser(t, repo, 0, true)
	insertUser(t, repo, 0, true)
	insertUser(t, repo, 0, false)

	count, err := repo.CountActiveUsers(ctx)
	if err != nil {
		t.Fatalf("CountActiveUsers failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestSetActive(t *testing.T) {
	repo, cleanup := setupUserRepo(t)
	defer cleanup()
	ctx := context.Background()

	pending := insertUser(t, repo, 0, false)
	if err := repo.SetActive(ctx, pending.UserID, true); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	stored, err := repo.FindUser(ctx, pending.UserID)
	if err != nil {
		t.Fatalf("FindUser failed: %v", err)
	}
	if !stored.IsActive {
		t.Error("user still inactive after SetActive")
	}

	if err := repo.SetActive(ctx, "no-such-user", true); err == nil {
		t.Error("SetActive on unknown user succeeded, want error")
	}
}
