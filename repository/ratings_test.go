package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	os.Setenv("GO_ENV", "test")
	os.Setenv("MONGO_DB", "edushare_test")
}

func setupRatingsRepo(t *testing.T) (*RatingsRepo, func()) {
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	db := client.Database("edushare_test")
	if err := SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	repo := GetRatingsRepo(client)
	cleanup := func() {
		if err := db.Collection("ratings").Drop(context.Background()); err != nil {
			t.Errorf("Failed to clean up ratings collection: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}
	return repo, cleanup
}

func TestRatingsUpsert(t *testing.T) {
	repo, cleanup := setupRatingsRepo(t)
	defer cleanup()
	ctx := context.Background()

	noteID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("CreatesOnFirstSubmission", func(t *testing.T) {
		old, current, created, err := repo.Upsert(ctx, noteID, userID, 4)
		if err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		if !created {
			t.Error("created = false, want true")
		}
		if old != nil {
			t.Errorf("old = %+v, want nil on first submission", old)
		}
		if current.Value != 4 {
			t.Errorf("current value = %d, want 4", current.Value)
		}
		if current.NoteID != noteID || current.UserID != userID {
			t.Errorf("current keys = (%s,%s), want (%s,%s)",
				current.NoteID, current.UserID, noteID, userID)
		}
	})

	t.Run("UpdatesInPlaceAndReturnsPreImage", func(t *testing.T) {
		old, current, created, err := repo.Upsert(ctx, noteID, userID, 1)
		if err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		if created {
			t.Error("created = true, want false on resubmission")
		}
		if old == nil || old.Value != 4 {
			t.Fatalf("old = %+v, want pre-image with value 4", old)
		}
		if current.Value != 1 {
			t.Errorf("current value = %d, want 1", current.Value)
		}
		if old.ID != current.ID {
			t.Errorf("rating identity changed on update: %s -> %s", old.ID, current.ID)
		}
	})

	t.Run("RejectsOutOfRangeValues", func(t *testing.T) {
		for _, value := range []int{0, 6, -1, 100} {
			if _, _, _, err := repo.Upsert(ctx, noteID, userID, value); err == nil {
				t.Errorf("Upsert(%d) succeeded, want out-of-range error", value)
			}
		}
	})

	t.Run("OneRatingPerPair", func(t *testing.T) {
		count, err := repo.CountByNote(ctx, noteID)
		if err != nil {
			t.Fatalf("CountByNote failed: %v", err)
		}
		if count != 1 {
			t.Errorf("count = %d, want 1", count)
		}
	})
}

func TestRatingsFind(t *testing.T) {
	repo, cleanup := setupRatingsRepo(t)
	defer cleanup()
	ctx := context.Background()

	noteID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("MissingRatingIsNil", func(t *testing.T) {
		rating, err := repo.Find(ctx, noteID, userID)
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}
		if rating != nil {
			t.Errorf("rating = %+v, want nil", rating)
		}
	})

	t.Run("FindsStoredRating", func(t *testing.T) {
		if _, _, _, err := repo.Upsert(ctx, noteID, userID, 3); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		rating, err := repo.Find(ctx, noteID, userID)
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}
		if rating == nil || rating.Value != 3 {
			t.Errorf("rating = %+v, want value 3", rating)
		}
	})
}

func TestRatingsDeleteByNote(t *testing.T) {
	repo, cleanup := setupRatingsRepo(t)
	defer cleanup()
	ctx := context.Background()

	noteID := uuid.New().String()
	for i := 0; i < 3; i++ {
		if _, _, _, err := repo.Upsert(ctx, noteID, uuid.New().String(), 5); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}
	otherNote := uuid.New().String()
	if _, _, _, err := repo.Upsert(ctx, otherNote, uuid.New().String(), 2); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	deleted, err := repo.DeleteByNote(ctx, noteID)
	if err != nil {
		t.Fatalf("DeleteByNote failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted = %d, want 3", deleted)
	}

	remaining, err := repo.CountByNote(ctx, otherNote)
	if err != nil {
		t.Fatalf("CountByNote failed: %v", err)
	}
	if remaining != 1 {
		t.Errorf("other note's ratings = %d, want 1 (cascade must be scoped)", remaining)
	}
}

func TestRatingsListByNote(t *testing.T) {
	repo, cleanup := setupRatingsRepo(t)
	defer cleanup()
	ctx := context.Background()

	noteID := uuid.New().String()
	values := []int{5, 1, 3}
	for _, value := range values {
		if _, _, _, err := repo.Upsert(ctx, noteID, uuid.New().String(), value); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	ratings, err := repo.ListByNote(ctx, noteID)
	if err != nil {
		t.Fatalf("ListByNote failed: %v", err)
	}
	if len(ratings) != len(values) {
		t.Fatalf("got %d ratings, want %d", len(ratings), len(values))
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating.Value
	}
	if sum != 9 {
		t.Errorf("sum of values = %d, want 9", sum)
	}
}
