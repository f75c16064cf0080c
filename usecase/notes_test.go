package usecase

import (
	"context"
	"errors"
	"testing"

	"edushare/model"
)

func TestCreateNoteCreditsUploader(t *testing.T) {
	f, cleanup := setupRatingsTest(t)
	defer cleanup()
	ctx := context.Background()

	uploader := f.newUser(t, model.UserTypeStudent)
	note := &model.Note{
		UploaderID:  uploader.UserID,
		Title:       "Chemistry Notes",
		Description: "Periodic table overview",
		IsPublic:    true,
	}
	if err := f.notes.CreateNote(ctx, note); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if got := f.reputationOf(t, uploader.UserID); got != 10 {
		t.Errorf("reputation = %d, want 10", got)
	}
	if note.ID == "" {
		t.Error("CreateNote must assign an ID")
	}

	fresh, err := f.notesRepo.GetNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if fresh.AverageRating != 0 || fresh.TotalRatings != 0 {
		t.Errorf("new note stats = (%v,%d), want zeroes", fresh.AverageRating, fresh.TotalRatings)
	}
}

func TestCreateNoteValidation(t *testing.T) {
	f, cleanup := setupRatingsTest(t)
	defer cleanup()
	ctx := context.Background()

	uploader := f.newUser(t, model.UserTypeStudent)

	tests := []struct {
		name string
		note *model.Note
	}{
		{"MissingTitle", &model.Note{UploaderID: uploader.UserID, Description: "desc"}},
		{"WhitespaceDescription", &model.Note{UploaderID: uploader.UserID, Title: "Title", Description: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.notes.CreateNote(ctx, tt.note)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}

	// Validation failures never touch reputation.
	if got := f.reputationOf(t, uploader.UserID); got != 0 {
		t.Errorf("reputation = %d, want 0", got)
	}
}

func TestDeleteNotePermissions(t *testing.T) {
	f, cleanup := setupRatingsTest(t)
	defer cleanup()
	ctx := context.Background()

	uploader := f.newUser(t, model.UserTypeStudent)
	stranger := f.newUser(t, model.UserTypeStudent)
	teacher := f.newUser(t, model.UserTypeTeacher)

	t.Run("StrangerCannotDelete", func(t *testing.T) {
		note := f.newNote(t, uploader.UserID)
		err := f.notes.DeleteNote(ctx, note.ID, stranger.UserID)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("TeacherCanDelete", func(t *testing.T) {
		note := f.newNote(t, uploader.UserID)
		before := f.reputationOf(t, uploader.UserID)
		if err := f.notes.DeleteNote(ctx, note.ID, teacher.UserID); err != nil {
			t.Fatalf("DeleteNote by teacher failed: %v", err)
		}
		// The uploader, not the deleting teacher, loses the credit.
		if got := f.reputationOf(t, uploader.UserID); got != before-10 {
			t.Errorf("uploader reputation = %d, want %d", got, before-10)
		}
		if got := f.reputationOf(t, teacher.UserID); got != 0 {
			t.Errorf("teacher reputation = %d, want 0", got)
		}
	})
}

func TestUpdateNotePermissions(t *testing.T) {
	f, cleanup := setupRatingsTest(t)
	defer cleanup()
	ctx := context.Background()

	uploader := f.newUser(t, model.UserTypeStudent)
	stranger := f.newUser(t, model.UserTypeStudent)
	note := f.newNote(t, uploader.UserID)

	updates := &model.Note{
		Title:       "Updated Title",
		Description: "Updated description",
		IsPublic:    true,
	}

	if err := f.notes.UpdateNote(ctx, note.ID, stranger.UserID, updates); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for stranger, got %v", err)
	}
	if err := f.notes.UpdateNote(ctx, note.ID, uploader.UserID, updates); err != nil {
		t.Errorf("UpdateNote by uploader failed: %v", err)
	}

	fresh, err := f.notesRepo.GetNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if fresh.Title != "Updated Title" {
		t.Errorf("title = %q, want %q", fresh.Title, "Updated Title")
	}
}

func TestGetNotePrivateVisibility(t *testing.T) {
	f, cleanup := setupRatingsTest(t)
	defer cleanup()
	ctx := context.Background()

	uploader := f.newUser(t, model.UserTypeStudent)
	stranger := f.newUser(t, model.UserTypeStudent)

	note := &model.Note{
		ID:          "private-note",
		UploaderID:  uploader.UserID,
		Title:       "Private Draft",
		Description: "Not ready yet",
		IsPublic:    false,
	}
	if err := f.notesRepo.CreateNote(ctx, note); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if _, _, err := f.notes.GetNote(ctx, note.ID, stranger.UserID); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for stranger, got %v", err)
	}
	if _, _, err := f.notes.GetNote(ctx, note.ID, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for anonymous, got %v", err)
	}
	if _, _, err := f.notes.GetNote(ctx, note.ID, uploader.UserID); err != nil {
		t.Errorf("GetNote by uploader failed: %v", err)
	}
}

func TestGetNoteIncludesViewerRating(t *testing.T) {
	f, cleanup := setupRatingsTest(t)
	defer cleanup()
	ctx := context.Background()

	uploader := f.newUser(t, model.UserTypeStudent)
	rater := f.newUser(t, model.UserTypeStudent)
	note := f.newNote(t, uploader.UserID)

	if _, err := f.ratings.SubmitRating(ctx, note.ID, rater.UserID, 4); err != nil {
		t.Fatalf("SubmitRating failed: %v", err)
	}

	_, rating, err := f.notes.GetNote(ctx, note.ID, rater.UserID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if rating == nil || rating.Value != 4 {
		t.Errorf("viewer rating = %+v, want value 4", rating)
	}

	_, rating, err = f.notes.GetNote(ctx, note.ID, "")
	if err != nil {
		t.Fatalf("GetNote anonymous failed: %v", err)
	}
	if rating != nil {
		t.Errorf("anonymous viewer rating = %+v, want nil", rating)
	}
}
