package usecase

import (
	"context"
	"fmt"
	"strings"

	"edushare/model"
	"edushare/repository"
	"edushare/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type NotesService struct {
	Client          *mongo.Client
	NotesRepo       *repository.NotesRepo
	RatingsRepo     *repository.RatingsRepo
	UserRepo        *repository.UserRepo
	Reputation      *ReputationService
	UseTransactions bool
}

func (s *NotesService) validateNote(note *model.Note) error {
	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		return fmt.Errorf("%w: note title is required", ErrValidation)
	}
	if len(note.Title) > 255 {
		return fmt.Errorf("%w: note title exceeds maximum length", ErrValidation)
	}

	if strings.TrimSpace(note.Description) == "" {
		return fmt.Errorf("%w: note description is required", ErrValidation)
	}

	// Normalize tags
	normalizedTags := make([]string, 0)
	for _, tag := range note.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalizedTags = append(normalizedTags, trimmed)
		}
	}
	note.Tags = normalizedTags
	if len(note.Tags) > 10 {
		return fmt.Errorf("%w: maximum 10 tags allowed", ErrValidation)
	}

	return nil
}

// CreateNote stores the note and credits the uploader's reputation.
func (s *NotesService) CreateNote(ctx context.Context, note *model.Note) error {
	if err := s.validateNote(note); err != nil {
		return err
	}

	uploader, err := s.UserRepo.FindUser(ctx, note.UploaderID)
	if err != nil {
		return err
	}
	if uploader == nil {
		return fmt.Errorf("%w: user %s", ErrNotFound, note.UploaderID)
	}

	if note.ID == "" {
		note.ID = utils.GenerateID()
	}
	if err := s.NotesRepo.CreateNote(ctx, note); err != nil {
		return err
	}

	if err := s.Reputation.OnNoteCreated(ctx, note.UploaderID); err != nil {
		return err
	}

	utils.NotesOperationsTotal.WithLabelValues("create").Inc()
	return nil
}

// GetNote returns a note the acting user may see, together with that
// user's own rating when one exists. actingUserID may be empty for
// anonymous readers.
func (s *NotesService) GetNote(ctx context.Context, noteID, actingUserID string) (*model.Note, *model.Rating, error) {
	note, err := s.NotesRepo.GetNote(ctx, noteID)
	if err != nil {
		return nil, nil, err
	}
	if note == nil {
		return nil, nil, fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}

	var actingUser *model.User
	if actingUserID != "" {
		actingUser, err = s.UserRepo.FindUser(ctx, actingUserID)
		if err != nil {
			return nil, nil, err
		}
	}
	if !CanViewNote(actingUser, note) {
		return nil, nil, fmt.Errorf("%w: note is not public", ErrForbidden)
	}

	var userRating *model.Rating
	if actingUserID != "" {
		userRating, err = s.RatingsRepo.Find(ctx, noteID, actingUserID)
		if err != nil {
			return nil, nil, err
		}
	}
	return note, userRating, nil
}

// UpdateNote applies edits when the acting user is the uploader or a
// teacher.
func (s *NotesService) UpdateNote(ctx context.Context, noteID, actingUserID string, updates *model.Note) error {
	note, err := s.NotesRepo.GetNote(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}

	actingUser, err := s.UserRepo.FindUser(ctx, actingUserID)
	if err != nil {
		return err
	}
	if actingUser == nil {
		return fmt.Errorf("%w: user %s", ErrNotFound, actingUserID)
	}
	if !CanManageNote(actingUser, note) {
		return fmt.Errorf("%w: only the uploader or a teacher may edit this note", ErrForbidden)
	}

	if err := s.validateNote(updates); err != nil {
		return err
	}
	if err := s.NotesRepo.UpdateNote(ctx, noteID, updates); err != nil {
		return err
	}

	utils.NotesOperationsTotal.WithLabelValues("update").Inc()
	return nil
}

// DeleteNote removes the note, cascades its ratings and debits the
// uploader's reputation. The cascade means deleted notes leave no rating
// rows behind to skew future recomputes.
func (s *NotesService) DeleteNote(ctx context.Context, noteID, actingUserID string) error {
	note, err := s.NotesRepo.GetNote(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}

	actingUser, err := s.UserRepo.FindUser(ctx, actingUserID)
	if err != nil {
		return err
	}
	if actingUser == nil {
		return fmt.Errorf("%w: user %s", ErrNotFound, actingUserID)
	}
	if !CanManageNote(actingUser, note) {
		return fmt.Errorf("%w: only the uploader or a teacher may delete this note", ErrForbidden)
	}

	// Rating cascade, note removal and the reputation debit commit or
	// roll back together, same as a rating submission.
	err = runAtomic(ctx, s.Client, s.UseTransactions, func(ctx context.Context) error {
		if _, err := s.RatingsRepo.DeleteByNote(ctx, noteID); err != nil {
			return err
		}
		if err := s.NotesRepo.DeleteNote(ctx, noteID); err != nil {
			return err
		}
		return s.Reputation.OnNoteDeleted(ctx, note.UploaderID)
	})
	if err != nil {
		return err
	}

	utils.NotesOperationsTotal.WithLabelValues("delete").Inc()
	return nil
}

// ListPublicNotes pages through public notes, optionally sorted by rating.
func (s *NotesService) ListPublicNotes(ctx context.Context, opts repository.ListOptions) ([]*model.Note, int, error) {
	notes, err := s.NotesRepo.ListPublicNotes(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return paginate(notes, opts.Page, opts.PageSize)
}

// SearchPublicNotes searches public notes by title, description or tags.
func (s *NotesService) SearchPublicNotes(ctx context.Context, query string, page, pageSize int) ([]*model.Note, int, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, 0, fmt.Errorf("%w: search query must be at least 2 characters", ErrValidation)
	}

	notes, err := s.NotesRepo.SearchPublicNotes(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return paginate(notes, page, pageSize)
}

// MyNotes lists all of the acting user's own notes, public or not.
func (s *NotesService) MyNotes(ctx context.Context, uploaderID string) ([]*model.Note, error) {
	return s.NotesRepo.GetUserNotes(ctx, uploaderID)
}

func paginate(notes []*model.Note, page, pageSize int) ([]*model.Note, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}

	totalCount := len(notes)
	start := (page - 1) * pageSize
	if start >= totalCount {
		return []*model.Note{}, totalCount, nil
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}
	return notes[start:end], totalCount, nil
}
