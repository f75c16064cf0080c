package usecase

import (
	"context"
	"fmt"
	"log"

	"edushare/dto"
	"edushare/model"
	"edushare/repository"
	"edushare/services"
	"edushare/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// RatingsService is the rating-aggregation and reputation-scoring engine.
// It owns the orchestration of a rating submission: store the rating,
// recompute the note's aggregates, adjust the uploader's reputation. The
// recompute call is always explicit here, never a storage-layer hook, so
// the dependency is visible in the call graph.
type RatingsService struct {
	Client          *mongo.Client
	RatingsRepo     *repository.RatingsRepo
	NotesRepo       *repository.NotesRepo
	UserRepo        *repository.UserRepo
	Reputation      *ReputationService
	StatsCache      *services.NoteStatsCache
	UseTransactions bool
}

// SubmitRating records the user's rating for a note and returns the fresh
// aggregates. A resubmission updates the existing rating; the uploader's
// reputation is adjusted by the net of reversing the old value's delta and
// applying the new one.
func (s *RatingsService) SubmitRating(ctx context.Context, noteID, userID string, value int) (*dto.RatingResponse, error) {
	if value < model.MinRatingValue || value > model.MaxRatingValue {
		utils.TrackRatingSubmission("rejected")
		return nil, fmt.Errorf("%w: rating value must be between %d and %d",
			ErrValidation, model.MinRatingValue, model.MaxRatingValue)
	}

	note, err := s.NotesRepo.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}

	user, err := s.UserRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	if note.UploaderID == userID {
		utils.TrackRatingSubmission("rejected")
		return nil, fmt.Errorf("%w: users cannot rate their own notes", ErrForbidden)
	}

	var result dto.RatingResponse
	err = runAtomic(ctx, s.Client, s.UseTransactions, func(ctx context.Context) error {
		old, current, created, err := s.RatingsRepo.Upsert(ctx, noteID, userID, value)
		if err != nil {
			return err
		}

		average, total, err := s.RecomputeNoteStats(ctx, noteID)
		if err != nil {
			return err
		}

		if created {
			err = s.Reputation.Apply(ctx, note.UploaderID, model.EventRatingNew, ratingDelta(value))
		} else {
			err = s.Reputation.Apply(ctx, note.UploaderID, model.EventRatingChanged,
				ratingChangeDelta(old.Value, current.Value))
		}
		if err != nil {
			return err
		}

		result = dto.RatingResponse{
			AverageRating: average,
			TotalRatings:  total,
			UserRating:    current.Value,
		}
		if created {
			utils.TrackRatingSubmission("created")
		} else {
			utils.TrackRatingSubmission("updated")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStatsCache(ctx, noteID)
	return &result, nil
}

// RecomputeNoteStats derives total_ratings and average_rating from the
// note's live rating set and writes them back. Idempotent: with an
// unchanged rating set, repeated calls produce identical values.
func (s *RatingsService) RecomputeNoteStats(ctx context.Context, noteID string) (float64, int, error) {
	ratings, err := s.RatingsRepo.ListByNote(ctx, noteID)
	if err != nil {
		return 0, 0, err
	}

	total := len(ratings)
	average := 0.0
	if total > 0 {
		sum := 0
		for _, rating := range ratings {
			sum += rating.Value
		}
		average = float64(sum) / float64(total)
	}

	if err := s.NotesRepo.UpdateRatingStats(ctx, noteID, average, total); err != nil {
		return 0, 0, err
	}
	return average, total, nil
}

// GetNoteStats returns a note's aggregates, served from the Redis cache
// when possible.
func (s *RatingsService) GetNoteStats(ctx context.Context, noteID string) (float64, int, error) {
	if s.StatsCache != nil {
		if stats, err := s.StatsCache.Get(ctx, noteID); err != nil {
			log.Printf("note stats cache read failed: %v", err)
		} else if stats != nil {
			return stats.AverageRating, stats.TotalRatings, nil
		}
	}

	note, err := s.NotesRepo.GetNote(ctx, noteID)
	if err != nil {
		return 0, 0, err
	}
	if note == nil {
		return 0, 0, fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}

	if s.StatsCache != nil {
		if err := s.StatsCache.Set(ctx, noteID, note.AverageRating, note.TotalRatings); err != nil {
			log.Printf("note stats cache write failed: %v", err)
		}
	}
	return note.AverageRating, note.TotalRatings, nil
}

func (s *RatingsService) invalidateStatsCache(ctx context.Context, noteID string) {
	if s.StatsCache == nil {
		return
	}
	if err := s.StatsCache.Invalidate(ctx, noteID); err != nil {
		log.Printf("note stats cache invalidation failed: %v", err)
	}
}
