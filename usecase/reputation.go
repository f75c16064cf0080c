package usecase

import (
	"context"
	"fmt"

	"edushare/model"
	"edushare/repository"
	"edushare/utils"
)

// Scoring policy. Reputation is a ledger over discrete events, never a
// function of current note statistics.
const (
	noteCreatedDelta = 10
	noteDeletedDelta = -10
	goodRatingDelta  = 5
	poorRatingDelta  = -2
)

// ratingDelta is the reputation adjustment a single rating value earns the
// note's uploader: +5 for 4 or 5, -2 for 1 or 2, 0 for 3.
func ratingDelta(value int) int {
	switch {
	case value >= 4:
		return goodRatingDelta
	case value <= 2:
		return poorRatingDelta
	default:
		return 0
	}
}

// ratingChangeDelta is the net adjustment when a rating moves from
// oldValue to newValue: reverse what the old value earned, then apply the
// new one, as a single signed number.
func ratingChangeDelta(oldValue, newValue int) int {
	return ratingDelta(newValue) - ratingDelta(oldValue)
}

// ReputationService maintains the per-user reputation counter and its
// append-only ledger. It is the only writer of User.Reputation.
type ReputationService struct {
	UserRepo       *repository.UserRepo
	ReputationRepo *repository.ReputationRepo
}

// Apply adds delta to the user's reputation and records a ledger entry.
// A zero delta is a no-op: no counter write, no ledger entry.
func (s *ReputationService) Apply(ctx context.Context, userID, event string, delta int) error {
	if delta == 0 {
		return nil
	}

	if err := s.UserRepo.ApplyReputationDelta(ctx, userID, delta); err != nil {
		return fmt.Errorf("failed to adjust reputation for %s: %w", event, err)
	}

	entry := &model.ReputationEvent{
		ID:     utils.GenerateID(),
		UserID: userID,
		Event:  event,
		Delta:  delta,
	}
	if err := s.ReputationRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to record ledger entry for %s: %w", event, err)
	}

	utils.TrackReputationAdjustment(event)
	return nil
}

// OnNoteCreated credits the uploader for publishing a note.
func (s *ReputationService) OnNoteCreated(ctx context.Context, uploaderID string) error {
	return s.Apply(ctx, uploaderID, model.EventNoteCreated, noteCreatedDelta)
}

// OnNoteDeleted takes the publish credit back.
func (s *ReputationService) OnNoteDeleted(ctx context.Context, uploaderID string) error {
	return s.Apply(ctx, uploaderID, model.EventNoteDeleted, noteDeletedDelta)
}

// History returns the user's ledger page plus the current counter value.
func (s *ReputationService) History(ctx context.Context, userID string, limit int) ([]*model.ReputationEvent, int, error) {
	user, err := s.UserRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	events, err := s.ReputationRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}
	return events, user.Reputation, nil
}
