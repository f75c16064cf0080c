package model

import "time"

// Reputation events. Each carries a fixed signed delta; a user's
// reputation is the running sum of the deltas applied to them.
const (
	EventNoteCreated   = "note_created"
	EventNoteDeleted   = "note_deleted"
	EventRatingNew     = "rating_new"
	EventRatingChanged = "rating_changed"
)

// ReputationEvent is one entry in the append-only reputation ledger.
// The ledger makes the running counter on the user record auditable.
type ReputationEvent struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Event     string    `bson:"event" json:"event"`
	Delta     int       `bson:"delta" json:"delta"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
