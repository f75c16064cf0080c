package model

import "time"

const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating is a single user's 1-5 score for one note. At most one rating
// exists per (note, user) pair; a resubmission updates the value in place.
type Rating struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	NoteID    string    `bson:"note_id" json:"note_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Value     int       `bson:"value" json:"value"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
