package model

import (
	"time"
)

type Note struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UploaderID  string    `bson:"uploader_id" json:"uploader_id"`
	Title       string    `bson:"title" json:"title" binding:"required"`
	Description string    `bson:"description" json:"description" binding:"required"`
	FileURL     string    `bson:"file_url,omitempty" json:"file_url,omitempty"`
	CategoryID  string    `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	IsPublic    bool      `bson:"is_public" json:"is_public"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`

	// Derived from the note's rating set. A cache, never a source of
	// truth: only the rating engine's recompute step writes these.
	AverageRating float64 `bson:"average_rating" json:"average_rating"`
	TotalRatings  int     `bson:"total_ratings" json:"total_ratings"`

	SearchScore float64 `bson:"score,omitempty" json:"search_score,omitempty"`
}
