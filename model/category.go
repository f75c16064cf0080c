package model

import "time"

// Category groups notes. ParentID allows nesting
// (e.g. Science > Physics > Quantum Mechanics).
type Category struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ParentID    string    `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
