package dto

import (
	"time"

	"edushare/model"
)

type CreateNoteRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	FileURL     string   `json:"file_url" binding:"omitempty,url"`
	CategoryID  string   `json:"category_id"`
	Tags        []string `json:"tags" binding:"max=10"`
	IsPublic    *bool    `json:"is_public"`
}

type UpdateNoteRequest struct {
	Title       string   `json:"title" binding:"omitempty,max=255"`
	Description string   `json:"description"`
	FileURL     string   `json:"file_url" binding:"omitempty,url"`
	CategoryID  string   `json:"category_id"`
	Tags        []string `json:"tags" binding:"max=10"`
	IsPublic    *bool    `json:"is_public"`
}

type NoteResponse struct {
	ID            string    `json:"id"`
	UploaderID    string    `json:"uploader_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	FileURL       string    `json:"file_url,omitempty"`
	CategoryID    string    `json:"category_id,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	IsPublic      bool      `json:"is_public"`
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int       `json:"total_ratings"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// The requesting user's own rating for this note, when they have one.
	UserRating int `json:"user_rating,omitempty"`
}

type NotesPageResponse struct {
	Notes       []NoteResponse `json:"notes"`
	TotalCount  int            `json:"total_count"`
	PageCount   int            `json:"page_count"`
	CurrentPage int            `json:"current_page"`
}

func ToNoteResponse(note *model.Note) NoteResponse {
	return NoteResponse{
		ID:            note.ID,
		UploaderID:    note.UploaderID,
		Title:         note.Title,
		Description:   note.Description,
		FileURL:       note.FileURL,
		CategoryID:    note.CategoryID,
		Tags:          note.Tags,
		IsPublic:      note.IsPublic,
		AverageRating: note.AverageRating,
		TotalRatings:  note.TotalRatings,
		CreatedAt:     note.CreatedAt,
		UpdatedAt:     note.UpdatedAt,
	}
}
