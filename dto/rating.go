package dto

type RateNoteRequest struct {
	Value int `json:"value" binding:"required,min=1,max=5"`
}

// RatingResponse reports the note's fresh aggregates together with the
// caller's own stored rating after a submission.
type RatingResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
	UserRating    int     `json:"user_rating"`
}

// NoteStatsResponse carries just the aggregates, for anonymous reads.
type NoteStatsResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
}
