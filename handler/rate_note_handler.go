package handler

import (
	"edushare/dto"
	"edushare/usecase"
	"edushare/utils"

	"github.com/gin-gonic/gin"
)

// RateNoteHandler accepts a 1-5 rating for a note from the authenticated
// user and returns the note's fresh aggregates.
func RateNoteHandler(c *gin.Context, ratingsService *usecase.RatingsService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.RateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid rating value")
		return
	}

	result, err := ratingsService.SubmitRating(c.Request.Context(), noteID, userID, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, result)
}

// GetNoteStatsHandler serves a note's rating aggregates, cache-first.
func GetNoteStatsHandler(c *gin.Context, ratingsService *usecase.RatingsService) {
	average, total, err := ratingsService.GetNoteStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.NoteStatsResponse{
		AverageRating: average,
		TotalRatings:  total,
	})
}
