package handler

import (
	"strconv"

	"edushare/dto"
	"edushare/usecase"
	"edushare/utils"

	"github.com/gin-gonic/gin"
)

func GetUserProfileHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	user, err := userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToUserProfileResponse(user))
}

// GetReputationHandler returns the user's current reputation and a page of
// the ledger behind it.
func GetReputationHandler(c *gin.Context, reputationService *usecase.ReputationService) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	events, reputation, err := reputationService.History(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"reputation": reputation,
		"events":     events,
	})
}
