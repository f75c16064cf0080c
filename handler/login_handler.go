package handler

import (
	"fmt"

	"edushare/dto"
	"edushare/services"
	"edushare/usecase"
	"edushare/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

func LoginHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid Request")
		return
	}

	// Record which device logged in, for the account's audit trail.
	ua := useragent.Parse(c.Request.UserAgent())
	device := fmt.Sprintf("%s on %s", ua.Name, ua.OS)
	if ua.Name == "" {
		device = "unknown"
	}

	user, err := userService.Authenticate(c.Request.Context(), req.Username, req.Password, device)
	if err != nil {
		utils.Unauthorized(c, "Invalid username or password")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "failed to generate refresh token")
		return
	}

	utils.Success(c, gin.H{
		"user":    dto.ToUserProfileResponse(user),
		"token":   token,
		"refresh": refreshToken,
	})
}
