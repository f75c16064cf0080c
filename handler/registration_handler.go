package handler

import (
	"edushare/dto"
	"edushare/services"
	"edushare/usecase"
	"edushare/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	user, err := userService.Register(c.Request.Context(),
		req.Username, req.Email, req.Password, req.UserType)
	if err != nil {
		respondError(c, err)
		return
	}

	// Pending teacher accounts get no tokens until an administrator
	// approves them.
	if !user.IsActive {
		utils.Created(c, gin.H{
			"message": "account created, awaiting administrator approval",
			"user":    dto.ToUserProfileResponse(user),
		})
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

	utils.Created(c, gin.H{
		"message": "user registered successfully",
		"user":    dto.ToUserProfileResponse(user),
		"token":   token,
		"refresh": refreshToken,
	})
}
