package handler

import (
	"strings"

	"edushare/services"
	"edushare/utils"

	"github.com/gin-gonic/gin"
)

func LogoutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	// Refresh token is optional in the body
	_ = c.ShouldBindJSON(&body)

	if err := services.BlacklistTokens(accessToken, body.RefreshToken); err != nil {
		utils.InternalError(c, "failed to log out")
		return
	}

	utils.Success(c, gin.H{"message": "logged out"})
}
