package dto

import (
	"time"

	"edushare/model"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
	UserType string `json:"user_type" binding:"omitempty,usertype"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserProfileResponse struct {
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	UserType   string    `json:"user_type"`
	Reputation int       `json:"reputation"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToUserProfileResponse(user *model.User) UserProfileResponse {
	return UserProfileResponse{
		Username:   user.Username,
		Email:      user.Email,
		UserType:   user.UserType,
		Reputation: user.Reputation,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
	}
}
