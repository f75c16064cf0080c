package usecase

import (
	"context"
	"fmt"
	"time"

	"edushare/model"
	"edushare/repository"
	"edushare/services"
	"edushare/utils"
)

type UserService struct {
	UserRepo *repository.UserRepo
}

// Register creates a new account. New users start at reputation 0; only
// the reputation engine moves it from there.
func (s *UserService) Register(ctx context.Context, username, email, password, userType string) (*model.User, error) {
	if userType == "" {
		userType = model.UserTypeStudent
	}
	if userType != model.UserTypeStudent && userType != model.UserTypeTeacher {
		return nil, fmt.Errorf("%w: unknown user type %q", ErrValidation, userType)
	}

	existing, err := s.UserRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username already exists", ErrConflict)
	}

	existing, err = s.UserRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already exists", ErrConflict)
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Students are approved automatically; teacher accounts stay
	// inactive until an administrator activates them.
	user := &model.User{
		UserID:     utils.GenerateUserID(),
		Username:   username,
		Email:      email,
		Password:   hash,
		UserType:   userType,
		Reputation: 0,
		IsActive:   userType == model.UserTypeStudent,
		CreatedAt:  time.Now(),
	}
	if _, err := s.UserRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}

	utils.TrackAuthAttempt("success", "register")
	return user, nil
}

// Authenticate checks credentials and records the login device.
func (s *UserService) Authenticate(ctx context.Context, username, password, device string) (*model.User, error) {
	user, err := s.UserRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, fmt.Errorf("%w: unknown user", ErrNotFound)
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		utils.TrackAuthAttempt("failure", "login")
		return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}

	if !user.IsActive {
		utils.TrackAuthAttempt("failure", "login")
		return nil, fmt.Errorf("%w: account is pending administrator approval", ErrForbidden)
	}

	if err := s.UserRepo.RecordLogin(ctx, user.UserID, device, time.Now()); err != nil {
		return nil, err
	}

	utils.TrackAuthAttempt("success", "login")
	return user, nil
}

// GetProfile returns the user's account record including reputation.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.UserRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return user, nil
}
