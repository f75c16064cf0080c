package model

import "time"

const (
	UserTypeStudent = "student"
	UserTypeTeacher = "teacher"
)

type User struct {
	UserID          string    `bson:"user_id" json:"user_id"`
	Username        string    `bson:"username" json:"username"`
	Email           string    `bson:"email" json:"email"`
	Password        string    `bson:"password" json:"-"` // argon2id hash
	UserType        string    `bson:"user_type" json:"user_type"`
	Reputation      int       `bson:"reputation" json:"reputation"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	LastLoginAt     time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	LastLoginDevice string    `bson:"last_login_device,omitempty" json:"last_login_device,omitempty"`
}

func (u *User) IsTeacher() bool {
	return u.UserType == UserTypeTeacher
}

func (u *User) IsStudent() bool {
	return u.UserType == UserTypeStudent
}
