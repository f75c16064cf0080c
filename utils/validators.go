package utils

import (
	"unicode"

	"edushare/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("password", ValidatePasswordRule)
	Validate.RegisterValidation("usertype", ValidateUserTypeRule)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("password", ValidatePasswordRule)
		v.RegisterValidation("usertype", ValidateUserTypeRule)
	}
}

func ValidatePasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

// ValidateUserTypeRule accepts the two account roles the system knows.
func ValidateUserTypeRule(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case model.UserTypeStudent, model.UserTypeTeacher:
		return true
	}
	return false
}

func ValidatePassword(password string) bool {
	// Password must:
	// - Be at least 6 characters long
	// - Contain at least one number
	// - Contain at least one special character
	if len(password) < 6 {
		return false
	}

	hasNumber := false
	hasSpecial := false
	for _, ch := range password {
		switch {
		case unicode.IsNumber(ch):
			hasNumber = true
		case unicode.IsPunct(ch) || unicode.IsSymbol(ch):
			hasSpecial = true
		}
	}
	return hasNumber && hasSpecial
}
