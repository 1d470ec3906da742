package cli

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/gymkeeper/internal/common"
)

// Messages for input that never reaches the account service.
const (
	MsgFillAllFields    = "Please fill in all fields!"
	MsgPasswordMismatch = "Password confirmation does not match!"
	MsgPasswordTooShort = "Password must be at least 6 characters!"
	MsgInvalidEmail     = "Please enter a valid email address!"
	MsgInvalidInput     = "Invalid input!"
	MsgLoginRequired    = "Please log in first!"
	MsgForgotPassword   = "Password recovery is coming soon!"
)

type registerForm struct {
	FullName        string `validate:"notblank"`
	Email           string `validate:"notblank,email"`
	Phone           string `validate:"notblank"`
	NationalID      string `validate:"notblank"`
	Password        string `validate:"notblank,password"`
	ConfirmPassword string `validate:"notblank,eqfield=Password"`
}

type loginForm struct {
	Email    string `validate:"notblank"`
	Password string `validate:"notblank"`
}

// profileForm holds edits; empty fields are left unchanged.
type profileForm struct {
	Email           string `validate:"omitempty,email"`
	Password        string `validate:"omitempty,password"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) >= common.MinPasswordLength
	})
	return v
}

// tagPriority orders failures the way the member should fix them: missing
// fields first, then the confirmation, then length, then format.
var tagPriority = map[string]int{
	"notblank": 0,
	"eqfield":  1,
	"password": 2,
	"email":    3,
}

var tagMessages = map[string]string{
	"notblank": MsgFillAllFields,
	"eqfield":  MsgPasswordMismatch,
	"password": MsgPasswordTooShort,
	"email":    MsgInvalidEmail,
}

// validateForm returns "" when form passes, otherwise the message for the
// most pressing failure.
func (a *App) validateForm(form any) string {
	err := a.validate.Struct(form)
	if err == nil {
		return ""
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return MsgInvalidInput
	}

	best := ""
	for _, fe := range validationErrs {
		tag := fe.ActualTag()
		if _, known := tagPriority[tag]; !known {
			continue
		}
		if best == "" || tagPriority[tag] < tagPriority[best] {
			best = tag
		}
	}
	if best == "" {
		return MsgInvalidInput
	}
	return tagMessages[best]
}
