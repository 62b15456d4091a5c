// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vote_direction", validateVoteDirection)
	}
}

// Window tokens are resolved by the window package so the error carries the
// offending token; only the vote direction is validated at binding time.
func validateVoteDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "up", "down":
		return true
	}
	return false
}
