// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validatorlib.Validate
}

// New creates a new CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validatorlib.New(),
	}
}

// Validate validates a bound request struct against its tags.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
