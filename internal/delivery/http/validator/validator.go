// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound inputs.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// EchoValidator wraps a validator instance for echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
