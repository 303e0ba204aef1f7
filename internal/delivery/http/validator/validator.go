// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "tickatch/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps the playground validator for Echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New()}
}

// Validate checks struct tags and maps failures onto the shared validation
// error so the error handler can render them uniformly.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
