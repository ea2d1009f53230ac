// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "roost/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validatorlib.Validate
}

// New creates the request validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validatorlib.New()}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
