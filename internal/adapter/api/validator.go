package api

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs validator/v10 into Echo's c.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
