package handlers

import (
	"expense-bot/internal/parser"
	"expense-bot/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator aware of the category identifiers of taxonomy
func NewValidator(taxonomy *parser.Taxonomy) echo.Validator {
	return &CustomValidator{validator: validation.NewValidator(taxonomy).GetValidate()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
