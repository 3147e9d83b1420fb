// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("sku", validateSKU)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSKU(fl validator.FieldLevel) bool {
	sku := fl.Field().String()

	// SKUs are slug-style: lowercase alphanumerics and dashes, 2-64 characters
	if len(sku) < 2 || len(sku) > 64 {
		return false
	}

	matched, _ := regexp.MatchString("^[a-z0-9][a-z0-9-]*$", sku)
	return matched
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "sku":
		return "SKU must be 2-64 characters of lowercase letters, digits and dashes"
	default:
		return e.Field() + " is invalid"
	}
}
