package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// fhirIDRegex matches the FHIR id primitive: up to 64 letters, digits,
// hyphens and dots.
var fhirIDRegex = regexp.MustCompile(`^[A-Za-z0-9\-\.]{1,64}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("fhir_id", validateFhirID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateFhirID(id string) bool {
	return fhirIDRegex.MatchString(id)
}

func validateFhirID(fl validator.FieldLevel) bool {
	return ValidateFhirID(fl.Field().String())
}
