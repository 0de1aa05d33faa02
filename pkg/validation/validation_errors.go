package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MissingFieldMessage is the client-facing message for an absent required field.
func MissingFieldMessage(field string) string {
	return fmt.Sprintf("Missing required field: %s", field)
}

// FailedTag returns the tag of the first failed rule, or "" when err is
// not a validation error.
func FailedTag(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return ""
	}
	return validationErrors[0].Tag()
}
