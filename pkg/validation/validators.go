package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Basic local@domain.tld shape, used to decide whether a reply-to can be set
	replyToRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("reply_to_email", ReplyToEmail)
}

// NotBlank rejects strings that are empty once surrounding whitespace is removed
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ReplyToEmail validates the loose address shape accepted for Reply-To headers
func ReplyToEmail(fl validator.FieldLevel) bool {
	return replyToRegex.MatchString(fl.Field().String())
}
