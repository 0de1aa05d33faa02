package usecase

import (
	"bytes"
	"encoding/json"
	"net/http"

	"zk-contact-backend/internal/domain"
	"zk-contact-backend/pkg/apperror"
	"zk-contact-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// requiredFields lists, in reporting order, the fields each form must fill.
var requiredFields = map[domain.FormKind][]string{
	domain.FormContact:      {"fullName", "email", "message"},
	domain.FormQuote:        {"fullName", "company", "email", "phone", "service", "message"},
	domain.FormWorkTogether: {"fullName", "company", "email", "phone", "service", "message"},
}

// RequiredFields returns the required field names for a form kind.
func RequiredFields(kind domain.FormKind) []string {
	if fields, ok := requiredFields[kind]; ok {
		return fields
	}
	return requiredFields[domain.FormWorkTogether]
}

// ValidateSubmission checks the method, decodes the body and verifies the
// required fields of the submission's form kind. It has no side effects.
func ValidateSubmission(validate *validator.Validate, method string, body []byte) (domain.RawSubmission, *apperror.AppError) {
	if method != http.MethodPost {
		return nil, apperror.MethodNotAllowed()
	}

	raw, err := decodeSubmission(body)
	if err != nil {
		return nil, apperror.BadRequest("Invalid JSON body")
	}

	for _, field := range RequiredFields(raw.Kind()) {
		if err := validate.Var(raw.String(field), "notblank"); err != nil {
			return nil, apperror.New(http.StatusBadRequest, validation.MissingFieldMessage(field), err)
		}
	}

	return raw, nil
}

// decodeSubmission accepts a JSON object. An absent body and a JSON null
// both decode to an empty submission.
func decodeSubmission(body []byte) (domain.RawSubmission, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return domain.RawSubmission{}, nil
	}

	var raw domain.RawSubmission
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = domain.RawSubmission{}
	}
	return raw, nil
}
