package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// FormKind identifies which site form produced a submission.
type FormKind string

const (
	FormContact      FormKind = "contact"
	FormQuote        FormKind = "quote"
	FormWorkTogether FormKind = "work_together"
)

// ParseFormKind maps the wire tag to a FormKind. The quote page posts
// "devis"; anything unrecognised is a work-together request.
func ParseFormKind(tag string) FormKind {
	switch strings.TrimSpace(tag) {
	case string(FormContact):
		return FormContact
	case string(FormQuote), "devis":
		return FormQuote
	default:
		return FormWorkTogether
	}
}

// RawSubmission is the untrusted JSON object posted by a form.
type RawSubmission map[string]any

// String returns the field as text. Absent and null fields are empty;
// numbers and booleans keep their JSON spelling.
func (r RawSubmission) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Kind reads the formType field.
func (r RawSubmission) Kind() FormKind {
	return ParseFormKind(r.String("formType"))
}

// OutboundEmail is one message handed to the mail provider.
type OutboundEmail struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Tag     string
}

// SendError is a rejection reported by the mail provider itself, as
// opposed to a transport failure.
type SendError struct {
	Provider   string
	StatusCode int
	Name       string
	Message    string
}

func (e *SendError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Provider, e.Message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// MailSender delivers a single email and returns the provider message id.
type MailSender interface {
	Send(ctx context.Context, msg OutboundEmail) (string, error)
	// MissingCredential names the unset credential, or "" when ready.
	MissingCredential() string
}

// DispatchResult carries the provider ids of both emails. An id is nil
// when the provider did not return one.
type DispatchResult struct {
	InternalID *string
	ClientID   *string
}

// ContactUsecase runs a form submission through the mail pipeline.
type ContactUsecase interface {
	Submit(ctx context.Context, method string, body []byte) (*DispatchResult, error)
}

// DispatchStage names the steps a submission goes through.
type DispatchStage string

const (
	StageReceived     DispatchStage = "received"
	StageValidated    DispatchStage = "validated"
	StageSanitized    DispatchStage = "sanitized"
	StageInternalSent DispatchStage = "internal_sent"
	StageClientSent   DispatchStage = "client_sent"
	StageResponded    DispatchStage = "responded"
	StageRejected     DispatchStage = "rejected"
)
