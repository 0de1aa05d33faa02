package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"zk-contact-backend/internal/domain"
	"zk-contact-backend/pkg/apperror"
	"zk-contact-backend/pkg/email"
	"zk-contact-backend/pkg/logger"
	"zk-contact-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultInternalRecipient = "zakaria@zkconcept.be"
	ClientSubject            = "Merci pour votre demande - ZK Concept"
)

// ContactConfig is the mail configuration of the form pipeline, built once
// at startup.
type ContactConfig struct {
	From               string
	FromName           string
	InternalRecipients string
	Branding           email.Branding
}

type contactUsecase struct {
	sender   domain.MailSender
	validate *validator.Validate
	cfg      ContactConfig
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender domain.MailSender, validate *validator.Validate, cfg ContactConfig) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		validate: validate,
		cfg:      cfg,
	}
}

// Submit validates the submission, renders both emails and sends the
// internal notification followed by the client confirmation. The client
// email is only attempted once the internal one was accepted; a failed
// confirmation does not undo the internal notification.
func (uc *contactUsecase) Submit(ctx context.Context, method string, body []byte) (*domain.DispatchResult, error) {
	log := logger.Log.With("request_id", requestID(ctx))
	log.DebugContext(ctx, "Contact submission received", "stage", domain.StageReceived)

	raw, appErr := ValidateSubmission(uc.validate, method, body)
	if appErr != nil {
		log.InfoContext(ctx, "Contact submission rejected", "stage", domain.StageRejected,
			"reason", appErr.Message, "rule", validation.FailedTag(appErr.Err))
		return nil, appErr
	}

	kind := raw.Kind()
	log = log.With("form_type", kind)
	log.DebugContext(ctx, "Contact submission validated", "stage", domain.StageValidated)

	if name := uc.sender.MissingCredential(); name != "" {
		log.ErrorContext(ctx, "Mail provider credential missing", "stage", domain.StageRejected, "credential", name)
		return nil, apperror.New(http.StatusInternalServerError, "Missing "+name, nil)
	}

	safe := SanitizeSubmission(raw)
	log.DebugContext(ctx, "Contact submission sanitized", "stage", domain.StageSanitized)

	internalHTML, err := email.RenderInternal(safe, uc.cfg.Branding)
	if err != nil {
		return nil, unableToSend(err)
	}
	clientHTML, err := email.RenderClient(safe, uc.cfg.Branding)
	if err != nil {
		return nil, unableToSend(err)
	}

	submitter := strings.TrimSpace(raw.String("email"))
	fullName := singleLine(raw.String("fullName"))

	replyTo := ""
	if err := uc.validate.Var(submitter, "reply_to_email"); err == nil {
		replyTo = submitter
	}

	internalID, err := uc.sender.Send(ctx, domain.OutboundEmail{
		From:    uc.from(),
		To:      InternalRecipients(uc.cfg.InternalRecipients),
		ReplyTo: replyTo,
		Subject: InternalSubject(kind, fullName),
		HTML:    internalHTML,
		Tag:     string(kind),
	})
	if err != nil {
		log.ErrorContext(ctx, "Internal email failed", "stage", domain.StageRejected, "error", err)
		return nil, sendFailure("Internal email failed", err)
	}
	log.InfoContext(ctx, "Internal email sent", "stage", domain.StageInternalSent, "internal_id", internalID)

	clientID, err := uc.sender.Send(ctx, domain.OutboundEmail{
		From:    uc.from(),
		To:      []string{submitter},
		Subject: ClientSubject,
		HTML:    clientHTML,
		Tag:     "client_" + string(kind),
	})
	if err != nil {
		log.ErrorContext(ctx, "Client confirmation email failed after internal email was sent",
			"stage", domain.StageRejected, "internal_id", internalID, "error", err)
		return nil, sendFailure("Client confirmation email failed", err)
	}
	log.InfoContext(ctx, "Client confirmation sent", "stage", domain.StageClientSent, "client_id", clientID)

	return &domain.DispatchResult{
		InternalID: nullable(internalID),
		ClientID:   nullable(clientID),
	}, nil
}

func (uc *contactUsecase) from() string {
	from := uc.cfg.From
	if from == "" {
		from = "no-reply@zkconcept.be"
	}
	if uc.cfg.FromName == "" {
		return from
	}
	return fmt.Sprintf("%s <%s>", uc.cfg.FromName, from)
}

// InternalRecipients splits a comma-separated recipient list, dropping
// blank entries. An empty list falls back to the company inbox.
func InternalRecipients(list string) []string {
	var recipients []string
	for _, r := range strings.Split(list, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	if len(recipients) == 0 {
		return []string{DefaultInternalRecipient}
	}
	return recipients
}

// InternalSubject returns the notification subject for a form kind.
func InternalSubject(kind domain.FormKind, fullName string) string {
	switch kind {
	case domain.FormContact:
		return "Nouveau message contact - " + fullName
	case domain.FormQuote:
		return "Nouvelle demande de devis - " + fullName
	default:
		return "Nouvelle demande - " + fullName
	}
}

func sendFailure(message string, err error) *apperror.AppError {
	var sendErr *domain.SendError
	if errors.As(err, &sendErr) {
		appErr := apperror.BadGateway(message, sendErr)
		appErr.Details = sendErr.Message
		return appErr
	}
	return unableToSend(err)
}

func unableToSend(err error) *apperror.AppError {
	return apperror.WithDetails(http.StatusInternalServerError, "Unable to send email", err)
}

// singleLine collapses whitespace so user input cannot break a header.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func nullable(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}
