package email

import (
	"log/slog"

	"zk-contact-backend/config"
	"zk-contact-backend/internal/domain"
)

// NewSender builds the provider selected by MAIL_PROVIDER. A sender with
// a missing credential is still returned; callers check MissingCredential.
func NewSender(cfg config.MailConfig, log *slog.Logger) domain.MailSender {
	switch cfg.Provider {
	case "postmark":
		return NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	case "smtp":
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	case "log":
		return NewLogSender(log)
	default:
		return NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL)
	}
}
