package email

import (
	"context"
	"log/slog"

	"zk-contact-backend/internal/domain"

	"github.com/google/uuid"
)

// LogSender writes outgoing email to the logger instead of delivering it.
// Meant for local development with MAIL_PROVIDER=log.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) MissingCredential() string {
	return ""
}

func (s *LogSender) Send(ctx context.Context, msg domain.OutboundEmail) (string, error) {
	id := "log-" + uuid.NewString()
	s.log.InfoContext(ctx, "Email not delivered (log provider)",
		"id", id,
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML),
	)
	return id, nil
}
