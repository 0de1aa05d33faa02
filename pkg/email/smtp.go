package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strings"

	"zk-contact-backend/internal/domain"

	"github.com/google/uuid"
)

// SMTPSender sends email through an SMTP relay such as Brevo
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates a sender authenticating with PLAIN auth.
func NewSMTPSender(host, port, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPSender) MissingCredential() string {
	switch {
	case s.host == "":
		return "SMTP_HOST"
	case s.username == "":
		return "SMTP_USERNAME"
	case s.password == "":
		return "SMTP_PASSWORD"
	}
	return ""
}

// Send delivers msg and returns its generated Message-ID. A reply code
// from the relay is a *domain.SendError; anything else is a plain error.
func (s *SMTPSender) Send(ctx context.Context, msg domain.OutboundEmail) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	from, err := mail.ParseAddress(msg.From)
	if err != nil {
		return "", fmt.Errorf("invalid from address %q: %w", msg.From, err)
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), domainOf(from.Address))
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	err = s.sendMail(addr, auth, from.Address, msg.To, buildMIME(id, msg))
	if err != nil {
		var replyErr *textproto.Error
		if errors.As(err, &replyErr) {
			return "", &domain.SendError{
				Provider:   "smtp",
				StatusCode: replyErr.Code,
				Message:    replyErr.Msg,
			}
		}
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return id, nil
}

// buildMIME renders a single-part HTML message. Header values are kept on
// one line.
func buildMIME(id string, msg domain.OutboundEmail) []byte {
	var b bytes.Buffer
	header := func(name, value string) {
		fmt.Fprintf(&b, "%s: %s\r\n", name, oneLine(value))
	}

	header("From", msg.From)
	header("To", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		header("Reply-To", msg.ReplyTo)
	}
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Message-ID", id)
	if msg.Tag != "" {
		header("X-Form-Tag", msg.Tag)
	}
	header("MIME-Version", "1.0")
	header("Content-Type", "text/html; charset=UTF-8")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	return b.Bytes()
}

func oneLine(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}

func domainOf(address string) string {
	if i := strings.LastIndex(address, "@"); i >= 0 {
		return address[i+1:]
	}
	return "localhost"
}
