package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"zk-contact-backend/internal/domain"

	"github.com/mrz1836/postmark"
)

type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkSender sends email through Postmark's transactional API
type PostmarkSender struct {
	client      postmarkAPI
	serverToken string
}

// NewPostmarkSender creates a Postmark-backed sender. The account token is
// only needed for account-level API calls and may be empty.
func NewPostmarkSender(serverToken, accountToken string) *PostmarkSender {
	return &PostmarkSender{
		client:      postmark.NewClient(serverToken, accountToken),
		serverToken: serverToken,
	}
}

func (s *PostmarkSender) MissingCredential() string {
	if s.serverToken == "" {
		return "POSTMARK_SERVER_TOKEN"
	}
	return ""
}

// Send reports Postmark rejections as *domain.SendError. The library
// returns them as an error too: an APIError for HTTP failures, or a
// response carrying a non-zero ErrorCode.
func (s *PostmarkSender) Send(ctx context.Context, msg domain.OutboundEmail) (string, error) {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       msg.From,
		To:         strings.Join(msg.To, ","),
		ReplyTo:    msg.ReplyTo,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTML,
		TrackOpens: true,
	})
	if resp.ErrorCode != 0 {
		return "", postmarkSendError(resp.ErrorCode, resp.Message)
	}
	if err != nil {
		var apiErr postmark.APIError
		if errors.As(err, &apiErr) {
			return "", postmarkSendError(apiErr.ErrorCode, apiErr.Message)
		}
		return "", fmt.Errorf("error calling postmark: %w", err)
	}
	return resp.MessageID, nil
}

func postmarkSendError(code int64, message string) *domain.SendError {
	return &domain.SendError{
		Provider: "postmark",
		Name:     fmt.Sprintf("ErrorCode %d", code),
		Message:  message,
	}
}
