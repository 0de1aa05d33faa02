package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zk-contact-backend/internal/domain"
)

const DefaultResendBaseURL = "https://api.resend.com"

// ResendClient sends email through the Resend HTTP API
type ResendClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type resendTag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type resendRequest struct {
	From    string      `json:"from"`
	To      []string    `json:"to"`
	Subject string      `json:"subject"`
	HTML    string      `json:"html"`
	ReplyTo string      `json:"reply_to,omitempty"`
	Tags    []resendTag `json:"tags,omitempty"`
}

type resendResponse struct {
	ID string `json:"id"`
}

type resendError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// NewResendClient creates a new Resend client. An empty baseURL selects
// the public API.
func NewResendClient(apiKey, baseURL string) *ResendClient {
	if baseURL == "" {
		baseURL = DefaultResendBaseURL
	}
	return &ResendClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *ResendClient) MissingCredential() string {
	if c.apiKey == "" {
		return "RESEND_API_KEY"
	}
	return ""
}

// Send posts the message to /emails. Any non-2xx answer is returned as a
// *domain.SendError; network failures and unreadable success bodies are
// plain errors.
func (c *ResendClient) Send(ctx context.Context, msg domain.OutboundEmail) (string, error) {
	payload := resendRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}
	if msg.Tag != "" {
		payload.Tags = []resendTag{{Name: "form", Value: msg.Tag}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error encoding resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling resend: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading resend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", parseResendError(resp.StatusCode, respBody)
	}

	var sent resendResponse
	if err := json.Unmarshal(respBody, &sent); err != nil {
		return "", fmt.Errorf("malformed resend response: %w", err)
	}

	return sent.ID, nil
}

func parseResendError(status int, body []byte) *domain.SendError {
	sendErr := &domain.SendError{Provider: "resend", StatusCode: status}

	var apiErr resendError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		sendErr.Name = apiErr.Name
		sendErr.Message = apiErr.Message
		return sendErr
	}

	sendErr.Message = strings.TrimSpace(string(body))
	if sendErr.Message == "" {
		sendErr.Message = http.StatusText(status)
	}
	return sendErr
}
