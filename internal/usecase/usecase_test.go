package usecase_test

import (
	"context"

	"zk-contact-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock mail provider
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, msg domain.OutboundEmail) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *MockMailSender) MissingCredential() string {
	return m.Called().String(0)
}

// sentTo matches an outbound email by its first recipient
func sentTo(recipient string) interface{} {
	return mock.MatchedBy(func(msg domain.OutboundEmail) bool {
		return len(msg.To) > 0 && msg.To[0] == recipient
	})
}
