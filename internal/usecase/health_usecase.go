package usecase

import (
	"context"

	"zk-contact-backend/internal/domain"
	"zk-contact-backend/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	sender domain.MailSender
	ping   func(ctx context.Context) error
}

func NewHealthUsecase(sender domain.MailSender) HealthUsecase {
	return &healthUsecase{
		sender: sender,
		ping:   redis.HealthCheck,
	}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":     "ok",
		"mail":       "ready",
		"rate_limit": "redis",
	}
	if name := u.sender.MissingCredential(); name != "" {
		status["mail"] = "missing " + name
	}
	if err := u.ping(ctx); err != nil {
		status["rate_limit"] = "memory"
	}
	return status
}
