package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string `env:"PORT" envDefault:"8080"`
	GinMode        string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"https://zkconcept.be,https://www.zkconcept.be"`

	Mail     MailConfig
	Branding BrandingConfig

	// Redis/Upstash Configuration
	UpstashRedisURL      string `env:"UPSTASH_REDIS_URL"`
	UpstashRedisPassword string `env:"UPSTASH_REDIS_PASSWORD"`
	// Rate Limiting Configuration (contact form)
	ContactRateLimit         int `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateWindowSeconds int `env:"CONTACT_RATE_WINDOW_SECONDS" envDefault:"600"`
}

// MailConfig selects the outbound provider and the addresses used for
// form notifications.
type MailConfig struct {
	Provider             string `env:"MAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`
	ResendBaseURL        string `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	// SMTP relay (Brevo)
	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp-relay.brevo.com"`
	SMTPPort     string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	From         string `env:"CONTACT_FROM" envDefault:"no-reply@zkconcept.be"`
	FromName     string `env:"CONTACT_FROM_NAME" envDefault:"ZK Concept"`
	// Comma-separated; blank entries are ignored
	InternalRecipients string `env:"CONTACT_TO"`
}

// BrandingConfig is rendered into every email footer. Blank values fall
// back to the renderer defaults.
type BrandingConfig struct {
	LogoURL      string `env:"MAIL_LOGO_URL"`
	PrivacyURL   string `env:"MAIL_PRIVACY_URL"`
	LegalURL     string `env:"MAIL_LEGAL_URL"`
	CompanyEmail string `env:"COMPANY_EMAIL"`
	CompanyPhone string `env:"COMPANY_PHONE"`
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production injects the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Mail.Provider = strings.ToLower(strings.TrimSpace(cfg.Mail.Provider))
	cfg.Mail.ResendBaseURL = strings.TrimRight(cfg.Mail.ResendBaseURL, "/")

	if cfg.ContactRateLimit <= 0 {
		cfg.ContactRateLimit = 5
	}
	if cfg.ContactRateWindowSeconds <= 0 {
		cfg.ContactRateWindowSeconds = 600
	}

	switch cfg.Mail.Provider {
	case "resend", "postmark", "smtp", "log":
	default:
		return nil, fmt.Errorf("unsupported MAIL_PROVIDER %q", cfg.Mail.Provider)
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// Origins returns the CORS allow-list with blanks removed.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
