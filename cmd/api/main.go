package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zk-contact-backend/config"
	_ "zk-contact-backend/docs" // Important for Swagger
	v1 "zk-contact-backend/internal/delivery/http/v1"
	"zk-contact-backend/internal/usecase"
	"zk-contact-backend/pkg/email"
	"zk-contact-backend/pkg/logger"
	"zk-contact-backend/pkg/redis"
	"zk-contact-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           ZK Concept Contact API
// @version         1.0
// @description     Receives the website forms and emails them to the company inbox and the submitter.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting contact backend", "port", cfg.Port, "mail_provider", cfg.Mail.Provider)
	gin.SetMode(cfg.GinMode)

	// 3. Setup Redis (rate limiting)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mail Provider
	sender := email.NewSender(cfg.Mail, logger.Log)
	if name := sender.MissingCredential(); name != "" {
		logger.Log.Warn("Mail provider not fully configured - form submissions will fail", "missing", name)
	}

	branding := email.Branding{
		LogoURL:      cfg.Branding.LogoURL,
		PrivacyURL:   cfg.Branding.PrivacyURL,
		LegalURL:     cfg.Branding.LegalURL,
		CompanyEmail: cfg.Branding.CompanyEmail,
		CompanyPhone: cfg.Branding.CompanyPhone,
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, validation.New(), usecase.ContactConfig{
		From:               cfg.Mail.From,
		FromName:           cfg.Mail.FromName,
		InternalRecipients: cfg.Mail.InternalRecipients,
		Branding:           branding,
	})
	healthUC := usecase.NewHealthUsecase(sender)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
		Branding:  branding,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
