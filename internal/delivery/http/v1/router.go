package v1

import (
	"net/http"
	"time"

	"zk-contact-backend/config"
	"zk-contact-backend/internal/delivery/http/middleware"
	"zk-contact-backend/internal/domain"
	"zk-contact-backend/internal/usecase"
	"zk-contact-backend/pkg/email"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
	Branding  email.Branding
	// Overrides the contact limiter; nil builds one from Config
	Limiter gin.HandlerFunc
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.Origins(), deps.Config.IsProduction())) // CORS must be first!
	r.Use(middleware.Recovery())
	if !deps.Config.IsProduction() {
		r.Use(gin.Logger())
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.SecurityHeadersMiddleware())

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.HealthUC.Check(c.Request.Context()))
	})

	limiter := deps.Limiter
	if limiter == nil {
		window := time.Duration(deps.Config.ContactRateWindowSeconds) * time.Second
		limiter = middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config.ContactRateLimit, window))
	}
	NewContactHandler(api, deps.ContactUC, limiter)

	if !deps.Config.IsProduction() {
		NewPreviewHandler(api, deps.Branding)
	}

	return r
}
