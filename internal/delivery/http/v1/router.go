package v1

import (
	"net/http"
	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ContentUC domain.ContentUsecase
	HealthUC  domain.HealthUsecase
	// Limits contact submissions; defaults to ContactRateLimitConfig(Config)
	ContactLimiter gin.HandlerFunc
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found", nil)
	})

	limiter := deps.ContactLimiter
	if limiter == nil {
		limiter = middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config))
	}

	v1 := r.Group("/v1")
	// The frontend form posts here
	api := r.Group("/api")

	NewHealthHandler(v1, deps.HealthUC)
	NewContactHandler(deps.ContactUC, limiter, v1, api)
	NewContentHandler(v1, deps.ContentUC)
	NewSitemapHandler(r, deps.ContentUC, deps.Config.SiteURL)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
