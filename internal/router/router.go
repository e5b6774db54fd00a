package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "docsumm/docs" // registers the OpenAPI document

	"docsumm/internal/config"
	"docsumm/internal/handler"
	"docsumm/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	docH *handler.DocumentHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()
	// Both "/api/summarize" and "/api/summarize/" are registered explicitly.
	r.RedirectTrailingSlash = false

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	for _, path := range []string{"/summarize/", "/summarize"} {
		api.POST(path, docH.Summarize)
		api.GET(path, docH.Info)
	}
	for _, path := range []string{"/extract-text/", "/extract-text"} {
		api.POST(path, docH.ExtractText)
	}
	for _, path := range []string{"/chat-document/", "/chat-document"} {
		api.POST(path, docH.ChatDocument)
	}

	return r
}
