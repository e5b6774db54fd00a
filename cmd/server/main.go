// @title Document Summarizer API
// @version 1.0
// @description Extracts text from PDF and TXT uploads and summarizes or answers questions about it with an LLM.
// @BasePath /api
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"docsumm/internal/config"
	"docsumm/internal/extractor"
	"docsumm/internal/handler"
	"docsumm/internal/llm"
	_ "docsumm/internal/llm/claude"
	_ "docsumm/internal/llm/gemini"
	_ "docsumm/internal/llm/ollama"
	_ "docsumm/internal/llm/openai"
	"docsumm/internal/router"
	"docsumm/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize AI provider; nil when no credential is configured
	generator, err := llm.NewGenerator(&cfg.AI)
	if err != nil {
		return fmt.Errorf("failed to initialize AI provider: %w", err)
	}
	if generator != nil {
		log.Printf("AI provider %s initialized (model %s)", cfg.AI.Provider, cfg.AI.Model)
	}

	// Initialize services
	summarizerSvc := service.NewSummarizerService(generator, &cfg.AI)
	documentSvc := service.NewDocumentService(extractor.New(), summarizerSvc, &cfg.Upload)

	// Initialize handlers
	documentH := handler.NewDocumentHandler(documentSvc, &cfg.Upload)
	healthH := handler.NewHealthHandler(summarizerSvc)

	// Setup router
	r := router.Setup(cfg, documentH, healthH)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
