package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"docsumm/internal/config"
	"docsumm/internal/extractor"
	"docsumm/internal/llm"
	_ "docsumm/internal/llm/claude"
	_ "docsumm/internal/llm/gemini"
	_ "docsumm/internal/llm/ollama"
	_ "docsumm/internal/llm/openai"
	"docsumm/internal/service"
)

// pipeline bundles the services a command needs.
type pipeline struct {
	documents service.DocumentService
}

// newPipeline builds the services from environment configuration, applying
// command-line overrides for the provider and model.
func newPipeline(cmd *cobra.Command) (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if provider, _ := cmd.Flags().GetString("provider"); provider != "" {
		cfg.AI.SetProvider(provider)
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.AI.Model = model
	}

	generator, err := llm.NewGenerator(&cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AI provider: %w", err)
	}

	summarizer := service.NewSummarizerService(generator, &cfg.AI)
	return &pipeline{
		documents: service.NewDocumentService(extractor.New(), summarizer, &cfg.Upload),
	}, nil
}

// openUpload opens a local file as an upload. The caller closes the returned file.
func openUpload(path string) (service.UploadInput, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return service.UploadInput{}, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return service.UploadInput{}, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return service.UploadInput{
		Filename: filepath.Base(path),
		Size:     info.Size(),
		File:     f,
	}, f, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docctl",
		Short: "Extract, summarize and question PDF or TXT documents",
		Long: `docctl runs the document pipeline of the summarizer API against local files.

Configuration is read from DOCSUMM_* environment variables and an optional .env
file, the same way the server reads it.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("provider", "",
		fmt.Sprintf("AI provider (%s); overrides DOCSUMM_AI_PROVIDER", strings.Join(llm.Providers(), ", ")))
	rootCmd.PersistentFlags().String("model", "", "AI model; overrides DOCSUMM_AI_MODEL")

	rootCmd.AddCommand(newExtractCmd(), newSummarizeCmd(), newAskCmd())
	return rootCmd
}
