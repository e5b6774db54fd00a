package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Upload UploadConfig
	AI     AIConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds document upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64    `mapstructure:"max_file_size_mb"`
	AllowedTypes  []string `mapstructure:"allowed_types"`

	// MaxFileSizeBytes overrides MaxFileSizeMB when positive.
	MaxFileSizeBytes int64 `mapstructure:"max_file_size_bytes"`
}

// MaxBytes returns the upload size ceiling in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	if u.MaxFileSizeBytes > 0 {
		return u.MaxFileSizeBytes
	}
	return u.MaxFileSizeMB * 1024 * 1024
}

// MaxSizeLabel renders the size ceiling in megabytes, e.g. "10MB" or "0.5MB".
// Limits below 0.01MB are rendered in bytes.
func (u *UploadConfig) MaxSizeLabel() string {
	mb := float64(u.MaxBytes()) / (1024 * 1024)
	if mb < 0.01 {
		return fmt.Sprintf("%d bytes", u.MaxBytes())
	}
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", mb), "0"), ".") + "MB"
}

// IsAllowed reports whether a lower-cased extension (without dot) is accepted.
func (u *UploadConfig) IsAllowed(ext string) bool {
	for _, t := range u.AllowedTypes {
		if t == ext {
			return true
		}
	}
	return false
}

// AIConfig holds settings for the text generation provider.
type AIConfig struct {
	Provider      string  `mapstructure:"provider"`
	APIKey        string  `mapstructure:"api_key"`
	Model         string  `mapstructure:"model"`
	BaseURL       string  `mapstructure:"base_url"`
	MaxTokens     int     `mapstructure:"max_tokens"`
	ChatMaxTokens int     `mapstructure:"chat_max_tokens"`
	Temperature   float64 `mapstructure:"temperature"`
	TimeoutSecs   int     `mapstructure:"timeout_secs"`
	TruncateChars int     `mapstructure:"truncate_chars"`
	ContextChars  int     `mapstructure:"context_chars"`
}

// Configured reports whether a provider credential is present. Ollama runs
// without a key, so a base URL counts as its credential.
func (a *AIConfig) Configured() bool {
	if a.APIKey != "" {
		return true
	}
	return a.Provider == "ollama" && a.BaseURL != ""
}

// defaultModels holds the model used by each provider when none is configured.
var defaultModels = map[string]string{
	"openai": "gpt-3.5-turbo",
	"claude": "claude-sonnet-4-20250514",
	"gemini": "gemini-2.0-flash",
	"ollama": "mistral",
}

// DefaultModel returns the model used for provider when none is configured,
// or "" for an unknown provider.
func DefaultModel(provider string) string {
	return defaultModels[provider]
}

// SetProvider switches the provider. A model that was only the previous
// provider's default is replaced by the new provider's default.
func (a *AIConfig) SetProvider(provider string) {
	provider = strings.ToLower(provider)
	if a.Model == "" || a.Model == DefaultModel(a.Provider) {
		a.Model = DefaultModel(provider)
	}
	a.Provider = provider
}

func resolveModel(provider, model string) string {
	if model != "" {
		return model
	}
	return DefaultModel(provider)
}

// Timeout returns the bounded duration for a single provider call.
func (a *AIConfig) Timeout() time.Duration {
	if a.TimeoutSecs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(a.TimeoutSecs) * time.Second
}

// Load reads configuration from environment variables with the DOCSUMM_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DOCSUMM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.environment", "development")

	// CORS defaults (localhost origins for the web frontend)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://localhost:8080")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("upload.max_file_size_bytes", 0)
	v.SetDefault("upload.allowed_types", "pdf,txt")

	// AI defaults
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.max_tokens", 500)
	v.SetDefault("ai.chat_max_tokens", 300)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.timeout_secs", 60)
	v.SetDefault("ai.truncate_chars", 12000)
	v.SetDefault("ai.context_chars", 8000)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "DOCSUMM_SERVER_PORT",
		"server.read_timeout":        "DOCSUMM_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "DOCSUMM_SERVER_WRITE_TIMEOUT",
		"server.environment":         "DOCSUMM_SERVER_ENVIRONMENT",
		"cors.allowed_origins":       "DOCSUMM_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":    "DOCSUMM_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_file_size_bytes": "DOCSUMM_UPLOAD_MAX_FILE_SIZE_BYTES",
		"upload.allowed_types":       "DOCSUMM_UPLOAD_ALLOWED_TYPES",
		"ai.provider":                "DOCSUMM_AI_PROVIDER",
		"ai.api_key":                 "DOCSUMM_AI_API_KEY",
		"ai.model":                   "DOCSUMM_AI_MODEL",
		"ai.base_url":                "DOCSUMM_AI_BASE_URL",
		"ai.max_tokens":              "DOCSUMM_AI_MAX_TOKENS",
		"ai.chat_max_tokens":         "DOCSUMM_AI_CHAT_MAX_TOKENS",
		"ai.temperature":             "DOCSUMM_AI_TEMPERATURE",
		"ai.timeout_secs":            "DOCSUMM_AI_TIMEOUT_SECS",
		"ai.truncate_chars":          "DOCSUMM_AI_TRUNCATE_CHARS",
		"ai.context_chars":           "DOCSUMM_AI_CONTEXT_CHARS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Render/Heroku set a PORT env var. Use it if DOCSUMM_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCSUMM_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins"), false),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB:    v.GetInt64("upload.max_file_size_mb"),
		MaxFileSizeBytes: v.GetInt64("upload.max_file_size_bytes"),
		AllowedTypes:     splitList(v.GetString("upload.allowed_types"), true),
	}

	// The openai provider also accepts the conventional OPENAI_API_KEY.
	apiKey := v.GetString("ai.api_key")
	provider := strings.ToLower(v.GetString("ai.provider"))
	if apiKey == "" && provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	cfg.AI = AIConfig{
		Provider:      provider,
		APIKey:        apiKey,
		Model:         resolveModel(provider, v.GetString("ai.model")),
		BaseURL:       v.GetString("ai.base_url"),
		MaxTokens:     v.GetInt("ai.max_tokens"),
		ChatMaxTokens: v.GetInt("ai.chat_max_tokens"),
		Temperature:   v.GetFloat64("ai.temperature"),
		TimeoutSecs:   v.GetInt("ai.timeout_secs"),
		TruncateChars: v.GetInt("ai.truncate_chars"),
		ContextChars:  v.GetInt("ai.context_chars"),
	}

	if cfg.Upload.MaxBytes() <= 0 {
		return nil, fmt.Errorf("upload size limit must be positive")
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		return nil, fmt.Errorf("at least one allowed upload type is required")
	}

	return cfg, nil
}

// splitList parses a comma-separated value, dropping blanks.
func splitList(raw string, lower bool) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if lower {
			item = strings.TrimPrefix(strings.ToLower(item), ".")
		}
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
