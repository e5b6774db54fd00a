package llm

import (
	"fmt"
	"sort"
	"strings"

	"docsumm/internal/config"
	"docsumm/internal/port"
)

// ProviderFactory is a function that creates a TextGenerator from the AI config.
type ProviderFactory func(cfg *config.AIConfig) (port.TextGenerator, error)

// registry of provider factories, populated by init() in each provider package.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// Providers returns the registered provider names in sorted order.
func Providers() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewGenerator creates a TextGenerator using the registered factory.
// It returns a nil generator and no error when no credential is configured,
// so callers can run without AI and report it as not configured.
func NewGenerator(cfg *config.AIConfig) (port.TextGenerator, error) {
	if !cfg.Configured() {
		return nil, nil
	}
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown AI provider: %s (available: %s)", cfg.Provider, strings.Join(Providers(), ", "))
	}
	return factory(cfg)
}
