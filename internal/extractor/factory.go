package extractor

import (
	"fmt"
	"sort"
	"sync"

	"lexdraft/internal/config"
	"lexdraft/internal/port"
)

// ProviderFactory creates an ExtractionSource from a provider config.
type ProviderFactory func(cfg *config.ProviderConfig) (port.ExtractionSource, error)

var (
	providersMu sync.RWMutex
	providers   = map[string]ProviderFactory{}
)

// RegisterProvider registers an extraction provider factory by name.
// Provider packages call it from init.
func RegisterProvider(name string, factory ProviderFactory) {
	providersMu.Lock()
	defer providersMu.Unlock()
	providers[name] = factory
}

// Providers lists the registered provider names.
func Providers() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewExtractor creates an ExtractionSource from a provider config using the registered factory.
func NewExtractor(cfg *config.ProviderConfig) (port.ExtractionSource, error) {
	providersMu.RLock()
	factory, ok := providers[cfg.Provider]
	providersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown extraction provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
