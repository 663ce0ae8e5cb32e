package llm

import (
	"fmt"

	"taxwise/internal/config"
	"taxwise/internal/port"
)

// ProviderFactory is a function that creates a Completer from a provider config.
type ProviderFactory func(cfg *config.CompleterConfig) (port.Completer, error)

// registry of completer provider factories, populated explicitly via
// RegisterProvider at process start. The provider is selected once from
// configuration; there is no runtime probing across providers.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a completer provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewCompleter creates a Completer from a provider config using the
// registered factory.
func NewCompleter(cfg *config.CompleterConfig) (port.Completer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
