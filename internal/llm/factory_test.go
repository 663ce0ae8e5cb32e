package llm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"taxwise/internal/config"
	"taxwise/internal/llm"
	"taxwise/internal/port"
)

func TestFactory_RegisterAndCreate(t *testing.T) {
	llm.RegisterProvider("test-provider", func(cfg *config.CompleterConfig) (port.Completer, error) {
		return &stubCompleter{model: cfg.Model}, nil
	})

	c, err := llm.NewCompleter(&config.CompleterConfig{
		Provider: "test-provider",
		Model:    "test-model",
	})

	assert.NoError(t, err)
	assert.NotNil(t, c)
}

func TestFactory_UnknownProvider(t *testing.T) {
	c, err := llm.NewCompleter(&config.CompleterConfig{
		Provider: "nonexistent-provider-xyz",
	})

	assert.Nil(t, c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}

// stubCompleter is a minimal Completer for testing the factory.
type stubCompleter struct {
	model string
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return s.model, nil
}

func (s *stubCompleter) Available() bool { return true }
