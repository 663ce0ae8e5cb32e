package port

import "context"

// Completer abstracts a text-completion LLM endpoint that accepts a
// system+user message pair and returns the raw completion text.
//
// Callers must check Available before invoking Complete; an unconfigured
// completer reports false instead of failing at call time.
type Completer interface {
	// Complete sends the prompts and returns the raw text of the first
	// completion choice. Returns llm.ErrServiceUnavailable when no
	// credential is configured and *llm.UpstreamError on provider failure.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Available reports whether a credential is configured.
	Available() bool
}
