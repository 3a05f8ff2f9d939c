package repo

import "context"

// LLMRequest is one generation call to the external LLM endpoint.
// Constructed fresh per stage call, not persisted.
type LLMRequest struct {
	Model       string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// LLMRepo is the external LLM endpoint interface
type LLMRepo interface {
	// Generate sends a prompt and returns the generated text.
	// Transport failures and non-success statuses surface
	// domain.ErrExternalService; unusable payloads surface
	// domain.ErrMalformedResponse.
	Generate(ctx context.Context, req LLMRequest) (string, error)
}
