package domain

import "errors"

// ErrExternalService indicates the external LLM call failed: network error,
// non-success status, or timeout. The orchestrator converts it into a
// degraded reply; it never reaches the chat surface raw.
var ErrExternalService = errors.New("llm service unavailable")

// ErrMalformedResponse indicates the LLM returned content that cannot be
// used, e.g. empty text where non-empty was required.
var ErrMalformedResponse = errors.New("malformed llm response")
