package services

import (
	"context"
)

// CompletionService is the single suspension point per request: one prompt
// in, raw text out, no schema guarantee on the output. Implementations must
// be safe for concurrent use; every request is independent.
type CompletionService interface {
	GenerateCompletion(ctx context.Context, promptText string) (string, error)
	Available() bool   // false when the credential is missing
	Name() string      // provider name ("gemini", "openai")
	ModelName() string // specific model identifier
}

// ResultSource labels which branch produced a response, making the
// always-available fallback explicit in every payload.
type ResultSource string

const (
	SourceFallback ResultSource = "fallback"
)
