package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"placewise/internal/models"
	"placewise/internal/prompt"
	"placewise/internal/sanitize"
)

// SourceLocal marks verdicts produced by the local sanitizer without any
// external call.
const SourceLocal ResultSource = "local"

// ValidationService validates a business idea: local heuristics first, then
// a semantic check against the completion provider. The local checks run
// unconditionally before the external call; that ordering is a cost-control
// contract, since the completion call is the only billed, failure-prone
// step.
type ValidationService struct {
	provider CompletionService
}

func NewValidationService(provider CompletionService) *ValidationService {
	return &ValidationService{provider: provider}
}

// Validate returns a verdict and its source: "local" for sanitizer
// rejections, the provider name for semantic verdicts, "fallback" when the
// provider is unreachable (lenient: the input is accepted).
func (s *ValidationService) Validate(ctx context.Context, idea string) (models.ValidationVerdict, ResultSource) {
	if verdict := sanitize.Check(idea); !verdict.Valid {
		return verdict, SourceLocal
	}

	if s.provider == nil || !s.provider.Available() {
		log.Debug("validation provider unavailable, accepting input")
		return FallbackVerdict(), SourceFallback
	}

	raw, err := s.provider.GenerateCompletion(ctx, prompt.BuildValidate(idea))
	if err != nil {
		log.Warnf("validation completion failed, accepting input: %v", err)
		return FallbackVerdict(), SourceFallback
	}

	verdict, err := ParseVerdict(raw)
	if err != nil {
		log.Warnf("validation output unparseable, accepting input: %v", err)
		return FallbackVerdict(), SourceFallback
	}

	return verdict, ResultSource(s.provider.Name())
}
