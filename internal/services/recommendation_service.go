package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"placewise/internal/models"
	"placewise/internal/prompt"
)

// RecommendationService produces location recommendations for a business
// idea. The result is always a well-formed bundle: every failure of the
// completion call or the normalizer routes into the heuristic fallback.
type RecommendationService struct {
	provider CompletionService
}

func NewRecommendationService(provider CompletionService) *RecommendationService {
	return &RecommendationService{provider: provider}
}

// Recommend returns the bundle and the source that produced it. The source
// is the provider name on the success path and "fallback" otherwise.
func (s *RecommendationService) Recommend(ctx context.Context, in models.RecommendationInput) (models.RecommendationBundle, ResultSource) {
	if s.provider == nil || !s.provider.Available() {
		log.Debug("recommendation provider unavailable, using fallback")
		return FallbackRecommendation(in), SourceFallback
	}

	raw, err := s.provider.GenerateCompletion(ctx, prompt.BuildRecommend(in))
	if err != nil {
		log.Warnf("recommendation completion failed, using fallback: %v", err)
		return FallbackRecommendation(in), SourceFallback
	}

	bundle, err := ParseRecommendation(raw)
	if err != nil {
		log.Warnf("recommendation output unparseable, using fallback: %v", err)
		return FallbackRecommendation(in), SourceFallback
	}

	return bundle, ResultSource(s.provider.Name())
}
