package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"placewise/internal/models"
	"placewise/internal/prompt"
	"placewise/pkg/taxonomy"
)

// CategoryService classifies a business idea onto one closed taxonomy. The
// two categorization endpoint families each get their own instance with
// their own taxonomy and provider; they are independent configurations of
// the same builder/normalizer pair.
type CategoryService struct {
	provider CompletionService
	tax      taxonomy.Taxonomy
}

func NewCategoryService(provider CompletionService, tax taxonomy.Taxonomy) *CategoryService {
	return &CategoryService{provider: provider, tax: tax}
}

// Taxonomy exposes the closed set this service resolves onto.
func (s *CategoryService) Taxonomy() taxonomy.Taxonomy { return s.tax }

// Classify returns a category from the closed set, never anything else.
func (s *CategoryService) Classify(ctx context.Context, idea string) (models.CategoryResult, ResultSource) {
	if s.provider == nil || !s.provider.Available() {
		log.Debug("categorization provider unavailable, using fallback")
		return FallbackCategory(idea, s.tax), SourceFallback
	}

	raw, err := s.provider.GenerateCompletion(ctx, prompt.BuildCategorize(idea, s.tax))
	if err != nil {
		log.Warnf("categorization completion failed, using fallback: %v", err)
		return FallbackCategory(idea, s.tax), SourceFallback
	}

	result, err := ParseCategory(raw, s.tax)
	if err != nil {
		log.Warnf("categorization output unparseable, using fallback: %v", err)
		return FallbackCategory(idea, s.tax), SourceFallback
	}

	return result, ResultSource(s.provider.Name())
}
