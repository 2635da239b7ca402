package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placewise/internal/models"
	"placewise/pkg/taxonomy"
)

// --- Mock completion provider ---

type mockProvider struct {
	response  string
	err       error
	available bool
	calls     int
}

func (m *mockProvider) GenerateCompletion(ctx context.Context, promptText string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockProvider) Available() bool   { return m.available }
func (m *mockProvider) Name() string      { return "mock" }
func (m *mockProvider) ModelName() string { return "mock-model" }

// --- CategoryService ---

func TestCategoryService_SuccessPath(t *testing.T) {
	provider := &mockProvider{available: true, response: "```json\n{\"category\": \"Restaurant\", \"confidence\": 0.8}\n```"}
	svc := NewCategoryService(provider, taxonomy.Advisory)

	res, source := svc.Classify(context.Background(), "roadside eatery")

	assert.Equal(t, "Restaurant", res.Category)
	assert.Equal(t, ResultSource("mock"), source)
	assert.Equal(t, 1, provider.calls)
}

func TestCategoryService_NoCredentialFallsThroughSynonyms(t *testing.T) {
	provider := &mockProvider{available: false}
	svc := NewCategoryService(provider, taxonomy.Advisory)

	res, source := svc.Classify(context.Background(), "milk tea shop")

	assert.Equal(t, "Food and Beverages", res.Category)
	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, 0, provider.calls, "no external call may be made without a credential")
}

func TestCategoryService_UnparseableOutputUsesFallback(t *testing.T) {
	provider := &mockProvider{available: true, response: "Sure! I'd say that's Retail."}
	svc := NewCategoryService(provider, taxonomy.Advisory)

	res, source := svc.Classify(context.Background(), "gift shop")

	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, "Retail", res.Category) // synonym match on the idea text
}

func TestCategoryService_ProviderErrorUsesFallback(t *testing.T) {
	provider := &mockProvider{available: true, err: errors.New("simulated 429")}
	svc := NewCategoryService(provider, taxonomy.Advisory)

	res, source := svc.Classify(context.Background(), "hardware store")

	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, "Merchandising/Trading", res.Category)
}

// --- ValidationService ---

func TestValidationService_SanitizerShortCircuitsExternalCall(t *testing.T) {
	provider := &mockProvider{available: true, response: `{"valid": true, "errorType": "none", "message": "ok"}`}
	svc := NewValidationService(provider)

	v, source := svc.Validate(context.Background(), "aaaaaa")
	assert.False(t, v.Valid)
	assert.Equal(t, models.ValidationErrorNonsense, v.ErrorType)
	assert.Equal(t, SourceLocal, source)
	assert.Equal(t, 0, provider.calls, "local checks must run before any billed call")

	v, _ = svc.Validate(context.Background(), "casino night club")
	assert.False(t, v.Valid)
	assert.Equal(t, models.ValidationErrorProhibited, v.ErrorType)
	assert.Equal(t, 0, provider.calls)
}

func TestValidationService_SemanticVerdict(t *testing.T) {
	provider := &mockProvider{available: true, response: `{"valid": false, "errorType": "unrecognized", "message": "not a business"}`}
	svc := NewValidationService(provider)

	v, source := svc.Validate(context.Background(), "purple monkey dishwasher")

	assert.False(t, v.Valid)
	assert.Equal(t, models.ValidationErrorUnrecognized, v.ErrorType)
	assert.Equal(t, ResultSource("mock"), source)
}

func TestValidationService_UnavailableIsLenient(t *testing.T) {
	svc := NewValidationService(&mockProvider{available: false})

	v, source := svc.Validate(context.Background(), "flower shop")

	assert.True(t, v.Valid)
	assert.Equal(t, models.ValidationErrorNone, v.ErrorType)
	assert.Equal(t, SourceFallback, source)
}

// --- RecommendationService ---

func TestRecommendationService_SuccessPath(t *testing.T) {
	provider := &mockProvider{available: true, response: validBundleJSON}
	svc := NewRecommendationService(provider)

	bundle, source := svc.Recommend(context.Background(), recInput(1, 1, 5))

	require.Len(t, bundle.Top3Businesses, 3)
	assert.Equal(t, "Centro", bundle.BestCluster.Name)
	assert.Equal(t, ResultSource("mock"), source)
}

func TestRecommendationService_UnavailableUsesHeuristic(t *testing.T) {
	svc := NewRecommendationService(&mockProvider{available: false})

	bundle, source := svc.Recommend(context.Background(), recInput(0, 0, 2))

	assert.Equal(t, SourceFallback, source)
	assert.Contains(t, bundle.FinalSuggestion, "excellent opportunity")
	assert.Contains(t, bundle.BestCluster.Reason, "No direct competitors nearby")
}

func TestRecommendationService_MalformedBundleUsesHeuristic(t *testing.T) {
	// Two suggestions instead of three: shape violation routes to fallback.
	provider := &mockProvider{available: true, response: `{"best_cluster":{"name":"x"},"top_3_businesses":[{"name":"a"},{"name":"b"}],"confidence":70}`}
	svc := NewRecommendationService(provider)

	bundle, source := svc.Recommend(context.Background(), recInput(4, 4, 0))

	assert.Equal(t, SourceFallback, source)
	require.Len(t, bundle.Top3Businesses, 3)
	assert.Equal(t, "High", bundle.BestCluster.Competition)
}
