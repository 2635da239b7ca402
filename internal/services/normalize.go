package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"placewise/internal/models"
	"placewise/pkg/taxonomy"
)

// The normalizer turns raw generated text into typed results. The prompts
// forbid markdown fencing and demand a bare JSON object, but the model is
// untrusted output: fences are stripped anyway, parse failures are reported
// as errors and callers route them into the fallback generator instead of
// surfacing them.

// StripFence removes one leading/trailing triple-backtick fence (optionally
// tagged "json"). Idempotent: stripping twice equals stripping once.
func StripFence(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}

	out = strings.TrimPrefix(out, "```")
	out = strings.TrimPrefix(out, "json")
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}

// ParseCategory parses a categorization response and resolves the category
// onto the given closed taxonomy. The raw label is free text and must never
// escape the taxonomy, so resolution always applies.
func ParseCategory(raw string, tax taxonomy.Taxonomy) (models.CategoryResult, error) {
	var parsed struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(StripFence(raw)), &parsed); err != nil {
		return models.CategoryResult{}, fmt.Errorf("%w: %v", models.ErrUnparseableOutput, err)
	}

	if parsed.Confidence <= 0 || parsed.Confidence > 1 {
		parsed.Confidence = 1.0
	}

	return models.CategoryResult{
		Category:   tax.Resolve(parsed.Category),
		Confidence: parsed.Confidence,
	}, nil
}

// ParseVerdict parses a validation response and enforces the verdict
// invariants regardless of what the model returned: valid implies errorType
// "none", and an invalid verdict always carries a known errorType.
func ParseVerdict(raw string) (models.ValidationVerdict, error) {
	var parsed struct {
		Valid     bool   `json:"valid"`
		ErrorType string `json:"errorType"`
		Message   string `json:"message"`
		Reason    string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(StripFence(raw)), &parsed); err != nil {
		return models.ValidationVerdict{}, fmt.Errorf("%w: %v", models.ErrUnparseableOutput, err)
	}

	verdict := models.ValidationVerdict{
		Valid:   parsed.Valid,
		Message: parsed.Message,
		Reason:  parsed.Reason,
	}

	if parsed.Valid {
		verdict.ErrorType = models.ValidationErrorNone
		return verdict, nil
	}

	switch models.ValidationErrorType(parsed.ErrorType) {
	case models.ValidationErrorEmpty, models.ValidationErrorNonsense, models.ValidationErrorProhibited, models.ValidationErrorUnrecognized:
		verdict.ErrorType = models.ValidationErrorType(parsed.ErrorType)
	default:
		verdict.ErrorType = models.ValidationErrorUnrecognized
	}
	if verdict.Message == "" {
		verdict.Message = "This doesn't appear to be a valid business idea."
	}
	return verdict, nil
}

// ParseRecommendation parses a recommendation response. A bundle without
// exactly three suggestions or with a confidence outside [0,100] is treated
// as a parse failure so the caller falls back to the heuristic generator.
func ParseRecommendation(raw string) (models.RecommendationBundle, error) {
	var bundle models.RecommendationBundle
	if err := json.Unmarshal([]byte(StripFence(raw)), &bundle); err != nil {
		return models.RecommendationBundle{}, fmt.Errorf("%w: %v", models.ErrUnparseableOutput, err)
	}

	if len(bundle.Top3Businesses) != 3 {
		return models.RecommendationBundle{}, fmt.Errorf("%w: expected 3 business suggestions, got %d",
			models.ErrUnparseableOutput, len(bundle.Top3Businesses))
	}
	if bundle.Confidence < 0 || bundle.Confidence > 100 {
		return models.RecommendationBundle{}, fmt.Errorf("%w: confidence %d out of range",
			models.ErrUnparseableOutput, bundle.Confidence)
	}

	return bundle, nil
}
