package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placewise/pkg/taxonomy"
)

func TestStripFence(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json tagged fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"fence without newline", "```json{\"a\":1}```", `{"a":1}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripFence(tc.input))
		})
	}
}

// Stripping twice must equal stripping once.
func TestStripFence_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"category\": \"Retail\"}\n```",
		"```\nplain text\n```",
		`{"category": "Retail"}`,
	}
	for _, in := range inputs {
		once := StripFence(in)
		assert.Equal(t, once, StripFence(once), "input %q", in)
	}
}

func TestParseCategory(t *testing.T) {
	res, err := ParseCategory("```json\n{\"category\": \"Restaurant\", \"confidence\": 0.9}\n```", taxonomy.Advisory)
	require.NoError(t, err)
	assert.Equal(t, "Restaurant", res.Category)
	assert.Equal(t, 0.9, res.Confidence)
}

func TestParseCategory_FreeFormLabelResolved(t *testing.T) {
	// The model returned a label outside the closed set; it must be pulled
	// back onto the taxonomy via synonym matching.
	res, err := ParseCategory(`{"category": "bubble milk tea kiosk"}`, taxonomy.Advisory)
	require.NoError(t, err)
	assert.Equal(t, "Food and Beverages", res.Category)

	res, err = ParseCategory(`{"category": "something entirely different"}`, taxonomy.Advisory)
	require.NoError(t, err)
	assert.Equal(t, "Misc", res.Category)
}

func TestParseCategory_InvalidJSON(t *testing.T) {
	_, err := ParseCategory("I think it's probably Retail.", taxonomy.Advisory)
	require.Error(t, err)
}

func TestParseVerdict_ValidForcesNone(t *testing.T) {
	// The model contradicted itself; the invariant wins.
	v, err := ParseVerdict(`{"valid": true, "errorType": "nonsense", "message": "ok"}`)
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "none", string(v.ErrorType))
}

func TestParseVerdict_UnknownErrorTypeBecomesUnrecognized(t *testing.T) {
	v, err := ParseVerdict(`{"valid": false, "errorType": "weird", "message": "no"}`)
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Equal(t, "unrecognized", string(v.ErrorType))
}

func TestParseVerdict_InvalidJSON(t *testing.T) {
	_, err := ParseVerdict("not json at all")
	require.Error(t, err)
}

const validBundleJSON = `{
  "best_cluster": {"name": "Centro", "competition": "Low", "reason": "sparse"},
  "top_3_businesses": [
    {"name": "a", "score": 90, "fit": "High", "opportunity": "Strong", "reason": "r"},
    {"name": "b", "score": 84, "fit": "Moderate", "opportunity": "Strong", "reason": "r"},
    {"name": "c", "score": 77, "fit": "Moderate", "opportunity": "Strong", "reason": "r"}
  ],
  "cluster_summary": "s",
  "final_suggestion": "f",
  "confidence": 88
}`

func TestParseRecommendation(t *testing.T) {
	bundle, err := ParseRecommendation("```json\n" + validBundleJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Centro", bundle.BestCluster.Name)
	assert.Len(t, bundle.Top3Businesses, 3)
	assert.Equal(t, 88, bundle.Confidence)
}

func TestParseRecommendation_WrongSuggestionCount(t *testing.T) {
	short := `{"best_cluster":{"name":"x"},"top_3_businesses":[{"name":"a","score":90}],"confidence":80}`
	_, err := ParseRecommendation(short)
	require.Error(t, err)
}

func TestParseRecommendation_ConfidenceOutOfRange(t *testing.T) {
	bad := `{"best_cluster":{"name":"x"},"top_3_businesses":[{"name":"a"},{"name":"b"},{"name":"c"}],"confidence":140}`
	_, err := ParseRecommendation(bad)
	require.Error(t, err)
}
