package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"placewise/internal/models"
)

func TestCheck_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		v := Check(in)
		assert.False(t, v.Valid)
		assert.Equal(t, models.ValidationErrorEmpty, v.ErrorType, "input %q", in)
	}
}

func TestCheck_ShortInputIsNonsense(t *testing.T) {
	// "éa" and "ñx" are two runes but more than two bytes; length is counted
	// in characters, not bytes.
	for _, in := range []string{"a", "ab", "x ", " 1 ", "éa", "ñx"} {
		v := Check(in)
		assert.False(t, v.Valid, "input %q", in)
		assert.Equal(t, models.ValidationErrorNonsense, v.ErrorType, "input %q", in)
		assert.Contains(t, v.Reason, "too_short", "input %q", in)
	}
}

func TestCheck_NonsenseRules(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"entirely non-alphanumeric", "!!! ??? ***"},
		{"special char ratio", "b!z@ id#a$%"},
		{"keyboard walk asdf", "asdf business"},
		{"keyboard walk qwer", "qwerty shop"},
		{"keyboard walk zxcv", "zxcv store"},
		{"repeated character", "aaaaaa"},
		{"no vowels", "bcdfg shp"},
		{"long consonant run", "marketplatzschw idea"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := Check(tc.input)
			assert.False(t, v.Valid)
			assert.Equal(t, models.ValidationErrorNonsense, v.ErrorType)
			assert.NotEmpty(t, v.Reason)
		})
	}
}

func TestCheck_RuleOrderFirstMatchWins(t *testing.T) {
	// "zz" is both too short and vowel-less; the too_short rule is first.
	v := Check("zz")
	assert.Contains(t, v.Reason, "too_short")

	// "asdf" would also fail the no_vowel rule, but keyboard_mash runs first.
	v = Check("asdf")
	assert.Contains(t, v.Reason, "keyboard_mash")
}

func TestCheck_Prohibited(t *testing.T) {
	testCases := []string{
		"casino night club",
		"online GAMBLING hub",
		"sabong arena",
		"jueteng outlet",
		"counterfeit bags",
		"firearm dealership",
	}

	for _, in := range testCases {
		v := Check(in)
		assert.False(t, v.Valid, "input %q", in)
		assert.Equal(t, models.ValidationErrorProhibited, v.ErrorType, "input %q", in)
	}
}

func TestCheck_ValidIdeasPass(t *testing.T) {
	testCases := []string{
		"milk tea shop",
		"small bakery near the plaza",
		"motorcycle repair service",
		"sari-sari store",
		"coffee shop with coworking space",
	}

	for _, in := range testCases {
		v := Check(in)
		assert.True(t, v.Valid, "input %q", in)
		assert.Equal(t, models.ValidationErrorNone, v.ErrorType, "input %q", in)
	}
}
