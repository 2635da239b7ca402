// Package sanitize rejects malformed or disallowed business descriptions
// before any billed AI call is made. Both checks are pure and synchronous;
// handlers must run them first so garbage input never reaches the
// text-generation service.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"placewise/internal/models"
)

// nonsenseRule is one entry of the ordered heuristic table. Rules run in
// order and the first match wins; Name ends up in the verdict reason so each
// rule can be asserted on individually.
type nonsenseRule struct {
	Name  string
	Match func(s string) bool
}

var (
	vowelRe          = regexp.MustCompile(`(?i)[aeiou]`)
	alphanumericRe   = regexp.MustCompile(`[a-zA-Z0-9]`)
	consonantRun5Re  = regexp.MustCompile(`(?i)[bcdfghjklmnpqrstvwxyz]{5,}`)
	consonantRun6Re  = regexp.MustCompile(`(?i)[bcdfghjklmnpqrstvwxyz]{6,}`)
	repeatedScanLen  = 4
	keyboardPatterns = []string{"asdf", "qwer", "zxcv", "hjkl", "asdasd", "qweqwe", "12345"}
)

var nonsenseRules = []nonsenseRule{
	{
		Name:  "too_short",
		Match: func(s string) bool { return utf8.RuneCountInString(s) < 3 },
	},
	{
		Name:  "non_alphanumeric",
		Match: func(s string) bool { return !alphanumericRe.MatchString(s) },
	},
	{
		Name:  "special_ratio",
		Match: specialRatioExceeded,
	},
	{
		Name: "consonant_run_no_vowel",
		Match: func(s string) bool {
			return !vowelRe.MatchString(s) && consonantRun5Re.MatchString(s)
		},
	},
	{
		Name:  "keyboard_mash",
		Match: looksLikeKeyboardMash,
	},
	{
		Name:  "no_vowel",
		Match: func(s string) bool { return !vowelRe.MatchString(s) },
	},
	{
		Name:  "consonant_run",
		Match: func(s string) bool { return consonantRun6Re.MatchString(s) },
	},
}

// prohibitedKeywords is the fixed denylist, matched case-insensitively as
// substrings. Includes local slang for cockfighting and illegal numbers
// games alongside the generic terms.
var prohibitedKeywords = []string{
	"gambling", "casino", "betting", "lottery", "jueteng", "sabong",
	"tupada", "drug den", "shabu", "marijuana", "narcotic", "weapon",
	"firearm", "ammunition", "explosive", "trafficking", "smuggling",
	"fraud", "scam", "ponzi", "counterfeit", "pirated", "black market",
}

// specialRatioExceeded reports whether more than 30% of non-space characters
// are neither letters nor digits.
func specialRatioExceeded(s string) bool {
	var total, special int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			special++
		}
	}
	if total == 0 {
		return false
	}
	return float64(special)/float64(total) > 0.3
}

// looksLikeKeyboardMash matches the fixed keyboard-walk substrings and any
// rune repeated four or more times consecutively.
func looksLikeKeyboardMash(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range keyboardPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}

	run := 0
	var prev rune
	for _, r := range lower {
		if r == prev {
			run++
			if run >= repeatedScanLen {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// Check validates a free-text business idea. It returns a verdict with
// Valid=false for empty, nonsense or prohibited input, and a passing verdict
// otherwise. A passing verdict only means local heuristics found nothing;
// callers may still consult the validation service for a semantic check.
func Check(text string) models.ValidationVerdict {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.ValidationVerdict{
			Valid:     false,
			ErrorType: models.ValidationErrorEmpty,
			Message:   "Please enter a business idea.",
		}
	}

	for _, rule := range nonsenseRules {
		if rule.Match(trimmed) {
			return models.ValidationVerdict{
				Valid:     false,
				ErrorType: models.ValidationErrorNonsense,
				Message:   "That doesn't look like a real business idea. Please describe it in a few words.",
				Reason:    fmt.Sprintf("nonsense heuristic matched: %s", rule.Name),
			}
		}
	}

	if kw, ok := matchProhibited(trimmed); ok {
		return models.ValidationVerdict{
			Valid:     false,
			ErrorType: models.ValidationErrorProhibited,
			Message:   "This business idea involves a prohibited or restricted activity and cannot be analyzed.",
			Reason:    fmt.Sprintf("prohibited keyword: %s", kw),
		}
	}

	return models.ValidationVerdict{
		Valid:     true,
		ErrorType: models.ValidationErrorNone,
		Message:   "Input passed local checks.",
	}
}

func matchProhibited(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, kw := range prohibitedKeywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}
