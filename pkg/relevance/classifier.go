// Package relevance assigns each article a relevance tier by ordered
// keyword patterns. Tier 3 articles are excluded from signal scoring.
package relevance

import "strings"

// Result is the classification outcome for one article.
type Result struct {
	Tier           int    `json:"tier"`
	Reason         string `json:"reason"`
	MatchedPattern string `json:"matched_pattern,omitempty"`
}

// Classify assigns a tier by running the exclusion patterns (tier 3)
// first, then the promotion patterns (tier 1); the first match wins.
// Unmatched articles default to tier 2. Deterministic, side-effect
// free: the same (title, text) always yields the same result.
func Classify(title, text string) Result {
	combined := strings.ToLower(title + " " + text)
	titleLower := strings.ToLower(title)

	for _, p := range tier3Patterns {
		if p.matches(titleLower, combined) {
			return Result{
				Tier:           3,
				Reason:         p.reason,
				MatchedPattern: p.name,
			}
		}
	}

	for _, p := range tier1Patterns {
		if p.matches(titleLower, combined) {
			return Result{
				Tier:           1,
				Reason:         p.reason,
				MatchedPattern: p.name,
			}
		}
	}

	return Result{Tier: 2, Reason: "no tier pattern matched; default medium"}
}

// matches checks the pattern against the title (cheap, high precision)
// or the combined text depending on scope.
func (p pattern) matches(titleLower, combined string) bool {
	haystack := combined
	if p.titleOnly {
		haystack = titleLower
	}
	if p.re != nil {
		return p.re.MatchString(haystack)
	}
	for _, kw := range p.keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
