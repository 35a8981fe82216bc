// Package entity canonicalizes entity surface forms. Every boundary
// where an entity name enters the system (mention inserts, signal
// queries, cluster key derivation) goes through Normalize.
package entity

import "strings"

// Normalize maps a surface form (ticker, "$BTC", case variants) to its
// canonical name. Unknown inputs are returned unchanged, trimmed.
// Matching is case-insensitive; the canonical form preserves case.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	key := strings.ToLower(trimmed)
	// "$BTC" and "BTC" are the same ticker.
	key = strings.TrimPrefix(key, "$")
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return trimmed
}

// NormalizeAll normalizes a slice in place-order, deduplicating while
// preserving first-occurrence order.
func NormalizeAll(raws []string) []string {
	seen := make(map[string]struct{}, len(raws))
	out := make([]string, 0, len(raws))
	for _, r := range raws {
		c := Normalize(r)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
