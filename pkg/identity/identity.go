// Package identity normalizes product URLs to canonical identities so that
// many URL variants of the same product collapse to one catalog record.
package identity

import "regexp"

// canonicalBase is the fixed domain the canonical URL is rebuilt on.
const canonicalBase = "https://www.amazon.in/dp/"

// productIDPattern matches a 10-character alphanumeric product identifier
// embedded after a /dp/ or /gp/product/ path segment. Case-sensitive:
// product identifiers use uppercase letters and digits only.
var productIDPattern = regexp.MustCompile(`/(dp|gp/product)/([A-Z0-9]{10})`)

// Normalize maps an arbitrary product URL to its canonical identity.
// URLs carrying a recognizable product identifier are rebuilt as a clean
// fixed-domain URL; anything else is returned unchanged, degrading to
// weaker deduplication rather than failing. Pure and deterministic, so the
// result is stable across processes and runs.
func Normalize(rawURL string) string {
	m := productIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return rawURL
	}
	return canonicalBase + m[2]
}

// ProductID extracts the bare product identifier from a URL, or "" when
// the URL carries none.
func ProductID(rawURL string) string {
	m := productIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[2]
}
