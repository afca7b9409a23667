package keywords

import (
	"strings"
)

// PlaceholderDomain stands in for the domain token of a URL that has none.
const PlaceholderDomain = "product"

// ExtractDomain returns the text between a URL's scheme and its first dot,
// e.g. "cubehq" for "https://cubehq.com". Paths and spaces are kept as they
// are, so "https://cubehq/pricing" gives "cubehq/pricing". An empty token
// gives PlaceholderDomain.
func ExtractDomain(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+len("://"):]
	}
	if i := strings.Index(s, "."); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return PlaceholderDomain
	}
	return s
}
