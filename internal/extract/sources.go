// Package extract parses unstructured answer-engine text: cited source
// domains on one side, the structured metadata trailer on the other. Both are
// best-effort heuristics; finding nothing is a valid outcome, never an error.
package extract

import (
	"net/url"
	"regexp"
	"strings"
)

// MaxSources caps the number of distinct sources kept per answer.
const MaxSources = 10

// minSourceLen drops noise tokens like "a.b" or stray punctuation runs.
const minSourceLen = 4

var (
	urlPattern = regexp.MustCompile(`https?://[^\s<>"')\]}]+`)

	// Bare domain-like tokens, recognized by a common TLD suffix. Answer
	// engines overwhelmingly cite mainstream TLDs; exotic ones still get
	// picked up when cited as full URLs.
	domainPattern = regexp.MustCompile(`(?i)\b(?:[a-z0-9][a-z0-9-]*\.)+(?:com|org|net|fr|io|co|gov|edu|info|eu|uk|de|es|it|ca|ch|be|nl|app|dev|ai|health|news|media|live)\b`)

	trailerSourcesPattern = regexp.MustCompile(`SOURCES:\s*\[([^\]]*)\]`)
)

// Sources extracts the cited domains from a raw answer, merging three
// strategies over the same text: full URLs (domain component kept), bare
// domain-like tokens, and the explicit "SOURCES: [a.com, b.fr]" trailer
// field. Entries are normalized (lower-case, "www." and surrounding
// punctuation stripped), deduplicated preserving first-seen order, and
// truncated to MaxSources.
func Sources(raw string) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(candidate string) {
		s := normalizeSource(candidate)
		if len(s) < minSourceLen || !strings.Contains(s, ".") {
			return
		}
		if seen[s] || len(out) >= MaxSources {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, match := range urlPattern.FindAllString(raw, -1) {
		add(urlDomain(match))
	}
	for _, match := range domainPattern.FindAllString(raw, -1) {
		add(match)
	}
	if m := trailerSourcesPattern.FindStringSubmatch(raw); m != nil {
		for _, part := range strings.Split(m[1], ",") {
			add(part)
		}
	}

	return out
}

// urlDomain returns the host component of a matched URL, or the raw match
// when it does not parse as a URL.
func urlDomain(rawURL string) string {
	u, err := url.Parse(strings.TrimRight(rawURL, ".,;:!?"))
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return u.Hostname()
}

// normalizeSource case-folds a candidate and strips surrounding punctuation,
// brackets, quotes and the "www." prefix.
func normalizeSource(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, `.,;:!?()[]{}<>"'`+"`")
	s = strings.TrimPrefix(s, "www.")
	return s
}
