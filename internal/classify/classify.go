// Package classify maps cited source strings to an organization's taxonomy
// (owned, partner, competitor).
package classify

import (
	"strings"

	"github.com/jonathan/geo-radar/internal/types"
)

// Classify tags a cited source against the organization's configuration.
// Priority is fixed: owned wins over partner, partner wins over competitor,
// and any source that matches neither is a competitor. The function is total
// and deterministic; it never fails.
func Classify(source string, cfg types.OrganizationConfig) types.Classification {
	src := strings.ToLower(strings.TrimSpace(source))

	if matches(src, NormalizeDomain(cfg.TargetDomain)) {
		return types.ClassOwned
	}
	for _, partner := range cfg.Partners {
		if matches(src, NormalizeDomain(partner)) {
			return types.ClassPartner
		}
	}
	return types.ClassCompetitor
}

// NormalizeDomain lowercases a configured domain and strips the protocol,
// "www." prefix and trailing slash so that "https://www.Example.com/" and
// "example.com" compare equal.
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	return strings.TrimSuffix(d, "/")
}

// matches reports bidirectional substring containment between a cited source
// and a configured domain. The reverse direction handles partial citation
// strings ("tabac-info" citing "tabac-info-service.fr"). Blank strings never
// match; without that guard every source would contain the empty target.
func matches(source, domain string) bool {
	if source == "" || domain == "" {
		return false
	}
	return strings.Contains(source, domain) || strings.Contains(domain, source)
}
