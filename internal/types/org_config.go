// Package types defines the shared data model for the visibility engine:
// organization taxonomies, per-engine answer records, persisted query-run
// results, and the derived aggregate metrics.
package types

// OrganizationConfig holds the per-organization taxonomy used for source
// classification and scoring. Loaded once per run, looked up by Name, and
// treated as immutable afterwards.
type OrganizationConfig struct {
	Name         string   `json:"name" validate:"required"`
	TargetDomain string   `json:"target_domain" validate:"required"`
	Partners     []string `json:"partners,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	// Color is cosmetic (dashboard display) and excluded from scoring.
	Color string `json:"color,omitempty"`
}

// MonitoredQuery is one query text tracked for one organization. The
// collection job evaluates every monitored query against every configured
// answer engine on each run.
type MonitoredQuery struct {
	Organization string `json:"organization" validate:"required"`
	Query        string `json:"query" validate:"required"`
}
