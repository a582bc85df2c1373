package types

// Classification tags a cited source relative to an organization's taxonomy.
type Classification string

// Classification values, in match-priority order.
const (
	ClassOwned      Classification = "owned"
	ClassPartner    Classification = "partner"
	ClassCompetitor Classification = "competitor"
)
