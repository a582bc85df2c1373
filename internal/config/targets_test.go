package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTargets = `{
  "organizations": [
    {
      "name": "TIS",
      "target_domain": "tabac-info-service.fr",
      "partners": ["ameli.fr", "sante.gouv.fr"],
      "keywords": ["sevrage", "accompagnement"],
      "color": "#4F46E5"
    }
  ],
  "queries": [
    {"organization": "TIS", "query": "comment arrêter de fumer"},
    {"organization": "TIS", "query": "meilleure application anti-tabac"}
  ]
}`

func TestParseTargets_Valid(t *testing.T) {
	targets, err := ParseTargets([]byte(validTargets))
	require.NoError(t, err)

	require.Len(t, targets.Organizations, 1)
	assert.Equal(t, "tabac-info-service.fr", targets.Organizations[0].TargetDomain)
	assert.Equal(t, []string{"ameli.fr", "sante.gouv.fr"}, targets.Organizations[0].Partners)
	require.Len(t, targets.Queries, 2)
}

func TestParseTargets_SchemaRejectsMissingTarget(t *testing.T) {
	_, err := ParseTargets([]byte(`{
	  "organizations": [{"name": "TIS"}],
	  "queries": [{"organization": "TIS", "query": "q"}]
	}`))

	assert.ErrorContains(t, err, "invalid targets file")
}

func TestParseTargets_SchemaRejectsMissingQueries(t *testing.T) {
	_, err := ParseTargets([]byte(`{"organizations": []}`))
	assert.ErrorContains(t, err, "invalid targets file")
}

func TestParseTargets_MalformedJSON(t *testing.T) {
	_, err := ParseTargets([]byte("{nope"))
	assert.Error(t, err)
}

func TestTargetsFromRows_MergesPerOrganization(t *testing.T) {
	rows := [][]string{
		{"TIS", "comment arrêter de fumer", "tabac-info-service.fr", "ameli.fr, sante.gouv.fr", "sevrage, accompagnement"},
		{"TIS", "meilleure application anti-tabac", "tabac-info-service.fr", "ameli.fr", "sevrage"},
		{"Acme", "best widget", "acme.com", "", ""},
	}

	targets := TargetsFromRows(rows)

	require.Len(t, targets.Queries, 3)
	require.Len(t, targets.Organizations, 2)

	orgs := targets.OrgMap()
	tis := orgs["TIS"]
	assert.Equal(t, []string{"ameli.fr", "sante.gouv.fr"}, tis.Partners)
	assert.Equal(t, []string{"sevrage", "accompagnement"}, tis.Keywords)

	// Missing lists degrade to empty, not errors.
	acme := orgs["Acme"]
	assert.Empty(t, acme.Partners)
	assert.Empty(t, acme.Keywords)
}

func TestTargetsFromRows_SkipsBlankRows(t *testing.T) {
	targets := TargetsFromRows([][]string{
		{"", "query without org"},
		{"Org", ""},
		{},
	})

	assert.Empty(t, targets.Queries)
	assert.Empty(t, targets.Organizations)
}

func TestTargetsFromRows_ShortRowTolerated(t *testing.T) {
	// Sheets drop trailing empty cells; a two-cell row is still a query.
	targets := TargetsFromRows([][]string{{"Org", "a query"}})

	require.Len(t, targets.Queries, 1)
	require.Len(t, targets.Organizations, 1)
	assert.Empty(t, targets.Organizations[0].TargetDomain)
}
