package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSources_FullURLs(t *testing.T) {
	raw := "Voir https://www.tabac-info-service.fr/aide et http://ameli.fr."

	sources := Sources(raw)

	assert.Equal(t, []string{"tabac-info-service.fr", "ameli.fr"}, sources)
}

func TestSources_BareDomains(t *testing.T) {
	raw := "Les sites kwit.app et sante.gouv.fr sont souvent recommandés."

	sources := Sources(raw)

	assert.Contains(t, sources, "kwit.app")
	assert.Contains(t, sources, "sante.gouv.fr")
}

func TestSources_TrailerLine(t *testing.T) {
	raw := "Réponse détaillée.\nMETADATA | SOURCES: [Doctolib.fr, www.ameli.fr] | RECO: 4 | TOP_CONCURRENT: [kwit.app]"

	sources := Sources(raw)

	assert.Contains(t, sources, "doctolib.fr")
	assert.Contains(t, sources, "ameli.fr")
}

func TestSources_DedupAcrossStrategies(t *testing.T) {
	// The same domain as URL, bare token and trailer entry counts once.
	raw := "https://example.com puis example.com\nSOURCES: [example.com]"

	sources := Sources(raw)

	assert.Equal(t, []string{"example.com"}, sources)
}

func TestSources_FirstSeenOrderPreserved(t *testing.T) {
	raw := "D'abord alpha.com, ensuite beta.org, enfin gamma.fr"

	sources := Sources(raw)

	assert.Equal(t, []string{"alpha.com", "beta.org", "gamma.fr"}, sources)
}

func TestSources_NoiseDiscarded(t *testing.T) {
	// Tokens without a dot or shorter than four characters are noise.
	raw := "SOURCES: [a.b, ok, tabac-info-service.fr]"

	sources := Sources(raw)

	assert.Equal(t, []string{"tabac-info-service.fr"}, sources)
}

func TestSources_CapAtTen(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&sb, "site-%02d.com ", i)
	}

	sources := Sources(sb.String())

	require.Len(t, sources, MaxSources)
	assert.Equal(t, "site-00.com", sources[0])
	assert.Equal(t, "site-09.com", sources[9])
}

func TestSources_EmptyTextIsValid(t *testing.T) {
	assert.Empty(t, Sources(""))
	assert.Empty(t, Sources("Aucune source ici, juste du texte."))
}

func TestSources_IdempotentOverOwnOutput(t *testing.T) {
	raw := "Consultez https://www.tabac-info-service.fr et ameli.fr\nSOURCES: [sante.gouv.fr, kwit.app]"

	first := Sources(raw)
	second := Sources(strings.Join(first, ", "))

	assert.Equal(t, first, second)
}

func TestSources_NeverReturnsDotlessEntries(t *testing.T) {
	sources := Sources("SOURCES: [plain, words, here] plus doctolib.fr")

	for _, s := range sources {
		assert.Contains(t, s, ".")
	}
}
