package observability

import (
	"strings"
	"testing"

	"github.com/jonathan/geo-radar/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintQueryResult(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb)

	p.PrintQueryResult(types.EngineResult{
		Query:       "comment arrêter de fumer",
		GlobalScore: 65,
		Answers: []types.AnswerRecord{
			{
				Engine:    "PERPLEXITY",
				Score:     80,
				Breakdown: []string{"OFFICIEL (+50)", "Top 3 Ranking (+30)"},
				Sources:   []string{"tabac-info-service.fr"},
			},
			{Engine: "GEMINI", Failed: true},
		},
	})

	out := sb.String()
	assert.Contains(t, out, "PERPLEXITY")
	assert.Contains(t, out, "80/100")
	assert.Contains(t, out, "ERREUR")
	assert.Contains(t, out, "Global: 65.0/100")
}

func TestPrintOrganizationConfig(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb)

	p.PrintOrganizationConfig(types.OrganizationConfig{
		Name:         "TIS",
		TargetDomain: "tabac-info-service.fr",
		Partners:     []string{"ameli.fr"},
	})

	out := sb.String()
	assert.Contains(t, out, "Organization: TIS")
	assert.Contains(t, out, "tabac-info-service.fr")
}
