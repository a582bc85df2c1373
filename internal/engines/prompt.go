package engines

import "fmt"

// systemPrompt matches the original collection prompt: precise answers with
// sources listed.
const systemPrompt = "Be precise and list your sources."

// trailerInstruction tells the engine to append the machine-readable trailer
// the metadata extractor parses. The grammar is a fixed contract; changing it
// here requires changing the extractor patterns too.
const trailerInstruction = `After your answer, append exactly one line of the form:
METADATA | SOURCES: [domain1, domain2] | RECO: <1-5> | TOP_CONCURRENT: [domain]
where SOURCES lists the domains you cited, RECO rates how strongly you
recommend the leading option from 1 to 5, and TOP_CONCURRENT names the most
cited competing domain.`

// BuildPrompt assembles the full user prompt for one monitored query.
func BuildPrompt(query string) string {
	return fmt.Sprintf("%s\n\n%s", query, trailerInstruction)
}
