// Package engines provides the answer-engine clients queried by the
// collection job. Each engine answers a monitored query with free-form text
// plus the structured metadata trailer the prompt asks for.
package engines

import "context"

// Engine names as they appear in persisted rows and metrics.
const (
	NamePerplexity = "PERPLEXITY"
	NameGemini     = "GEMINI"
	NameOpenAI     = "OPENAI"
)

// Engine is a single LLM answer engine.
type Engine interface {
	// Name returns the engine identifier used in persisted rows.
	Name() string
	// Ask evaluates one monitored query and returns the raw answer text.
	Ask(ctx context.Context, query string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}
