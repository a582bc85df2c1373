package engines

import (
	"context"
	"fmt"
	"os"
)

// Default models per engine, overridable via environment.
const (
	defaultGeminiModel     = "gemini-2.5-flash"
	defaultPerplexityModel = "sonar"
	defaultOpenAIModel     = "gpt-4o-mini"
)

// Credentials holds the per-engine API keys and model overrides. An empty
// key disables that engine; FromEnv builds whatever subset is configured.
type Credentials struct {
	PerplexityKey   string
	PerplexityModel string
	GeminiKey       string
	GeminiModel     string
	OpenAIKey       string
	OpenAIModel     string
}

// CredentialsFromEnv reads the engine credentials from the environment.
func CredentialsFromEnv() Credentials {
	return Credentials{
		PerplexityKey:   os.Getenv("PERPLEXITY_API_KEY"),
		PerplexityModel: os.Getenv("PERPLEXITY_MODEL"),
		GeminiKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     os.Getenv("GEMINI_MODEL"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     os.Getenv("OPENAI_MODEL"),
	}
}

// Build creates clients for every engine with a configured key, in the fixed
// engine order Perplexity, Gemini, OpenAI. A missing credential simply skips
// that engine; no configured engine at all is an error, because a run with
// zero engines cannot produce anything.
func Build(ctx context.Context, creds Credentials) ([]Engine, error) {
	var out []Engine

	if creds.PerplexityKey != "" {
		e, err := NewPerplexity(creds.PerplexityKey, creds.PerplexityModel)
		if err != nil {
			return nil, fmt.Errorf("perplexity engine: %w", err)
		}
		out = append(out, e)
	}
	if creds.GeminiKey != "" {
		e, err := NewGemini(ctx, creds.GeminiKey, creds.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("gemini engine: %w", err)
		}
		out = append(out, e)
	}
	if creds.OpenAIKey != "" {
		e, err := NewOpenAI(creds.OpenAIKey, creds.OpenAIModel)
		if err != nil {
			return nil, fmt.Errorf("openai engine: %w", err)
		}
		out = append(out, e)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no engine configured: set PERPLEXITY_API_KEY, GEMINI_API_KEY or OPENAI_API_KEY")
	}
	return out, nil
}

// CloseAll closes every engine, keeping the first error.
func CloseAll(engines []Engine) error {
	var firstErr error
	for _, e := range engines {
		if err := e.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
