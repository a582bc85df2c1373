package engines

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// perplexityBaseURL is Perplexity's OpenAI-compatible chat-completions
// endpoint.
const perplexityBaseURL = "https://api.perplexity.ai"

// ChatEngine queries any OpenAI-compatible chat-completions API. Both the
// OpenAI and Perplexity engines are this type with different base URLs.
type ChatEngine struct {
	name   string
	client *openai.Client
	model  string
}

// NewPerplexity creates a Perplexity engine, which speaks the OpenAI
// chat-completions protocol on its own base URL.
func NewPerplexity(apiKey, model string) (*ChatEngine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultPerplexityModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = perplexityBaseURL
	return &ChatEngine{
		name:   NamePerplexity,
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// NewOpenAI creates an OpenAI engine.
func NewOpenAI(apiKey, model string) (*ChatEngine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	return &ChatEngine{
		name:   NameOpenAI,
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Name returns the engine identifier.
func (c *ChatEngine) Name() string { return c.name }

// Ask evaluates one monitored query.
func (c *ChatEngine) Ask(ctx context.Context, query string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(query)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", c.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in %s response", c.name)
	}

	return resp.Choices[0].Message.Content, nil
}

// Close is a no-op; the underlying HTTP client holds no resources.
func (c *ChatEngine) Close() error { return nil }
