package generation

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Provider abstracts the language model call so tests can substitute a
// failing or scripted implementation.
type Provider interface {
	// Complete sends a single-turn prompt and returns the raw JSON the
	// model produced.
	Complete(ctx context.Context, req Request) (json.RawMessage, error)
}

// Request describes one completion call.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// OpenAIProvider implements Provider using the OpenAI chat API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (json.RawMessage, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in model response")
	}

	return json.RawMessage(resp.Choices[0].Message.Content), nil
}

// orFallback runs the model call and substitutes a deterministic result
// on any failure. The returned bool reports whether the fallback was used.
func orFallback[T any](ctx context.Context, call func(ctx context.Context) (T, error), fallback func() T) (T, bool) {
	result, err := call(ctx)
	if err != nil {
		return fallback(), true
	}
	return result, false
}
