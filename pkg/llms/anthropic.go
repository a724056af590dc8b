// Package llms contains concrete implementations of the core.LLM
// capability. Patterns only ever see the interface; anything
// provider-specific stays here.
package llms

import (
	"context"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/XiaoConstantine/agentic-go/pkg/core"
	errs "github.com/XiaoConstantine/agentic-go/pkg/errors"
	"github.com/XiaoConstantine/agentic-go/pkg/logging"
)

// Per-1K-token prices in dollars, keyed by model family substring.
type pricing struct {
	prompt     float64
	completion float64
}

var anthropicPricing = []struct {
	family string
	price  pricing
}{
	{"opus", pricing{prompt: 0.015, completion: 0.075}},
	{"sonnet", pricing{prompt: 0.003, completion: 0.015}},
}

// Anything else (haiku and unknown models) is priced at the cheapest tier.
var anthropicFallbackPricing = pricing{prompt: 0.0008, completion: 0.0024}

// AnthropicLLM implements the core.LLM interface for Anthropic's models.
type AnthropicLLM struct {
	client *anthropic.Client
	model  anthropic.Model
}

var _ core.LLM = (*AnthropicLLM)(nil)

// NewAnthropicLLM creates a new AnthropicLLM instance. An empty apiKey
// falls back to the ANTHROPIC_API_KEY environment variable.
func NewAnthropicLLM(apiKey string, model anthropic.Model) (*AnthropicLLM, error) {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, errs.New(errs.InvalidInput, "API key is required")
	}
	if model == "" {
		return nil, errs.New(errs.InvalidInput, "model is required")
	}

	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &AnthropicLLM{
		client: &client,
		model:  model,
	}, nil
}

// Generate produces a text completion via the Messages API.
func (a *AnthropicLLM) Generate(ctx context.Context, prompt string, options ...core.GenerateOption) (*core.LLMResponse, error) {
	logger := logging.GetLogger()
	opts := core.NewGenerateOptions()
	for _, opt := range options {
		opt(opts)
	}

	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model: a.model,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
		MaxTokens:   int64(opts.MaxTokens),
		Temperature: anthropic.Float(opts.Temperature),
	})

	if err != nil {
		return nil, errs.WithFields(
			errs.Wrap(err, errs.GenerationFailed, "failed to generate response"),
			errs.Fields{
				"model":      string(a.model),
				"max_tokens": opts.MaxTokens,
			})
	}

	if message == nil || len(message.Content) == 0 {
		return nil, errs.New(errs.InvalidResponse, "received empty content from Anthropic API")
	}

	var responseText string
	if block := message.Content[0]; block.Type == "text" {
		responseText = block.Text
	}

	usage := &core.TokenInfo{
		PromptTokens:     int(message.Usage.InputTokens),
		CompletionTokens: int(message.Usage.OutputTokens),
		TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
	}

	logger.Debug(ctx, "anthropic response: %d prompt tokens, %d completion tokens",
		message.Usage.InputTokens, message.Usage.OutputTokens)

	return &core.LLMResponse{Content: responseText, Usage: usage}, nil
}

// EstimateCost prices a (prompt, response) pair using an approximate token
// count of four characters per token and the model family's per-1K rates.
func (a *AnthropicLLM) EstimateCost(prompt, response string) (float64, error) {
	price := anthropicFallbackPricing
	model := strings.ToLower(string(a.model))
	for _, entry := range anthropicPricing {
		if strings.Contains(model, entry.family) {
			price = entry.price
			break
		}
	}

	promptTokens := float64(len(prompt)) / 4.0
	responseTokens := float64(len(response)) / 4.0
	return (promptTokens*price.prompt + responseTokens*price.completion) / 1000.0, nil
}

func (a *AnthropicLLM) ProviderName() string {
	return "anthropic"
}

func (a *AnthropicLLM) ModelID() string {
	return string(a.model)
}
