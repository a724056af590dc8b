package core

import "context"

// TokenInfo tracks token usage for a single generation.
type TokenInfo struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMResponse is the result of a single generation call.
type LLMResponse struct {
	Content  string
	Usage    *TokenInfo
	Metadata map[string]interface{}
}

// LLM represents the text-generation capability patterns are built on.
// Implementations may fail on Generate; EstimateCost failures are tolerated
// at call sites, which fall back to a character-count heuristic.
type LLM interface {
	// Generate produces a text completion for the given prompt.
	Generate(ctx context.Context, prompt string, options ...GenerateOption) (*LLMResponse, error)

	// EstimateCost estimates the dollar cost of a (prompt, response) pair.
	EstimateCost(prompt, response string) (float64, error)

	ProviderName() string
	ModelID() string
}

// GenerateOption represents an option for text generation.
type GenerateOption func(*GenerateOptions)

// GenerateOptions holds configuration for text generation.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
	Stop        []string
}

// NewGenerateOptions creates a new GenerateOptions with default values.
func NewGenerateOptions() *GenerateOptions {
	return &GenerateOptions{
		MaxTokens:   4096,
		Temperature: 0.5,
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) GenerateOption {
	return func(o *GenerateOptions) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = t
	}
}

// WithTopP sets the nucleus sampling probability.
func WithTopP(p float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.TopP = p
	}
}

// WithStopSequences sets the stop sequences.
func WithStopSequences(sequences ...string) GenerateOption {
	return func(o *GenerateOptions) {
		o.Stop = sequences
	}
}
