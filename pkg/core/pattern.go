package core

import (
	"context"

	"github.com/XiaoConstantine/agentic-go/pkg/errors"
)

// Pattern is the contract every reasoning pattern implements. Execute never
// returns an error: all failures are caught at the pattern boundary and
// converted into a PatternResult with Success=false.
type Pattern interface {
	Execute(ctx context.Context, prompt string) PatternResult
	Name() string
}

// BasePattern provides the shared helpers patterns are built on: generation
// with uniform failure wrapping and cost estimation with a fallback.
type BasePattern struct {
	name string
	llm  LLM
}

// NewBasePattern creates the embedded base for a concrete pattern.
func NewBasePattern(name string, llm LLM) BasePattern {
	return BasePattern{name: name, llm: llm}
}

// Name returns the pattern's identifier.
func (p *BasePattern) Name() string {
	return p.name
}

// LLM returns the generation capability this pattern drives.
func (p *BasePattern) LLM() LLM {
	return p.llm
}

// Generate invokes the LLM and re-raises any failure as a uniform
// generation-failed condition carrying the underlying cause.
func (p *BasePattern) Generate(ctx context.Context, prompt string, options ...GenerateOption) (string, error) {
	resp, err := p.llm.Generate(ctx, prompt, options...)
	if err != nil {
		return "", errors.Wrap(err, errors.GenerationFailed, "llm generation failed")
	}
	return resp.Content, nil
}

// EstimateCost estimates the cost of a (prompt, response) pair via the LLM,
// falling back to a character-count heuristic if the estimator itself fails.
func (p *BasePattern) EstimateCost(prompt, response string) float64 {
	cost, err := p.llm.EstimateCost(prompt, response)
	if err != nil {
		return float64(len(prompt)+len(response)) / 1000.0
	}
	return cost
}

// Succeed builds a successful result.
func (p *BasePattern) Succeed(response string, cost float64, metadata map[string]interface{}) PatternResult {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return PatternResult{
		Response:    response,
		Cost:        cost,
		PatternName: p.name,
		Metadata:    metadata,
		Success:     true,
	}
}

// Fail builds a failed result carrying the cost accumulated up to the
// failure point.
func (p *BasePattern) Fail(err error, cost float64, metadata map[string]interface{}) PatternResult {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return PatternResult{
		Response:     "",
		Cost:         cost,
		PatternName:  p.name,
		Metadata:     metadata,
		Success:      false,
		ErrorMessage: msg,
	}
}
