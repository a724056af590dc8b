package patterns

import (
	"context"
	"fmt"

	"github.com/XiaoConstantine/agentic-go/pkg/core"
	"github.com/XiaoConstantine/agentic-go/pkg/extract"
	"github.com/XiaoConstantine/agentic-go/pkg/logging"
)

// ChainOfThought elicits step-by-step reasoning with a single generation
// call and records the extracted reasoning steps in the result metadata.
type ChainOfThought struct {
	core.BasePattern
}

var _ core.Pattern = (*ChainOfThought)(nil)

// NewChainOfThought creates a ChainOfThought pattern driving the given LLM.
func NewChainOfThought(llm core.LLM) *ChainOfThought {
	return &ChainOfThought{
		BasePattern: core.NewBasePattern("ChainOfThought", llm),
	}
}

func (c *ChainOfThought) Execute(ctx context.Context, prompt string) core.PatternResult {
	ctx = logging.WithPatternName(ctx, c.Name())
	logger := logging.GetLogger()

	cotPrompt := fmt.Sprintf("%s\n\nLet's think step by step:", prompt)

	response, err := c.Generate(ctx, cotPrompt)
	if err != nil {
		logger.Debug(ctx, "generation failed: %v", err)
		return c.Fail(err, 0, map[string]interface{}{
			"original_prompt": prompt,
		})
	}
	cost := c.EstimateCost(cotPrompt, response)

	steps := extract.ReasoningSteps(response)
	logger.Debug(ctx, "extracted %d reasoning steps, cost %.6f", len(steps), cost)

	return c.Succeed(response, cost, map[string]interface{}{
		"original_prompt": prompt,
		"cot_prompt":      cotPrompt,
		"reasoning_steps": steps,
	})
}
