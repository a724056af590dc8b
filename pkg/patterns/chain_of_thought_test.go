package patterns

import (
	"context"
	"fmt"
	"testing"

	"github.com/XiaoConstantine/agentic-go/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChainOfThoughtExecute(t *testing.T) {
	llm := testutil.NewScriptedLLM("1. A\n2. B")
	cot := NewChainOfThought(llm)

	result := cot.Execute(context.Background(), "X")

	require.True(t, result.Success)
	assert.Equal(t, "ChainOfThought", result.PatternName)
	assert.Equal(t, "1. A\n2. B", result.Response)
	assert.Equal(t, []string{"1. A", "2. B"}, result.Metadata["reasoning_steps"])
	assert.Equal(t, "X", result.Metadata["original_prompt"])

	cotPrompt := "X\n\nLet's think step by step:"
	assert.Equal(t, cotPrompt, result.Metadata["cot_prompt"])
	assert.InDelta(t, float64(len(cotPrompt)+len("1. A\n2. B"))/1000.0, result.Cost, 1e-9)

	assert.Equal(t, 1, llm.CallCount())
}

func TestChainOfThoughtAppendsDirective(t *testing.T) {
	llm := testutil.NewScriptedLLM("fine")
	NewChainOfThought(llm).Execute(context.Background(), "why is the sky blue?")

	prompts := llm.Prompts()
	require.Len(t, prompts, 1)
	assert.Equal(t, "why is the sky blue?\n\nLet's think step by step:", prompts[0])
}

func TestChainOfThoughtGenerationFailure(t *testing.T) {
	llm := &testutil.MockLLM{}
	llm.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("rate limited"))

	result := NewChainOfThought(llm).Execute(context.Background(), "X")

	assert.False(t, result.Success)
	assert.Empty(t, result.Response)
	assert.Zero(t, result.Cost)
	assert.Contains(t, result.ErrorMessage, "llm generation failed")
	assert.Contains(t, result.ErrorMessage, "rate limited")
	assert.Equal(t, "X", result.Metadata["original_prompt"])
}

func TestChainOfThoughtDeterministic(t *testing.T) {
	llm := testutil.NewScriptedLLM("Step 1: start\nStep 2: finish")
	cot := NewChainOfThought(llm)

	first := cot.Execute(context.Background(), "X")
	second := cot.Execute(context.Background(), "X")

	assert.Equal(t, first.Response, second.Response)
	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Metadata, second.Metadata)
}
