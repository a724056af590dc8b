package patterns

import (
	"context"
	"fmt"
	"testing"

	"github.com/XiaoConstantine/agentic-go/internal/testutil"
	"github.com/XiaoConstantine/agentic-go/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func debateLLM() *testutil.ScriptedLLM {
	return testutil.NewScriptedLLM("unexpected").
		On("You are a judge", "balanced answer").
		On("optimistic and solution-focused", "sunny take").
		On("critical and risk-aware", "risky take").
		On("analytical and evidence-based", "data take")
}

func TestMultiAgentDebateExecute(t *testing.T) {
	llm := debateLLM()
	d := NewMultiAgentDebate(llm, 0)

	result := d.Execute(context.Background(), "X")

	require.True(t, result.Success)
	assert.Equal(t, "MultiAgentDebate", result.PatternName)
	assert.Equal(t, "balanced answer", result.Response)
	assert.Equal(t, 3, result.Metadata["num_agents"])
	assert.Equal(t, 4, llm.CallCount())
	assert.Positive(t, result.Cost)

	debate := result.Metadata["debate"].([]DebateTurn)
	require.Len(t, debate, 3)
	assert.Equal(t, "Agent 1 (Optimistic)", debate[0].Agent)
	assert.Equal(t, "Agent 2 (Critical)", debate[1].Agent)
	assert.Equal(t, "Agent 3 (Analytical)", debate[2].Agent)
	assert.Equal(t, "sunny take", debate[0].Response)
	assert.Equal(t, "risky take", debate[1].Response)
	assert.Equal(t, "data take", debate[2].Response)
	for _, turn := range debate {
		assert.Positive(t, turn.Cost)
	}
}

func TestMultiAgentDebateTurnsSeePriorContributions(t *testing.T) {
	llm := debateLLM()
	NewMultiAgentDebate(llm, 0).Execute(context.Background(), "X")

	prompts := llm.Prompts()
	require.Len(t, prompts, 4)
	assert.Contains(t, prompts[1], "Previous response: sunny take")
	assert.Contains(t, prompts[2], "Agent 1 (Optimistic): sunny take")
	assert.Contains(t, prompts[2], "Agent 2 (Critical): risky take")
	assert.Contains(t, prompts[3], "1. Optimistic: sunny take")
	assert.Contains(t, prompts[3], "2. Critical: risky take")
	assert.Contains(t, prompts[3], "3. Analytical: data take")
}

func TestMultiAgentDebateNumAgentsPassthrough(t *testing.T) {
	llm := debateLLM()
	result := NewMultiAgentDebate(llm, 5).Execute(context.Background(), "X")

	require.True(t, result.Success)
	// The configured count is recorded but the pipeline stays three
	// personas plus a judge.
	assert.Equal(t, 5, result.Metadata["num_agents"])
	assert.Equal(t, 4, llm.CallCount())
	assert.Len(t, result.Metadata["debate"].([]DebateTurn), 3)
}

func TestMultiAgentDebatePartialFailureKeepsCost(t *testing.T) {
	llm := &testutil.MockLLM{}
	llm.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return(&core.LLMResponse{Content: "sunny take"}, nil).Once()
	llm.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("timeout"))
	llm.On("EstimateCost", mock.Anything, mock.Anything).Return(0.004, nil)

	result := NewMultiAgentDebate(llm, 0).Execute(context.Background(), "X")

	assert.False(t, result.Success)
	assert.Empty(t, result.Response)
	assert.Contains(t, result.ErrorMessage, "llm generation failed")
	assert.InDelta(t, 0.004, result.Cost, 1e-9)

	debate := result.Metadata["debate"].([]DebateTurn)
	require.Len(t, debate, 1)
	assert.Equal(t, "Agent 1 (Optimistic)", debate[0].Agent)
}
