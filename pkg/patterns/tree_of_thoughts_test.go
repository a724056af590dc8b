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

func TestTreeOfThoughtsSingleLevel(t *testing.T) {
	llm := testutil.NewScriptedLLM("5").
		On("Synthesize these thoughts", "final answer").
		On("initial approaches", "Idea one\nIdea two").
		On("Idea one", "8").
		On("Idea two", "6")
	tot := NewTreeOfThoughts(llm, 1, 2)

	result := tot.Execute(context.Background(), "X")

	require.True(t, result.Success)
	assert.Equal(t, "final answer", result.Response)
	assert.Equal(t, 2, result.Metadata["total_thoughts"])
	assert.Equal(t, []string{"Idea one"}, result.Metadata["best_path"])

	thoughts := result.Metadata["thoughts"].([]Thought)
	require.Len(t, thoughts, 2)
	for _, thought := range thoughts {
		assert.Equal(t, 0, thought.Level)
		assert.Empty(t, thought.ParentID)
		assert.NotEmpty(t, thought.ID)
	}
	assert.Equal(t, 8, thoughts[0].Score)
	assert.Equal(t, 6, thoughts[1].Score)

	// 1 generation + 2 scoring + 1 synthesis
	assert.Equal(t, 4, llm.CallCount())
	assert.Positive(t, result.Cost)
}

func TestTreeOfThoughtsTwoLevels(t *testing.T) {
	llm := testutil.NewScriptedLLM("5").
		On("Synthesize these thoughts", "deep answer").
		On("expand or refine", "Expansion A\nExpansion B").
		On("initial approaches", "Idea one\nIdea two").
		On("Expansion A", "7").
		On("Expansion B", "5").
		On("Idea one", "4").
		On("Idea two", "9")
	tot := NewTreeOfThoughts(llm, 2, 2)

	result := tot.Execute(context.Background(), "X")

	require.True(t, result.Success)
	assert.Equal(t, "deep answer", result.Response)

	thoughts := result.Metadata["thoughts"].([]Thought)
	// 2 initial + 2 parents x 2 expansions
	require.Len(t, thoughts, 6)
	assert.Equal(t, 6, result.Metadata["total_thoughts"])

	maxLevel := 0
	for _, thought := range thoughts {
		if thought.Level > maxLevel {
			maxLevel = thought.Level
		}
	}
	assert.Equal(t, 1, maxLevel)

	// The best leaf is an expansion of the highest-scored initial thought.
	assert.Equal(t, []string{"Idea two", "Expansion A"}, result.Metadata["best_path"])

	// Identical expansion text under both parents stays distinguishable
	// through parent IDs.
	byID := map[string]Thought{}
	for _, thought := range thoughts {
		byID[thought.ID] = thought
	}
	parents := map[string]bool{}
	for _, thought := range thoughts {
		if thought.Level == 1 {
			require.NotEmpty(t, thought.ParentID)
			parents[thought.ParentID] = true
			assert.Equal(t, 0, byID[thought.ParentID].Level)
		}
	}
	assert.Len(t, parents, 2)
}

func TestTreeOfThoughtsNoInitialThoughts(t *testing.T) {
	// Every line carries a list marker, so no candidates survive.
	llm := testutil.NewScriptedLLM("- nothing\n# usable\n1. here")
	tot := NewTreeOfThoughts(llm, 2, 3)

	result := tot.Execute(context.Background(), "X")

	assert.False(t, result.Success)
	assert.Empty(t, result.Response)
	assert.Contains(t, result.ErrorMessage, "failed to generate initial thoughts")
	// The generation call still happened and is accounted for.
	assert.Positive(t, result.Cost)
	assert.Equal(t, 1, llm.CallCount())
}

func TestTreeOfThoughtsGenerationFailure(t *testing.T) {
	llm := &testutil.MockLLM{}
	llm.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("overloaded"))

	result := NewTreeOfThoughts(llm, 2, 2).Execute(context.Background(), "X")

	assert.False(t, result.Success)
	assert.Zero(t, result.Cost)
	assert.Contains(t, result.ErrorMessage, "llm generation failed")
}

func TestTreeOfThoughtsDefaults(t *testing.T) {
	tot := NewTreeOfThoughts(testutil.NewScriptedLLM("x"), 0, 0)
	assert.Equal(t, 3, tot.maxDepth)
	assert.Equal(t, 3, tot.thoughtsPerLevel)
}

func TestTreeOfThoughtsDeterministicTrace(t *testing.T) {
	build := func() *testutil.ScriptedLLM {
		return testutil.NewScriptedLLM("5").
			On("Synthesize these thoughts", "final answer").
			On("initial approaches", "Idea one\nIdea two").
			On("Idea one", "8").
			On("Idea two", "6")
	}

	first := NewTreeOfThoughts(build(), 1, 2).Execute(context.Background(), "X")
	second := NewTreeOfThoughts(build(), 1, 2).Execute(context.Background(), "X")

	// Node IDs are freshly generated each run; everything else in the
	// trace is reproducible.
	assert.Equal(t, first.Response, second.Response)
	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Metadata["best_path"], second.Metadata["best_path"])
	assert.Equal(t, first.Metadata["total_thoughts"], second.Metadata["total_thoughts"])
}
