package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasoningSteps(t *testing.T) {
	response := "Let me think.\n1. A\n2. B\n- consider C\n* maybe D\nStep 5: wrap up\nplain line"
	steps := ReasoningSteps(response)

	assert.Equal(t, []string{"1. A", "2. B", "- consider C", "* maybe D", "Step 5: wrap up"}, steps)
}

func TestReasoningStepsEmpty(t *testing.T) {
	assert.Empty(t, ReasoningSteps("no structure here at all"))
}

func TestScoreSlashTen(t *testing.T) {
	assert.Equal(t, 8, Score("Score: 8/10. Well structured.", 5))
}

func TestScoreColonForm(t *testing.T) {
	assert.Equal(t, 3, Score("my SCORE: 3 because it rambles", 5))
}

func TestScoreDefault(t *testing.T) {
	assert.Equal(t, 5, Score("no numeric judgement here", 5))
}

func TestFirstInteger(t *testing.T) {
	assert.Equal(t, 7, FirstInteger("I would rate this a 7, maybe 8.", 5))
	assert.Equal(t, 5, FirstInteger("no digits", 5))
}

func TestThoughtLines(t *testing.T) {
	response := "# Approaches\nUse dynamic programming\n- skip me\n1. skip me too\nTry a greedy pass\n\nBrute force as baseline\nOverflow line"
	thoughts := ThoughtLines(response, 3)

	assert.Equal(t, []string{"Use dynamic programming", "Try a greedy pass", "Brute force as baseline"}, thoughts)
}

func TestThoughtLinesFewerThanMax(t *testing.T) {
	thoughts := ThoughtLines("only one idea", 3)
	assert.Equal(t, []string{"only one idea"}, thoughts)
}

func TestToolCalls(t *testing.T) {
	text := `{"needs_tools": true, "tool_calls": [calculate(2,3) and sqrt("16")]}`
	calls := ToolCalls(text)

	assert.Len(t, calls, 2)
	assert.Equal(t, "calculate", calls[0].Tool)
	assert.Equal(t, []string{"2", "3"}, calls[0].Args)
	assert.Equal(t, "sqrt", calls[1].Tool)
	assert.Equal(t, []string{"16"}, calls[1].Args)
}

func TestToolCallsTrimsQuotesAndSpace(t *testing.T) {
	calls := ToolCalls(`sum( '1' , "2" , 3 )`)
	assert.Len(t, calls, 1)
	assert.Equal(t, []string{"1", "2", "3"}, calls[0].Args)
}

func TestToolCallsNone(t *testing.T) {
	assert.Empty(t, ToolCalls("nothing callable here"))
}

func TestNeedsTools(t *testing.T) {
	assert.True(t, NeedsTools(`{"needs_tools": TRUE}`))
	assert.False(t, NeedsTools(`{"needs_tools": false}`))
	assert.False(t, NeedsTools(`true, but no marker`))
}
