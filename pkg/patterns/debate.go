package patterns

import (
	"context"
	"fmt"

	"github.com/XiaoConstantine/agentic-go/pkg/core"
	"github.com/XiaoConstantine/agentic-go/pkg/logging"
)

// DebateTurn records one persona's contribution to the debate.
type DebateTurn struct {
	Agent    string
	Response string
	Cost     float64
}

var debatePersonas = []string{
	"Optimistic and solution-focused",
	"Critical and risk-aware",
	"Analytical and evidence-based",
}

// MultiAgentDebate answers a prompt from three fixed personas in sequence,
// each shown the prior contributions, then synthesizes a balanced final
// answer with a fourth call.
//
// The pipeline always runs the three built-in personas; the configured
// agent count is recorded in the result metadata but does not change the
// pipeline shape.
type MultiAgentDebate struct {
	core.BasePattern
	numAgents int
}

var _ core.Pattern = (*MultiAgentDebate)(nil)

// NewMultiAgentDebate creates a MultiAgentDebate pattern. A non-positive
// numAgents falls back to 3.
func NewMultiAgentDebate(llm core.LLM, numAgents int) *MultiAgentDebate {
	if numAgents <= 0 {
		numAgents = len(debatePersonas)
	}
	return &MultiAgentDebate{
		BasePattern: core.NewBasePattern("MultiAgentDebate", llm),
		numAgents:   numAgents,
	}
}

func (d *MultiAgentDebate) Execute(ctx context.Context, prompt string) core.PatternResult {
	ctx = logging.WithPatternName(ctx, d.Name())
	logger := logging.GetLogger()

	totalCost := 0.0
	var debate []DebateTurn

	fail := func(err error) core.PatternResult {
		return d.Fail(err, totalCost, debateMetadata(debate, d.numAgents))
	}

	// Agent 1: initial answer.
	agent1Prompt := fmt.Sprintf(`You are an AI agent with an optimistic and solution-focused perspective.

Question: %s

Provide a comprehensive initial answer from your perspective:`, prompt)

	agent1Response, err := d.Generate(ctx, agent1Prompt)
	if err != nil {
		return fail(err)
	}
	cost := d.EstimateCost(agent1Prompt, agent1Response)
	totalCost += cost
	debate = append(debate, DebateTurn{Agent: "Agent 1 (Optimistic)", Response: agent1Response, Cost: cost})

	// Agent 2: critique and alternative.
	agent2Prompt := fmt.Sprintf(`You are an AI agent with a critical and risk-aware perspective.

Question: %s

Previous response: %s

Critique the previous response and provide an alternative perspective:`, prompt, agent1Response)

	agent2Response, err := d.Generate(ctx, agent2Prompt)
	if err != nil {
		return fail(err)
	}
	cost = d.EstimateCost(agent2Prompt, agent2Response)
	totalCost += cost
	debate = append(debate, DebateTurn{Agent: "Agent 2 (Critical)", Response: agent2Response, Cost: cost})

	// Agent 3: synthesis or third view.
	agent3Prompt := fmt.Sprintf(`You are an AI agent with an analytical and evidence-based perspective.

Question: %s

Agent 1 (Optimistic): %s
Agent 2 (Critical): %s

Provide a synthesis of these perspectives or offer a third analytical view:`, prompt, agent1Response, agent2Response)

	agent3Response, err := d.Generate(ctx, agent3Prompt)
	if err != nil {
		return fail(err)
	}
	cost = d.EstimateCost(agent3Prompt, agent3Response)
	totalCost += cost
	debate = append(debate, DebateTurn{Agent: "Agent 3 (Analytical)", Response: agent3Response, Cost: cost})

	// Judge: balanced final answer.
	judgePrompt := fmt.Sprintf(`You are a judge evaluating different perspectives on this question: %s

Perspectives:
1. Optimistic: %s
2. Critical: %s
3. Analytical: %s

Synthesize the best elements from all perspectives into a comprehensive final answer.
Acknowledge the strengths of each perspective while providing a balanced conclusion.`,
		prompt, agent1Response, agent2Response, agent3Response)

	finalResponse, err := d.Generate(ctx, judgePrompt)
	if err != nil {
		return fail(err)
	}
	cost = d.EstimateCost(judgePrompt, finalResponse)
	totalCost += cost

	logger.Debug(ctx, "debate finished with %d turns, cost %.6f", len(debate), totalCost)

	return d.Succeed(finalResponse, totalCost, debateMetadata(debate, d.numAgents))
}

func debateMetadata(debate []DebateTurn, numAgents int) map[string]interface{} {
	return map[string]interface{}{
		"debate":         debate,
		"num_agents":     numAgents,
		"agent_personas": debatePersonas,
	}
}
