package patterns

import (
	"context"
	"fmt"
	"strings"

	"github.com/XiaoConstantine/agentic-go/pkg/core"
	"github.com/XiaoConstantine/agentic-go/pkg/extract"
	"github.com/XiaoConstantine/agentic-go/pkg/logging"
	"github.com/XiaoConstantine/agentic-go/pkg/tools"
)

// ToolCallResult records one executed tool invocation. A failed call keeps
// Success=false and carries the error text as Output; it does not abort the
// surrounding execution.
type ToolCallResult struct {
	Tool    string
	Args    []string
	Output  string
	Success bool
}

// ToolUse asks the LLM whether the prompt needs external tools, extracts
// tool invocations from the answer on a best-effort basis, executes them,
// and synthesizes a final answer informed by every tool outcome.
type ToolUse struct {
	core.BasePattern
	registry *tools.Registry
}

var _ core.Pattern = (*ToolUse)(nil)

// NewToolUse creates a ToolUse pattern. A nil registry falls back to the
// default tool set.
func NewToolUse(llm core.LLM, registry *tools.Registry) *ToolUse {
	if registry == nil {
		registry = tools.NewDefaultRegistry()
	}
	return &ToolUse{
		BasePattern: core.NewBasePattern("ToolUse", llm),
		registry:    registry,
	}
}

func (t *ToolUse) Execute(ctx context.Context, prompt string) core.PatternResult {
	ctx = logging.WithPatternName(ctx, t.Name())
	logger := logging.GetLogger()

	totalCost := 0.0

	needsTools, calls, cost, err := t.analyze(ctx, prompt)
	totalCost += cost
	if err != nil {
		return t.Fail(err, totalCost, map[string]interface{}{"original_prompt": prompt})
	}

	var results []ToolCallResult
	if needsTools {
		for _, call := range calls {
			results = append(results, t.executeCall(ctx, call))
		}
	}

	finalPrompt := buildFinalPrompt(prompt, results)
	finalResponse, err := t.Generate(ctx, finalPrompt)
	if err != nil {
		return t.Fail(err, totalCost, toolMetadata(needsTools, calls, results))
	}
	totalCost += t.EstimateCost(finalPrompt, finalResponse)

	logger.Debug(ctx, "executed %d tool calls (%d succeeded), cost %.6f",
		len(results), succeededCount(results), totalCost)

	return t.Succeed(finalResponse, totalCost, toolMetadata(needsTools, calls, results))
}

// analyze issues the intent-analysis call and parses its answer on a
// best-effort basis: a coarse needs_tools flag plus every name(args)
// shaped substring whose name is registered.
func (t *ToolUse) analyze(ctx context.Context, prompt string) (bool, []extract.ToolCall, float64, error) {
	analysisPrompt := fmt.Sprintf(`Analyze this prompt to determine if it requires external tools: %q

Available tools: %s

If tools are needed, specify which ones and with what arguments.
Format tool calls as: tool_name(arg1, arg2, ...)

Respond with JSON:
{
    "needs_tools": true/false,
    "tool_calls": [
        {"tool": "tool_name", "args": ["arg1", "arg2"]}
    ]
}`, prompt, strings.Join(t.registry.Names(), ", "))

	response, err := t.Generate(ctx, analysisPrompt)
	if err != nil {
		return false, nil, 0, err
	}
	cost := t.EstimateCost(analysisPrompt, response)

	var calls []extract.ToolCall
	for _, call := range extract.ToolCalls(response) {
		if t.registry.Has(call.Tool) {
			calls = append(calls, call)
		}
	}

	return extract.NeedsTools(response), calls, cost, nil
}

// executeCall runs a single tool invocation, capturing failure per call.
// Tool invocations are not generation calls and carry no cost.
func (t *ToolUse) executeCall(ctx context.Context, call extract.ToolCall) ToolCallResult {
	tool, err := t.registry.Get(call.Tool)
	if err != nil {
		return ToolCallResult{Tool: call.Tool, Args: call.Args, Output: err.Error()}
	}

	output, err := tool.Call(ctx, call.Args...)
	if err != nil {
		return ToolCallResult{Tool: call.Tool, Args: call.Args, Output: err.Error()}
	}
	return ToolCallResult{Tool: call.Tool, Args: call.Args, Output: output, Success: true}
}

func buildFinalPrompt(originalPrompt string, results []ToolCallResult) string {
	if len(results) == 0 {
		return originalPrompt
	}

	var b strings.Builder
	b.WriteString(originalPrompt)
	b.WriteString("\n\nTool Results:\n")
	for _, r := range results {
		fmt.Fprintf(&b, "- %s(%s): %s\n", r.Tool, strings.Join(r.Args, ", "), r.Output)
	}
	b.WriteString("\nPlease provide a comprehensive answer using the tool results above.")
	return b.String()
}

func succeededCount(results []ToolCallResult) int {
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return n
}

func toolMetadata(needsTools bool, calls []extract.ToolCall, results []ToolCallResult) map[string]interface{} {
	return map[string]interface{}{
		"needs_tools":  needsTools,
		"tool_calls":   calls,
		"tool_results": results,
		"tools_used":   succeededCount(results),
	}
}
