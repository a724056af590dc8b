// Package agentic is a Go library of agentic reasoning patterns for language
// models: reusable multi-step strategies that trade extra LLM calls for
// better answers.
//
// Every pattern implements the same contract: Execute takes a prompt and
// returns a PatternResult carrying the response, the accumulated dollar cost
// of every generation call made along the way, and pattern-specific metadata
// describing the intermediate work. Execute never panics and never returns
// an error; failures are reported inside the result with the cost spent up
// to the failure point.
//
// Key Components:
//
//   - Core: the LLM and Pattern interfaces, PatternResult, and BasePattern,
//     the embedding base that handles generation, cost estimation and
//     result construction for every concrete pattern.
//
//   - Patterns: the reasoning strategies:
//     * ChainOfThought: single-call step-by-step reasoning
//     * Reflexion: generate, self-evaluate, reflect and retry, keeping a
//       learning log across executions
//     * TreeOfThoughts: breadth-limited search over candidate thoughts with
//       scoring, beam expansion and path synthesis
//     * MultiAgentDebate: three fixed personas answer in sequence, then a
//       judge synthesizes a balanced final answer
//     * ToolUse: intent analysis, best-effort tool call extraction, tool
//       execution and tool-informed synthesis
//
//   - Tools: a thread-safe tool registry plus a default set of builtin
//     tools, including a restricted arithmetic evaluator that never
//     executes input as code.
//
//   - LLMs: provider implementations of the core.LLM interface. Anthropic's
//     Messages API is supported out of the box.
//
// Simple Example:
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/anthropics/anthropic-sdk-go"
//
//	    "github.com/XiaoConstantine/agentic-go/pkg/llms"
//	    "github.com/XiaoConstantine/agentic-go/pkg/patterns"
//	)
//
//	func main() {
//	    llm, err := llms.NewAnthropicLLM("", anthropic.ModelClaudeSonnet4_0)
//	    if err != nil {
//	        log.Fatalf("Failed to create LLM: %v", err)
//	    }
//
//	    pattern, err := patterns.New("reflexion", llm, patterns.Config{MaxIterations: 3})
//	    if err != nil {
//	        log.Fatalf("Failed to create pattern: %v", err)
//	    }
//
//	    result := pattern.Execute(context.Background(), "Explain how raft leader election works.")
//	    if !result.Success {
//	        log.Fatalf("Execution failed: %s", result.ErrorMessage)
//	    }
//
//	    fmt.Printf("Answer: %s\n", result.Response)
//	    fmt.Printf("Cost: $%.6f\n", result.Cost)
//	}
//
// Patterns are created through the factory by name ("chain_of_thought",
// "reflexion", "tree_of_thoughts", "multi_agent_debate", "tool_use", with
// short aliases like "cot" and "tot") or constructed directly. Custom
// patterns can be added to the factory with patterns.Register.
package agentic
