package tools

import "context"

// Tool represents an external capability the ToolUse pattern can invoke
// with positional text arguments. Implementations return any value already
// rendered to text.
type Tool interface {
	// Name returns the unique identifier used for registry lookup and
	// tool-call extraction.
	Name() string

	// Description returns a human-readable explanation surfaced to the LLM
	// during intent analysis.
	Description() string

	// Call executes the tool. Implementations honor ctx so suspend-capable
	// tools and plain functions are driven uniformly.
	Call(ctx context.Context, args ...string) (string, error)
}

// ToolFunc is the function shape wrapped by FuncTool.
type ToolFunc func(ctx context.Context, args ...string) (string, error)

// FuncTool wraps a Go function as a Tool implementation.
type FuncTool struct {
	name        string
	description string
	fn          ToolFunc
}

// NewFuncTool creates a new function-based tool.
func NewFuncTool(name, description string, fn ToolFunc) *FuncTool {
	return &FuncTool{
		name:        name,
		description: description,
		fn:          fn,
	}
}

func (t *FuncTool) Name() string {
	return t.name
}

func (t *FuncTool) Description() string {
	return t.description
}

func (t *FuncTool) Call(ctx context.Context, args ...string) (string, error) {
	return t.fn(ctx, args...)
}

var _ Tool = (*FuncTool)(nil)
