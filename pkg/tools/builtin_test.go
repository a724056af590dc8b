package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callBuiltin(t *testing.T, name string, args ...string) (string, error) {
	t.Helper()
	r := NewDefaultRegistry()
	tool, err := r.Get(name)
	require.NoError(t, err)
	return tool.Call(context.Background(), args...)
}

func TestDefaultRegistryContents(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Equal(t,
		[]string{"calculate", "current_time", "len", "log", "max", "min", "sqrt", "sum"},
		r.Names())
}

func TestCalculateTool(t *testing.T) {
	out, err := callBuiltin(t, "calculate", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "14", out)
}

func TestCalculateToolRejectsCommaArgs(t *testing.T) {
	// calculate(2,3) parses as two positional args; the rejoined "2,3" is
	// not a valid expression and must surface an error, never an eval.
	_, err := callBuiltin(t, "calculate", "2", "3")
	assert.Error(t, err)
}

func TestSqrtTool(t *testing.T) {
	out, err := callBuiltin(t, "sqrt", "16")
	require.NoError(t, err)
	assert.Equal(t, "4", out)

	_, err = callBuiltin(t, "sqrt", "-1")
	assert.Error(t, err)
}

func TestLogTool(t *testing.T) {
	out, err := callBuiltin(t, "log", "1")
	require.NoError(t, err)
	assert.Equal(t, "0", out)

	_, err = callBuiltin(t, "log", "0")
	assert.Error(t, err)
}

func TestCurrentTimeTool(t *testing.T) {
	out, err := callBuiltin(t, "current_time")
	require.NoError(t, err)

	_, err = time.Parse(time.RFC3339, out)
	assert.NoError(t, err)
}

func TestLenTool(t *testing.T) {
	out, err := callBuiltin(t, "len", "hello")
	require.NoError(t, err)
	assert.Equal(t, "5", out)
}

func TestAggregateTools(t *testing.T) {
	out, err := callBuiltin(t, "sum", "1", "2", "3.5")
	require.NoError(t, err)
	assert.Equal(t, "6.5", out)

	out, err = callBuiltin(t, "max", "1", "9", "4")
	require.NoError(t, err)
	assert.Equal(t, "9", out)

	out, err = callBuiltin(t, "min", "1", "9", "4")
	require.NoError(t, err)
	assert.Equal(t, "1", out)

	_, err = callBuiltin(t, "sum", "not-a-number")
	assert.Error(t, err)
}
