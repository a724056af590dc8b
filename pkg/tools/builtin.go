package tools

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/XiaoConstantine/agentic-go/pkg/errors"
)

// NewDefaultRegistry builds a registry with the standard tool set: a
// restricted arithmetic calculator plus a handful of numeric and utility
// helpers. Tool invocations carry no generation cost.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	// Registration of builtin tools into a fresh registry cannot collide.
	_ = r.Register(NewFuncTool("calculate", "Evaluate an arithmetic expression over numbers and + - * / ( )", calculateTool))
	_ = r.Register(NewFuncTool("sqrt", "Square root of a number", sqrtTool))
	_ = r.Register(NewFuncTool("log", "Natural logarithm of a number", logTool))
	_ = r.Register(NewFuncTool("current_time", "Current timestamp in RFC 3339 format", currentTimeTool))
	_ = r.Register(NewFuncTool("len", "Length of a text argument", lenTool))
	_ = r.Register(NewFuncTool("sum", "Sum of numeric arguments", sumTool))
	_ = r.Register(NewFuncTool("max", "Maximum of numeric arguments", maxTool))
	_ = r.Register(NewFuncTool("min", "Minimum of numeric arguments", minTool))

	return r
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseArgs(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, errors.New(errors.InvalidInput, "at least one numeric argument required")
	}
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.WithFields(
				errors.Wrap(err, errors.InvalidInput, "argument is not a number"),
				errors.Fields{"argument": a})
		}
		values[i] = v
	}
	return values, nil
}

func calculateTool(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", errors.New(errors.InvalidInput, "expression required")
	}
	// Arguments split on commas inside the call are rejoined: the whole
	// argument text is one expression.
	expr := args[0]
	for _, a := range args[1:] {
		expr += "," + a
	}
	v, err := Evaluate(expr)
	if err != nil {
		return "", err
	}
	return formatNumber(v), nil
}

func sqrtTool(ctx context.Context, args ...string) (string, error) {
	values, err := parseArgs(args)
	if err != nil {
		return "", err
	}
	if values[0] < 0 {
		return "", errors.New(errors.InvalidInput, "square root of negative number")
	}
	return formatNumber(math.Sqrt(values[0])), nil
}

func logTool(ctx context.Context, args ...string) (string, error) {
	values, err := parseArgs(args)
	if err != nil {
		return "", err
	}
	if values[0] <= 0 {
		return "", errors.New(errors.InvalidInput, "logarithm of non-positive number")
	}
	return formatNumber(math.Log(values[0])), nil
}

func currentTimeTool(ctx context.Context, args ...string) (string, error) {
	return time.Now().Format(time.RFC3339), nil
}

func lenTool(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", errors.New(errors.InvalidInput, "one text argument required")
	}
	return strconv.Itoa(len(args[0])), nil
}

func sumTool(ctx context.Context, args ...string) (string, error) {
	values, err := parseArgs(args)
	if err != nil {
		return "", err
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return formatNumber(total), nil
}

func maxTool(ctx context.Context, args ...string) (string, error) {
	values, err := parseArgs(args)
	if err != nil {
		return "", err
	}
	best := values[0]
	for _, v := range values[1:] {
		best = math.Max(best, v)
	}
	return formatNumber(best), nil
}

func minTool(ctx context.Context, args ...string) (string, error) {
	values, err := parseArgs(args)
	if err != nil {
		return "", err
	}
	best := values[0]
	for _, v := range values[1:] {
		best = math.Min(best, v)
	}
	return formatNumber(best), nil
}
