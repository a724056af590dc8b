// Package extract contains the best-effort text parsing the patterns rely
// on: score extraction, list-item detection, tool-call extraction. Output is
// advisory, not a verified contract; every function has an explicit default
// for the no-match case.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	stepPrefixRe   = regexp.MustCompile(`^(\d+\.|[-*]\s|Step\s)`)
	listMarkerRe   = regexp.MustCompile(`^(#|[-*]\s?|\d+\.)`)
	scoreRe        = regexp.MustCompile(`(\d+)/10|score[:\s]+(\d+)`)
	firstIntegerRe = regexp.MustCompile(`\d+`)
	toolCallRe     = regexp.MustCompile(`(\w+)\(([^)]+)\)`)
)

// ReasoningSteps extracts ordered reasoning-step lines from a response: any
// line with a numbered-list, bulleted-list, or "Step N" prefix, in original
// order.
func ReasoningSteps(response string) []string {
	steps := []string{}
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if stepPrefixRe.MatchString(line) {
			steps = append(steps, line)
		}
	}
	return steps
}

// Score parses a 1-10 quality score from evaluation text, matching "N/10"
// or "score: N" case-insensitively. Returns def when nothing matches.
func Score(text string, def int) int {
	m := scoreRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return def
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// FirstInteger returns the first integer appearing anywhere in the text, or
// def when there is none.
func FirstInteger(text string, def int) int {
	m := firstIntegerRe.FindString(text)
	if m == "" {
		return def
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return def
	}
	return n
}

// ThoughtLines splits a generation into candidate thoughts: non-empty lines
// that do not carry a heading or list marker, truncated to max. The
// heuristic mirrors how models tend to preface lists with markers while
// emitting the substantive candidates as plain lines.
func ThoughtLines(response string, max int) []string {
	thoughts := []string{}
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || listMarkerRe.MatchString(line) {
			continue
		}
		thoughts = append(thoughts, line)
		if len(thoughts) == max {
			break
		}
	}
	return thoughts
}

// ToolCall is a best-effort-extracted request to invoke a named tool with
// positional text arguments.
type ToolCall struct {
	Tool string
	Args []string
}

// ToolCalls extracts every substring shaped like identifier(arguments) from
// the text. Argument lists are split on commas with surrounding whitespace
// and quotes trimmed. Callers filter the results against their registry.
func ToolCalls(text string) []ToolCall {
	var calls []ToolCall
	for _, m := range toolCallRe.FindAllStringSubmatch(text, -1) {
		args := strings.Split(m[2], ",")
		for i, a := range args {
			args[i] = strings.Trim(strings.TrimSpace(a), `"'`)
		}
		calls = append(calls, ToolCall{Tool: m[1], Args: args})
	}
	return calls
}

// NeedsTools reports whether an intent-analysis response indicates tool
// usage. The check is a coarse substring heuristic: the text must contain
// both "needs_tools" and "true", case-insensitively.
func NeedsTools(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "needs_tools") && strings.Contains(lower, "true")
}
