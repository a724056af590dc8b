package patterns

import (
	"sort"
	"strings"
	"sync"

	"github.com/XiaoConstantine/agentic-go/pkg/core"
	"github.com/XiaoConstantine/agentic-go/pkg/errors"
)

// Constructor builds a pattern instance from an LLM and a configuration bag.
type Constructor func(llm core.LLM, cfg Config) core.Pattern

type registration struct {
	name        string // canonical name
	description string
	build       Constructor
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*registration{}
)

func init() {
	mustRegister("chain_of_thought", "Chain-of-Thought pattern for step-by-step reasoning",
		func(llm core.LLM, cfg Config) core.Pattern { return NewChainOfThought(llm) },
		"cot")
	mustRegister("reflexion", "Reflexion pattern for iterative self-improvement",
		func(llm core.LLM, cfg Config) core.Pattern { return NewReflexion(llm, cfg.MaxIterations) })
	mustRegister("tree_of_thoughts", "Tree of Thoughts pattern for exploring multiple reasoning paths",
		func(llm core.LLM, cfg Config) core.Pattern {
			return NewTreeOfThoughts(llm, cfg.MaxDepth, cfg.ThoughtsPerLevel)
		},
		"tot")
	mustRegister("multi_agent_debate", "Multi-Agent Debate pattern with different perspectives",
		func(llm core.LLM, cfg Config) core.Pattern { return NewMultiAgentDebate(llm, cfg.NumAgents) },
		"debate")
	mustRegister("tool_use", "Tool-Use pattern for external tool integration",
		func(llm core.LLM, cfg Config) core.Pattern { return NewToolUse(llm, cfg.Tools) },
		"tools")
}

func mustRegister(name, description string, build Constructor, aliases ...string) {
	if err := Register(name, description, build, aliases...); err != nil {
		panic(err)
	}
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Register adds a pattern constructor under a canonical name and optional
// aliases.
func Register(name, description string, build Constructor, aliases ...string) error {
	if build == nil {
		return errors.New(errors.InvalidInput, "pattern constructor must not be nil")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	reg := &registration{name: normalizeName(name), description: description, build: build}
	for _, key := range append([]string{name}, aliases...) {
		key = normalizeName(key)
		if _, exists := registry[key]; exists {
			return errors.WithFields(errors.New(errors.InvalidInput, "pattern already registered"), errors.Fields{
				"pattern": key,
			})
		}
		registry[key] = reg
	}
	return nil
}

// New builds a pattern instance by name. Names are case-insensitive and
// spaces are treated as underscores.
func New(name string, llm core.LLM, cfg Config) (core.Pattern, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registryMu.RLock()
	reg, ok := registry[normalizeName(name)]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.WithFields(
			errors.New(errors.ResourceNotFound, "pattern not found"),
			errors.Fields{"pattern": name, "available": strings.Join(Names(), ", ")})
	}
	return reg.build(llm, cfg), nil
}

// Names returns the sorted canonical names of all registered patterns.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := map[string]bool{}
	var names []string
	for _, reg := range registry {
		if !seen[reg.name] {
			seen[reg.name] = true
			names = append(names, reg.name)
		}
	}
	sort.Strings(names)
	return names
}

// List returns canonical pattern names mapped to their descriptions.
func List() map[string]string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make(map[string]string)
	for _, reg := range registry {
		out[reg.name] = reg.description
	}
	return out
}
