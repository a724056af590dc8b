package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/XiaoConstantine/agentic-go/pkg/core"
	"github.com/stretchr/testify/mock"
)

// MockLLM is a testify mock implementation of core.LLM for expectation-based
// tests, in particular failure injection.
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Generate(ctx context.Context, prompt string, options ...core.GenerateOption) (*core.LLMResponse, error) {
	args := m.Called(ctx, prompt, options)
	if resp, ok := args.Get(0).(*core.LLMResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLLM) EstimateCost(prompt, response string) (float64, error) {
	args := m.Called(prompt, response)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockLLM) ProviderName() string {
	return "mock"
}

func (m *MockLLM) ModelID() string {
	return "mock-model"
}

var _ core.LLM = (*MockLLM)(nil)

type scriptRule struct {
	substring string
	response  string
}

// ScriptedLLM is a deterministic stub: the first registered rule whose
// substring appears in the prompt decides the response, otherwise the
// default response is returned. Cost estimation is the character heuristic,
// so repeated executions are fully reproducible.
type ScriptedLLM struct {
	mu       sync.Mutex
	rules    []scriptRule
	fallback string
	prompts  []string
}

// NewScriptedLLM creates a ScriptedLLM with the given default response.
func NewScriptedLLM(fallback string) *ScriptedLLM {
	return &ScriptedLLM{fallback: fallback}
}

// On registers a substring-triggered response. Rules are checked in
// registration order.
func (s *ScriptedLLM) On(substring, response string) *ScriptedLLM {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, scriptRule{substring: substring, response: response})
	return s
}

func (s *ScriptedLLM) Generate(ctx context.Context, prompt string, options ...core.GenerateOption) (*core.LLMResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)

	for _, rule := range s.rules {
		if rule.substring != "" && strings.Contains(prompt, rule.substring) {
			return &core.LLMResponse{Content: rule.response}, nil
		}
	}
	return &core.LLMResponse{Content: s.fallback}, nil
}

func (s *ScriptedLLM) EstimateCost(prompt, response string) (float64, error) {
	return float64(len(prompt)+len(response)) / 1000.0, nil
}

func (s *ScriptedLLM) ProviderName() string {
	return "scripted"
}

func (s *ScriptedLLM) ModelID() string {
	return "scripted-model"
}

// CallCount reports how many Generate calls were made.
func (s *ScriptedLLM) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

// Prompts returns a copy of every prompt seen, in order.
func (s *ScriptedLLM) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

var _ core.LLM = (*ScriptedLLM)(nil)
