package patterns

import (
	"context"
	"fmt"
	"sync"

	"github.com/XiaoConstantine/agentic-go/pkg/core"
	"github.com/XiaoConstantine/agentic-go/pkg/errors"
	"github.com/XiaoConstantine/agentic-go/pkg/extract"
	"github.com/XiaoConstantine/agentic-go/pkg/logging"
)

const (
	defaultMaxIterations = 3
	acceptanceScore      = 7
	defaultScore         = 5
)

// Iteration records one generate/evaluate round of the Reflexion loop.
type Iteration struct {
	Attempt  int
	Response string
	Score    int
	Feedback string
	Cost     float64
}

// Learning is one entry of the instance-scoped learning log, appended each
// time a reflection is generated.
type Learning struct {
	Prompt     string
	Response   string
	Feedback   string
	Reflection string
}

// Reflexion iteratively improves responses through self-evaluation and
// reflection. The learning log lives for the lifetime of the instance and
// accumulates across Execute calls; it is reset only by recreating the
// pattern. Appends are serialized so one instance can back concurrent
// executions.
type Reflexion struct {
	core.BasePattern
	maxIterations int

	mu        sync.Mutex
	learnings []Learning
}

var _ core.Pattern = (*Reflexion)(nil)

// NewReflexion creates a Reflexion pattern. A non-positive maxIterations
// falls back to the default of 3.
func NewReflexion(llm core.LLM, maxIterations int) *Reflexion {
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}
	return &Reflexion{
		BasePattern:   core.NewBasePattern("Reflexion", llm),
		maxIterations: maxIterations,
	}
}

func (r *Reflexion) Execute(ctx context.Context, prompt string) core.PatternResult {
	ctx = logging.WithPatternName(ctx, r.Name())
	logger := logging.GetLogger()

	currentPrompt := prompt
	totalCost := 0.0
	var iterations []Iteration

	for attempt := 1; attempt <= r.maxIterations; attempt++ {
		response, err := r.Generate(ctx, currentPrompt)
		if err != nil {
			return r.Fail(err, totalCost, iterationMetadata(iterations, r.Learnings()))
		}
		cost := r.EstimateCost(currentPrompt, response)
		totalCost += cost

		score, feedback, evalCost, err := r.evaluate(ctx, prompt, response)
		totalCost += evalCost
		if err != nil {
			return r.Fail(err, totalCost, iterationMetadata(iterations, r.Learnings()))
		}

		iterations = append(iterations, Iteration{
			Attempt:  attempt,
			Response: response,
			Score:    score,
			Feedback: feedback,
			Cost:     cost,
		})

		logger.Debug(ctx, "attempt %d/%d scored %d", attempt, r.maxIterations, score)

		if score >= acceptanceScore {
			md := iterationMetadata(iterations, r.Learnings())
			md["final_score"] = score
			return r.Succeed(response, totalCost, md)
		}

		reflection, reflectCost, err := r.reflect(ctx, prompt, response, feedback)
		totalCost += reflectCost
		if err != nil {
			return r.Fail(err, totalCost, iterationMetadata(iterations, r.Learnings()))
		}

		currentPrompt = fmt.Sprintf("%s\n\nPrevious attempt: %s\n\nWhat went wrong: %s\n\nPlease try again:",
			prompt, response, reflection)
	}

	if len(iterations) == 0 {
		err := errors.New(errors.NoIterations, "no iterations completed")
		return r.Fail(err, totalCost, iterationMetadata(iterations, r.Learnings()))
	}

	// Exhausted the budget: return the best attempt, first occurrence wins
	// ties.
	best := iterations[0]
	for _, it := range iterations[1:] {
		if it.Score > best.Score {
			best = it
		}
	}

	md := iterationMetadata(iterations, r.Learnings())
	md["best_score"] = best.Score
	return r.Succeed(best.Response, totalCost, md)
}

// Learnings returns a copy of the instance's learning log.
func (r *Reflexion) Learnings() []Learning {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Learning, len(r.learnings))
	copy(out, r.learnings)
	return out
}

func (r *Reflexion) evaluate(ctx context.Context, originalPrompt, response string) (int, string, float64, error) {
	evalPrompt := fmt.Sprintf(`Evaluate this response to the prompt: %q

Response: %s

Rate the response on a scale of 1-10 and provide brief feedback:
- Relevance to the prompt
- Completeness of the answer
- Clarity and coherence`, originalPrompt, response)

	evalResponse, err := r.Generate(ctx, evalPrompt)
	if err != nil {
		return 0, "", 0, err
	}
	cost := r.EstimateCost(evalPrompt, evalResponse)

	return extract.Score(evalResponse, defaultScore), evalResponse, cost, nil
}

func (r *Reflexion) reflect(ctx context.Context, originalPrompt, response, feedback string) (string, float64, error) {
	reflectionPrompt := fmt.Sprintf(`The original prompt was: %q

The response was: %q

The evaluation feedback was: %q

Based on this, what specifically went wrong and how should the response be improved? Be specific and actionable.`,
		originalPrompt, response, feedback)

	reflection, err := r.Generate(ctx, reflectionPrompt)
	if err != nil {
		return "", 0, err
	}
	cost := r.EstimateCost(reflectionPrompt, reflection)

	r.mu.Lock()
	r.learnings = append(r.learnings, Learning{
		Prompt:     originalPrompt,
		Response:   response,
		Feedback:   feedback,
		Reflection: reflection,
	})
	r.mu.Unlock()

	return reflection, cost, nil
}

func iterationMetadata(iterations []Iteration, learnings []Learning) map[string]interface{} {
	return map[string]interface{}{
		"iterations": iterations,
		"learnings":  learnings,
	}
}
