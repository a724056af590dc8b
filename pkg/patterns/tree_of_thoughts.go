package patterns

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/XiaoConstantine/agentic-go/pkg/core"
	"github.com/XiaoConstantine/agentic-go/pkg/errors"
	"github.com/XiaoConstantine/agentic-go/pkg/extract"
	"github.com/XiaoConstantine/agentic-go/pkg/logging"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
)

const (
	defaultMaxDepth         = 3
	defaultThoughtsPerLevel = 3
	expansionBeamWidth      = 2
	scoringConcurrency      = 4
)

// Thought is one candidate partial solution in the search tree. Nodes carry
// a stable generated ID and reference their parent by ID, so two thoughts
// with identical text at different tree positions stay distinguishable.
// Nodes are never mutated after scoring and never removed; the full tree is
// retained in the result metadata.
type Thought struct {
	ID       string
	ParentID string // empty for root-level thoughts
	Content  string
	Level    int
	Score    int
}

// TreeOfThoughts explores multiple reasoning paths level by level, keeps
// the two most promising thoughts per level for expansion, and synthesizes
// the final answer from the best root-to-leaf path.
type TreeOfThoughts struct {
	core.BasePattern
	maxDepth         int
	thoughtsPerLevel int
}

var _ core.Pattern = (*TreeOfThoughts)(nil)

// NewTreeOfThoughts creates a TreeOfThoughts pattern. Non-positive bounds
// fall back to the defaults (depth 3, three thoughts per level).
func NewTreeOfThoughts(llm core.LLM, maxDepth, thoughtsPerLevel int) *TreeOfThoughts {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	if thoughtsPerLevel <= 0 {
		thoughtsPerLevel = defaultThoughtsPerLevel
	}
	return &TreeOfThoughts{
		BasePattern:      core.NewBasePattern("TreeOfThoughts", llm),
		maxDepth:         maxDepth,
		thoughtsPerLevel: thoughtsPerLevel,
	}
}

func (t *TreeOfThoughts) Execute(ctx context.Context, prompt string) core.PatternResult {
	ctx = logging.WithPatternName(ctx, t.Name())
	logger := logging.GetLogger()

	totalCost := 0.0
	var tree []*Thought

	// Level 0: distinct initial approaches.
	candidates, cost, err := t.generateThoughts(ctx, prompt, "")
	totalCost += cost
	if err != nil {
		return t.Fail(err, totalCost, map[string]interface{}{"original_prompt": prompt})
	}
	if len(candidates) == 0 {
		err := errors.New(errors.NoInitialThoughts, "failed to generate initial thoughts")
		return t.Fail(err, totalCost, map[string]interface{}{"original_prompt": prompt})
	}

	for _, content := range candidates {
		tree = append(tree, &Thought{
			ID:      uuid.NewString(),
			Content: content,
			Level:   0,
		})
	}

	cost, err = t.scoreLevel(ctx, prompt, tree)
	totalCost += cost
	if err != nil {
		return t.Fail(err, totalCost, treeMetadata(tree, nil))
	}

	// Expand the two most promising thoughts of each level.
	for level := 1; level < t.maxDepth; level++ {
		parents := topThoughts(thoughtsAtLevel(tree, level-1), expansionBeamWidth)

		var added []*Thought
		for _, parent := range parents {
			candidates, cost, err := t.generateThoughts(ctx, prompt, parent.Content)
			totalCost += cost
			if err != nil {
				return t.Fail(err, totalCost, treeMetadata(tree, nil))
			}
			for _, content := range candidates {
				node := &Thought{
					ID:       uuid.NewString(),
					ParentID: parent.ID,
					Content:  content,
					Level:    level,
				}
				tree = append(tree, node)
				added = append(added, node)
			}
		}

		cost, err = t.scoreLevel(ctx, prompt, added)
		totalCost += cost
		if err != nil {
			return t.Fail(err, totalCost, treeMetadata(tree, nil))
		}

		logger.Debug(ctx, "level %d: %d thoughts expanded from %d parents", level, len(added), len(parents))
	}

	path := bestPath(tree)
	if len(path) == 0 {
		err := errors.New(errors.NoPathFound, "no valid path found in tree")
		return t.Fail(err, totalCost, treeMetadata(tree, nil))
	}

	response, cost, err := t.synthesize(ctx, prompt, path)
	totalCost += cost
	if err != nil {
		return t.Fail(err, totalCost, treeMetadata(tree, path))
	}

	return t.Succeed(response, totalCost, treeMetadata(tree, path))
}

// generateThoughts requests thoughtsPerLevel candidates, either initial
// approaches (empty parent) or expansions of a parent thought.
func (t *TreeOfThoughts) generateThoughts(ctx context.Context, prompt, parent string) ([]string, float64, error) {
	var thoughtPrompt string
	if parent == "" {
		thoughtPrompt = fmt.Sprintf(`For the prompt: %q

Generate %d different initial approaches or thoughts to solve this problem.
Each thought should be a distinct strategy or perspective.`, prompt, t.thoughtsPerLevel)
	} else {
		thoughtPrompt = fmt.Sprintf(`For the prompt: %q

Previous thought: %q

Generate %d different ways to expand or refine this thought.
Each should be a specific next step or consideration.`, prompt, parent, t.thoughtsPerLevel)
	}

	response, err := t.Generate(ctx, thoughtPrompt)
	if err != nil {
		return nil, 0, err
	}
	cost := t.EstimateCost(thoughtPrompt, response)

	return extract.ThoughtLines(response, t.thoughtsPerLevel), cost, nil
}

// scoreLevel rates every thought in the slice with one generation call
// each. The calls are independent, so they fan out on a bounded pool; the
// cost sum and the per-node scores do not depend on completion order.
func (t *TreeOfThoughts) scoreLevel(ctx context.Context, prompt string, thoughts []*Thought) (float64, error) {
	if len(thoughts) == 0 {
		return 0, nil
	}

	var mu sync.Mutex
	totalCost := 0.0

	p := pool.New().WithErrors().WithMaxGoroutines(scoringConcurrency)
	for _, thought := range thoughts {
		p.Go(func() error {
			score, cost, err := t.scoreThought(ctx, prompt, thought.Content)

			mu.Lock()
			totalCost += cost
			mu.Unlock()

			if err != nil {
				return err
			}
			thought.Score = score
			return nil
		})
	}
	err := p.Wait()
	return totalCost, err
}

func (t *TreeOfThoughts) scoreThought(ctx context.Context, prompt, content string) (int, float64, error) {
	evalPrompt := fmt.Sprintf(`For the prompt: %q

Evaluate this thought: %q

Rate how promising this thought is for solving the problem (1-10):
- 1-3: Poor approach
- 4-6: Moderate potential
- 7-8: Good approach
- 9-10: Excellent approach

Provide only the number rating:`, prompt, content)

	response, err := t.Generate(ctx, evalPrompt)
	if err != nil {
		return 0, 0, err
	}
	cost := t.EstimateCost(evalPrompt, response)

	return extract.FirstInteger(response, defaultScore), cost, nil
}

func (t *TreeOfThoughts) synthesize(ctx context.Context, prompt string, path []*Thought) (string, float64, error) {
	var steps strings.Builder
	for i, thought := range path {
		fmt.Fprintf(&steps, "%d. %s\n", i+1, thought.Content)
	}

	synthesisPrompt := fmt.Sprintf(`For the prompt: %q

Here is the best reasoning path found:
%s
Synthesize these thoughts into a comprehensive, well-structured final answer.`, prompt, steps.String())

	response, err := t.Generate(ctx, synthesisPrompt)
	if err != nil {
		return "", 0, err
	}
	return response, t.EstimateCost(synthesisPrompt, response), nil
}

func thoughtsAtLevel(tree []*Thought, level int) []*Thought {
	var out []*Thought
	for _, thought := range tree {
		if thought.Level == level {
			out = append(out, thought)
		}
	}
	return out
}

// topThoughts returns up to n thoughts ordered by descending score,
// preserving generation order among equals.
func topThoughts(thoughts []*Thought, n int) []*Thought {
	sorted := make([]*Thought, len(thoughts))
	copy(sorted, thoughts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// bestPath picks the highest-scored thought at the deepest populated level
// and walks parent IDs back to the root.
func bestPath(tree []*Thought) []*Thought {
	if len(tree) == 0 {
		return nil
	}

	byID := make(map[string]*Thought, len(tree))
	deepest := 0
	for _, thought := range tree {
		byID[thought.ID] = thought
		if thought.Level > deepest {
			deepest = thought.Level
		}
	}

	var best *Thought
	for _, thought := range tree {
		if thought.Level != deepest {
			continue
		}
		if best == nil || thought.Score > best.Score {
			best = thought
		}
	}
	if best == nil {
		return nil
	}

	var path []*Thought
	for node := best; node != nil; node = byID[node.ParentID] {
		path = append([]*Thought{node}, path...)
		if node.ParentID == "" {
			break
		}
	}
	return path
}

func treeMetadata(tree []*Thought, path []*Thought) map[string]interface{} {
	thoughts := make([]Thought, len(tree))
	for i, t := range tree {
		thoughts[i] = *t
	}
	contents := make([]string, len(path))
	for i, t := range path {
		contents[i] = t.Content
	}
	return map[string]interface{}{
		"thoughts":       thoughts,
		"best_path":      contents,
		"total_thoughts": len(thoughts),
	}
}
