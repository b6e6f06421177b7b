// Package search implements the MCTS loop of spec §4.6: selection, expansion, rollout,
// and backpropagation over an internal/tree.Arena of internal/craft.CraftState nodes.
package search

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/alostsock/craftsim/internal/craft"
	"github.com/alostsock/craftsim/internal/tree"
)

// Searcher owns one arena, one RNG, and the options for a single search run. It shares
// no state with any other Searcher; the only thing it reads without owning is the
// CraftContext, which is immutable once built.
type Searcher struct {
	ctx   *craft.CraftContext
	arena *tree.Arena[*craft.CraftState]
	root  int
	rng   *rand.Rand
	opts  Options
	stats Stats
}

// New creates a Searcher rooted at root, which must already have AvailableMoves
// populated under strict pruning (see CraftState.StrictCopy).
func New(ctx *craft.CraftContext, root *craft.CraftState, opts Options) *Searcher {
	arena := tree.New[*craft.CraftState]()
	rootIdx := arena.Insert(tree.NoParent, root)
	return &Searcher{
		ctx:   ctx,
		arena: arena,
		root:  rootIdx,
		rng:   rand.New(rand.NewSource(int64(opts.RNGSeed))),
		opts:  opts,
	}
}

// Stats returns the counters accumulated by Run so far.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// Run executes opts.Iterations MCTS iterations and returns the extracted solution: the
// actions along the highest-max_score path from root, plus the final state reached.
func (s *Searcher) Run() ([]craft.Action, *craft.CraftState) {
	start := time.Now()
	for i := 0; i < s.opts.Iterations; i++ {
		s.iterate()
	}
	s.stats.Iterations = s.opts.Iterations

	if klog.V(1).Enabled() {
		elapsed := time.Since(start)
		rate := float64(s.stats.Iterations) / elapsed.Seconds()
		klog.Infof("search: %d iterations in %s (%.0f iter/s), %d nodes, %d dead ends",
			s.stats.Iterations, elapsed, rate, s.stats.NodesCreated, s.stats.DeadEndsSelected)
	}

	return s.extractSolution()
}

// iterate runs one selection/expansion/rollout/backpropagation cycle.
func (s *Searcher) iterate() {
	selected := s.select_()
	selectedState := s.arena.Get(selected)

	if selectedState.AvailableMoves.IsEmpty() {
		s.stats.DeadEndsSelected++
		s.backpropagate(selected, selectedState.CheckResult())
		return
	}

	child, action, childState := s.expand(selected, selectedState)
	_ = action

	final, trajectory := s.rollout(childState)
	result := final.CheckResult()

	backpropFrom := child
	if s.shouldStore(result) {
		backpropFrom = s.storeTrajectory(child, trajectory)
	}
	s.backpropagate(backpropFrom, result)
}

// select_ descends from the root by the node-scoring formula until it reaches a node
// with unexpanded legal moves, or one with no children at all.
func (s *Searcher) select_() int {
	idx := s.root
	for {
		state := s.arena.Get(idx)
		if !state.AvailableMoves.IsEmpty() {
			return idx
		}
		children := s.arena.Children(idx)
		if len(children) == 0 {
			return idx
		}
		idx = s.bestChild(idx, children)
	}
}

// bestChild picks the highest-scoring child of parentIdx, breaking ties by argmax order
// (first maximum encountered wins).
func (s *Searcher) bestChild(parentIdx int, children []int) int {
	parent := s.arena.Get(parentIdx)
	best := children[0]
	bestScore := s.scoreChild(parent, s.arena.Get(best))
	for _, c := range children[1:] {
		score := s.scoreChild(parent, s.arena.Get(c))
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// scoreChild implements spec §4.6's selection formula.
func (s *Searcher) scoreChild(parent, child *craft.CraftState) float32 {
	if child.Visits == 0 {
		return math32.Inf(1)
	}
	w := s.opts.MaxScoreWeightingConstant
	c := s.opts.ExplorationConstant
	meanScore := child.ScoreSum / float32(child.Visits)
	exploration := math32.Sqrt(c * math32.Log(float32(parent.Visits)) / float32(child.Visits))
	return (1-w)*meanScore + w*child.MaxScore + exploration
}

// expand uniformly picks one action out of the selected node's available moves, applies
// the strict transition, and appends the result as a new child.
func (s *Searcher) expand(selectedIdx int, selected *craft.CraftState) (childIdx int, action craft.Action, child *craft.CraftState) {
	action, remaining := selected.AvailableMoves.Pick(s.rng)
	selected.AvailableMoves = remaining
	child = selected.Execute(action, true)
	childIdx = s.arena.Insert(selectedIdx, child)
	s.stats.NodesCreated++
	return childIdx, action, child
}

// rollout plays a uniform-random strict policy from start to a terminal state, without
// storing any intermediate state in the tree. It returns the terminal state and the full
// trajectory of states visited (start inclusive), for the benefit of shouldStore/
// storeTrajectory.
func (s *Searcher) rollout(start *craft.CraftState) (final *craft.CraftState, trajectory []*craft.CraftState) {
	trajectory = append(trajectory, start)
	current := start
	for !current.IsTerminal() {
		if current.AvailableMoves.IsEmpty() {
			break
		}
		action, _ := current.AvailableMoves.Pick(s.rng)
		current = current.Execute(action, true)
		trajectory = append(trajectory, current)
		s.stats.RolloutSteps++
	}
	return current, trajectory
}

// shouldStore reports whether result's score clears the storage threshold, per spec
// §4.6's "preserve memory while retaining the best-known solution" rule.
func (s *Searcher) shouldStore(result craft.Result) bool {
	if s.opts.ScoreStorageThreshold == nil {
		return false
	}
	if result.Kind != craft.ResultFinished || result.Score == 0 {
		return false
	}
	root := s.arena.Get(s.root)
	threshold := *s.opts.ScoreStorageThreshold
	if root.MaxScore > threshold {
		threshold = root.MaxScore
	}
	return result.Score >= threshold
}

// storeTrajectory re-executes a rollout's states into the tree as a single child chain
// rooted at child (already the first rollout node in the tree), and returns the index of
// the final node so backpropagation starts there instead of at child.
func (s *Searcher) storeTrajectory(childIdx int, trajectory []*craft.CraftState) int {
	idx := childIdx
	for _, state := range trajectory[1:] {
		idx = s.arena.Insert(idx, state)
		s.stats.NodesCreated++
	}
	s.stats.TrajectoriesStored++
	return idx
}

// backpropagate walks from idx to the root, adding the visit and score to every
// ancestor inclusive of idx itself.
func (s *Searcher) backpropagate(idx int, result craft.Result) {
	score := result.Score
	for _, n := range s.arena.PathToRoot(idx) {
		state := s.arena.Get(n)
		state.Visits++
		state.ScoreSum += score
		if score > state.MaxScore {
			state.MaxScore = score
		}
	}
}

// extractSolution walks from root choosing, at each step, the child with the highest
// max_score; the actions recorded in those child states form the solution.
func (s *Searcher) extractSolution() ([]craft.Action, *craft.CraftState) {
	idx := s.root
	var actions []craft.Action
	for {
		children := s.arena.Children(idx)
		if len(children) == 0 {
			break
		}
		best := children[0]
		bestMax := s.arena.Get(best).MaxScore
		for _, c := range children[1:] {
			if m := s.arena.Get(c).MaxScore; m > bestMax {
				best = c
				bestMax = m
			}
		}
		idx = best
		state := s.arena.Get(idx)
		if state.Action == nil {
			panic(errors.Errorf("search: non-root node %d has no recorded action", idx))
		}
		actions = append(actions, *state.Action)
	}
	return actions, s.arena.Get(idx)
}
