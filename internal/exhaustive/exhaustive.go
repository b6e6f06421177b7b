// Package exhaustive implements a depth-bounded, depth-first enumeration over
// internal/craft states (no score-based pruning of branches): an alternative to internal/search's MCTS loop for recipes
// small enough (in step budget and branching factor) to enumerate outright.
package exhaustive

import (
	"time"

	"k8s.io/klog/v2"

	"github.com/alostsock/craftsim/internal/craft"
	"github.com/alostsock/craftsim/internal/parameters"
)

// DefaultMaxDepth bounds how many plies deep the search recurses when the caller gives
// no explicit depth.
const DefaultMaxDepth = 30

// Searcher performs a depth-first enumeration of strict legal moves from a root state,
// keeping the single best-scoring finished trajectory encountered. It carries no tree or
// RNG: unlike internal/search.Searcher, every reachable state is visited at most once
// along its own path and nothing is sampled.
type Searcher struct {
	maxDepth int
	maxTime  time.Duration

	stats Stats
}

// Stats stores running counters collected during Run, for benchmarking and debugging.
type Stats struct {
	nodes     int
	leafEvals int
	timedOut  bool
}

// New returns a Searcher with DefaultMaxDepth and no time limit.
func New() *Searcher {
	return &Searcher{maxDepth: DefaultMaxDepth}
}

// NewFromParams configures an exhaustive Searcher if "exhaustive" is set in params,
// mirroring the opt-in gate the teacher's alpha-beta searcher uses for "ab". It returns
// (nil, nil) if the gate is unset, so a driver can try several searcher constructors in
// sequence and use whichever opts in.
//
// Params used:
//   - "exhaustive": must be set (or "true") to enable this searcher.
//   - "max_depth": in plies. Default DefaultMaxDepth.
//   - "max_time": wall-clock budget as a Go duration string (e.g. "5s"); 0 means unbounded.
func NewFromParams(params parameters.Params) (*Searcher, error) {
	enabled, err := parameters.PopParamOr(params, "exhaustive", false)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, nil
	}
	s := New()
	if s.maxDepth, err = parameters.PopParamOr(params, "max_depth", s.maxDepth); err != nil {
		return nil, err
	}
	maxTime, err := parameters.PopParamOr(params, "max_time", "")
	if err != nil {
		return nil, err
	}
	if maxTime != "" {
		if s.maxTime, err = time.ParseDuration(maxTime); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Stats returns the counters accumulated by the last Run.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// Run enumerates strict legal moves from root up to maxDepth (or until the time budget,
// if set, expires) and returns the action path and final state of the best-scoring
// Finished trajectory found. root must already carry strict AvailableMoves (see
// craft.CraftState.StrictCopy). If no Finished trajectory is found within the bound,
// the returned action slice is nil.
func (s *Searcher) Run(root *craft.CraftState) ([]craft.Action, *craft.CraftState) {
	start := time.Now()
	var deadline time.Time
	if s.maxTime > 0 {
		deadline = start.Add(s.maxTime)
	}

	var bestActions []craft.Action
	var bestFinal *craft.CraftState
	bestScore := float32(-1)

	var path []craft.Action
	var dfs func(state *craft.CraftState, depth int)
	dfs = func(state *craft.CraftState, depth int) {
		s.stats.nodes++
		if !deadline.IsZero() && time.Now().After(deadline) {
			s.stats.timedOut = true
			return
		}

		if state.IsTerminal() {
			s.stats.leafEvals++
			result := state.CheckResult()
			if result.Kind == craft.ResultFinished && result.Score > bestScore {
				bestScore = result.Score
				bestActions = append([]craft.Action{}, path...)
				bestFinal = state
			}
			return
		}
		if depth >= s.maxDepth {
			return
		}

		for _, a := range state.AvailableMoves.ToSlice() {
			next := state.Execute(a, true)
			path = append(path, a)
			dfs(next, depth+1)
			path = path[:len(path)-1]

			if !deadline.IsZero() && time.Now().After(deadline) {
				return
			}
		}
	}
	dfs(root, 0)

	if klog.V(1).Enabled() {
		klog.Infof("exhaustive: visited %d nodes, %d leaves, timed_out=%v, best_score=%.4f in %s",
			s.stats.nodes, s.stats.leafEvals, s.stats.timedOut, bestScore, time.Since(start))
	}

	return bestActions, bestFinal
}
