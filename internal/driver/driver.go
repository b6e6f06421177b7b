// Package driver implements the three external entry points of spec §4.7: simulate,
// search_oneshot and search_stepwise. It is the library's main boundary surface --
// everything else in internal/craft, internal/tree and internal/search is plumbing
// these three functions stand on top of.
package driver

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/alostsock/craftsim/internal/craft"
	"github.com/alostsock/craftsim/internal/search"
)

// SimulateResult is the outcome of replaying a fixed action sequence.
type SimulateResult struct {
	Final  *craft.CraftState
	Result craft.Result
}

// Simulate executes actions against ctx in non-strict mode and returns the final state
// and its terminal classification. It does not require the sequence to reach a terminal
// state; if it doesn't, Result.Kind is still computed off whatever CheckResult reports at
// that point (meaningful only once the caller also checks IsTerminal).
//
// Executing an action not present in the current AvailableMoves is a driver-level
// illegal move: Simulate stops early and reports InvalidActionFailure rather than
// calling Execute on an action the pruner never licensed.
func Simulate(ctx *craft.CraftContext, actions []craft.Action) SimulateResult {
	s := ctx.NewState()
	for _, a := range actions {
		if !s.AvailableMoves.Contains(a) {
			return SimulateResult{Final: s, Result: craft.Result{Kind: craft.ResultInvalidActionFailure}}
		}
		s = s.Execute(a, false)
	}
	return SimulateResult{Final: s, Result: s.CheckResult()}
}

// SearchOneshotResult is the outcome of a single search_oneshot call.
type SearchOneshotResult struct {
	Actions []craft.Action
	Final   *craft.CraftState
}

// SearchOneshot builds one tree rooted at the state produced by replaying history
// non-strictly, converts it to a strict root, runs a Searcher (or, if parallelism > 1,
// several independent ones with distinct seeds, keeping the highest max_score), and
// returns history followed by the extracted solution.
func SearchOneshot(ctx *craft.CraftContext, history []craft.Action, opts search.Options, parallelism int) (SearchOneshotResult, error) {
	replay := Simulate(ctx, history)
	if replay.Result.Kind == craft.ResultInvalidActionFailure {
		return SearchOneshotResult{}, errors.Errorf("search_oneshot: history replays to an illegal action")
	}
	root := replay.Final.StrictCopy()

	if parallelism < 1 {
		parallelism = 1
	}

	var bestActions []craft.Action
	var bestFinal *craft.CraftState
	var bestMaxScore float32 = -1

	for i := 0; i < parallelism; i++ {
		runOpts := opts
		runOpts.RNGSeed = opts.RNGSeed + uint64(i)
		s := search.New(ctx, root.StrictCopy(), runOpts)
		actions, final := s.Run()
		if final.MaxScore >= bestMaxScore {
			bestActions, bestFinal, bestMaxScore = actions, final, final.MaxScore
		}
	}

	if klog.V(2).Enabled() {
		klog.Infof("search_oneshot: %d parallel searcher(s), best max_score=%.4f over %d actions",
			parallelism, bestMaxScore, len(bestActions))
	}

	return SearchOneshotResult{Actions: append(append([]craft.Action{}, history...), bestActions...), Final: bestFinal}, nil
}

// ActionCallback is invoked by SearchStepwise after each committed action, with the
// action just taken and the resulting state.
type ActionCallback func(action craft.Action, state *craft.CraftState)

// SearchStepwise iteratively chooses one action at a time: at each step it runs a fresh
// Searcher from the current state, commits only the first action of the extracted
// solution, invokes callback if non-nil, and repeats until terminal. If the extracted
// solution at any step already reaches max_score >= 1.0, it is committed in full and the
// loop exits early. It internally forces ScoreStorageThreshold to nil to minimize memory,
// per spec §4.7.
func SearchStepwise(ctx *craft.CraftContext, history []craft.Action, opts search.Options, callback ActionCallback) (SearchOneshotResult, error) {
	replay := Simulate(ctx, history)
	if replay.Result.Kind == craft.ResultInvalidActionFailure {
		return SearchOneshotResult{}, errors.Errorf("search_stepwise: history replays to an illegal action")
	}

	opts.ScoreStorageThreshold = nil

	current := replay.Final
	actions := append([]craft.Action{}, history...)
	seed := opts.RNGSeed

	for !current.IsTerminal() {
		runOpts := opts
		runOpts.RNGSeed = seed
		seed++

		s := search.New(ctx, current.StrictCopy(), runOpts)
		extracted, final := s.Run()
		if len(extracted) == 0 {
			break
		}

		if final.MaxScore >= 1.0 {
			for _, a := range extracted {
				current = current.Execute(a, false)
				actions = append(actions, a)
				if callback != nil {
					callback(a, current)
				}
			}
			break
		}

		a := extracted[0]
		current = current.Execute(a, false)
		actions = append(actions, a)
		if callback != nil {
			callback(a, current)
		}
	}

	return SearchOneshotResult{Actions: actions, Final: current}, nil
}
