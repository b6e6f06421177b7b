package search

import "github.com/alostsock/craftsim/internal/parameters"

// Options parameterizes one Searcher run.
type Options struct {
	Iterations int

	RNGSeed uint64

	// ScoreStorageThreshold, when non-nil, causes a rollout trajectory to be re-executed
	// against the tree whenever its terminal score meets or exceeds
	// max(*ScoreStorageThreshold, root.MaxScore). A nil threshold means the rollout
	// trajectory is never stored, which is what search_stepwise uses internally.
	ScoreStorageThreshold *float32

	// MaxScoreWeightingConstant is w in the node-scoring formula. Default 0.1.
	MaxScoreWeightingConstant float32

	// ExplorationConstant is c in the node-scoring formula. Default 1.5.
	ExplorationConstant float32
}

// DefaultOptions returns Options with the hyperparameter defaults from the scoring
// formula (w=0.1, c=1.5) and no score storage.
func DefaultOptions() Options {
	return Options{
		Iterations:                1000,
		MaxScoreWeightingConstant: 0.1,
		ExplorationConstant:       1.5,
	}
}

// NewOptionsFromParams builds Options from a flat config string, starting from
// DefaultOptions and overriding whatever keys are present: iterations, rng_seed,
// score_storage_threshold, w, c.
func NewOptionsFromParams(params parameters.Params) (Options, error) {
	opts := DefaultOptions()
	var err error
	if opts.Iterations, err = parameters.PopParamOr(params, "iterations", opts.Iterations); err != nil {
		return opts, err
	}
	var seed int
	if seed, err = parameters.PopParamOr(params, "rng_seed", 0); err != nil {
		return opts, err
	}
	opts.RNGSeed = uint64(seed)
	if opts.MaxScoreWeightingConstant, err = parameters.PopParamOr(params, "w", opts.MaxScoreWeightingConstant); err != nil {
		return opts, err
	}
	if opts.ExplorationConstant, err = parameters.PopParamOr(params, "c", opts.ExplorationConstant); err != nil {
		return opts, err
	}
	var threshold float32
	if threshold, err = parameters.PopParamOr(params, "score_storage_threshold", float32(-1)); err != nil {
		return opts, err
	}
	if threshold >= 0 {
		opts.ScoreStorageThreshold = &threshold
	}
	return opts, nil
}
