package search

// Stats records per-run counters, reported the way the teacher's searchers log
// node/eval throughput after a search completes.
type Stats struct {
	Iterations int

	// NodesCreated counts tree nodes inserted by expansion, plus any rollout
	// trajectories re-executed into the tree under ScoreStorageThreshold.
	NodesCreated int

	// DeadEndsSelected counts iterations where selection landed on a node with no
	// unexpanded moves and no children: expansion and rollout were both skipped.
	DeadEndsSelected int

	// RolloutSteps sums the number of actions played across every rollout.
	RolloutSteps int

	// TrajectoriesStored counts rollouts whose full path was re-executed into the tree
	// because their score met the storage threshold.
	TrajectoriesStored int
}
