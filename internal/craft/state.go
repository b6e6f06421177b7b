package craft

// Result classifies a terminal CraftState. CheckResult on a state that is not terminal
// returns the zero Result (ResultFinished with Score 0); callers distinguish "not terminal
// yet" from a finished craft with CraftState.IsTerminal.
type Result struct {
	Kind  ResultKind
	Score float32
}

type ResultKind int

const (
	ResultFinished ResultKind = iota
	ResultDurabilityFailure
	ResultMaxStepsFailure
	ResultInvalidActionFailure
)

// CraftState is the mutable per-node game state produced by CraftContext.NewState and
// CraftState.Execute. Values are copied by value; Execute returns a fresh copy rather than
// mutating the receiver, so callers may keep multiple states (e.g. sibling tree nodes)
// derived from a shared ancestor.
type CraftState struct {
	ctx *CraftContext

	Step       uint8
	Progress   uint32
	Quality    uint32
	Durability int32
	CP         uint32

	Buffs Buffs

	PreviousComboAction      *Action
	QuickInnovationAvailable bool
	TrainedPerfectionActive  TrainedPerfectionState

	Action *Action

	// MCTS bookkeeping, reset to zero by Execute; maintained in place by a Searcher.
	ScoreSum float32
	MaxScore float32
	Visits   uint32

	AvailableMoves ActionSet
}

// NewState builds the root CraftState for a craft under ctx, with the available-move set
// already populated (non-strict, since a root is typically constructed once and then
// driven through both strict and non-strict pruning as needed).
func (ctx *CraftContext) NewState() *CraftState {
	s := &CraftState{
		ctx:                      ctx,
		Quality:                  ctx.StartingQuality,
		Durability:               ctx.DurabilityMax,
		CP:                       ctx.CPMax,
		QuickInnovationAvailable: true,
	}
	s.AvailableMoves = s.computeAvailableMoves(false)
	return s
}

// Context returns the CraftContext this state was derived under.
func (s *CraftState) Context() *CraftContext { return s.ctx }

// StrictCopy returns a copy of s with AvailableMoves recomputed under strict pruning,
// for handing a non-strictly-replayed state off to a Searcher as its root.
func (s *CraftState) StrictCopy() *CraftState {
	next := *s
	next.AvailableMoves = next.computeAvailableMoves(true)
	return &next
}

// IsTerminal reports whether the craft has ended, one way or another, at this state.
func (s *CraftState) IsTerminal() bool {
	return s.Progress >= s.ctx.ProgressTarget || s.Step >= s.ctx.StepMax || s.Durability <= 0
}

// CheckResult classifies a terminal state. It is idempotent and depends only on state
// fields, never on MCTS stats.
func (s *CraftState) CheckResult() Result {
	if s.Progress >= s.ctx.ProgressTarget {
		return Result{Kind: ResultFinished, Score: s.Score()}
	}
	if s.Durability <= 0 {
		return Result{Kind: ResultDurabilityFailure}
	}
	if s.Step >= s.ctx.StepMax {
		return Result{Kind: ResultMaxStepsFailure}
	}
	return Result{Kind: ResultFinished, Score: 0}
}

// Score computes the scalar reward of a finished craft, in [0, 1]. Non-finished terminals
// score 0; callers must check CheckResult().Kind first.
func (s *CraftState) Score() float32 {
	if s.Progress < s.ctx.ProgressTarget {
		return 0
	}
	if s.ctx.QualityTarget == 0 {
		return 1 - float32(s.Step)/float32(s.ctx.StepMax)
	}
	progressRatio := min1(float32(s.Progress) / float32(s.ctx.ProgressTarget))
	qualityRatio := min1(float32(s.Quality) / float32(s.ctx.QualityTarget))
	durabilityRatio := min1(float32(s.Durability) / float32(s.ctx.DurabilityMax))
	cpRatio := min1(float32(s.CP) / float32(s.ctx.CPMax))
	stepRatio := 1 - float32(s.Step)/float32(s.ctx.StepMax)
	return 0.20*progressRatio + 0.65*qualityRatio + 0.05*durabilityRatio + 0.05*cpRatio + 0.05*stepRatio
}

func min1(v float32) float32 {
	if v > 1 {
		return 1
	}
	return v
}

// Execute produces the successor of applying action to s. The caller guarantees action is
// a member of s.AvailableMoves; Execute does not re-check legality. strict selects which
// pruning regime repopulates the successor's AvailableMoves.
func (s *CraftState) Execute(action Action, strict bool) *CraftState {
	attrs := action.Attributes()
	next := *s
	next.Action = &action
	next.ScoreSum, next.MaxScore, next.Visits = 0, 0, 0
	if action != ActionQuickInnovation {
		next.Step = s.Step + 1
	}
	next.AvailableMoves = 0

	enteringBuffs := s.Buffs
	enteringCombo := s.PreviousComboAction

	// 2. Progress.
	if attrs.ProgressEfficiency != nil {
		next.Progress = s.Progress + progressIncrease(s.ctx.BaseProgressFactor, *attrs.ProgressEfficiency, enteringBuffs)
		next.Buffs.MuscleMemory = 0
	}

	// 3. Quality and inner_quiet.
	if attrs.QualityEfficiency != nil {
		next.Quality = s.Quality + qualityIncrease(s.ctx, action, *attrs.QualityEfficiency, enteringBuffs, s.Quality)
		next.Buffs.InnerQuiet = innerQuietUpdate(action, enteringCombo, enteringBuffs.InnerQuiet, s.ctx.PlayerJobLevel)
		next.Buffs.GreatStrides = 0
	}

	// 4. Durability.
	if attrs.DurabilityCost != nil {
		cost := durabilityCost(*attrs.DurabilityCost, s.TrainedPerfectionActive, enteringBuffs)
		next.Durability = s.Durability - cost
		if *attrs.DurabilityCost > 0 && s.TrainedPerfectionActive == TrainedPerfectionActive {
			next.TrainedPerfectionActive = TrainedPerfectionUsed
		}
	}

	// 5. Manipulation regeneration.
	if enteringBuffs.Manipulation > 0 && next.Durability > 0 {
		next.Durability = minI32(next.Durability+5, s.ctx.DurabilityMax)
	}

	// 6. CP.
	if attrs.CPCost != nil {
		next.CP = s.CP - uint32(cpCost(action, *attrs.CPCost, enteringCombo))
	}

	// 7. Combo anchor.
	next.PreviousComboAction = nextComboAnchor(action, enteringCombo)

	// 8. Decrement timers.
	if action != ActionQuickInnovation {
		next.Buffs.decrementTimers()
	}

	// 9. Effect.
	if attrs.Effect != nil {
		attrs.Effect(&next)
	}

	next.AvailableMoves = next.computeAvailableMoves(strict)
	return &next
}

// innerQuietUpdate resolves the post-action inner_quiet value per the rules of §4.3 step 3.
func innerQuietUpdate(a Action, enteringCombo *Action, iq uint8, playerJobLevel uint32) uint8 {
	if playerJobLevel < 11 {
		return iq
	}
	switch {
	case a == ActionByregotsBlessing:
		return 0
	case a == ActionReflect || a == ActionPreparatoryTouch:
		return min10(iq + 2)
	case a == ActionRefinedTouch && enteringCombo != nil && *enteringCombo == ActionBasicTouch:
		return min10(iq + 2)
	default:
		return min10(iq + 1)
	}
}

func min10(v uint8) uint8 {
	if v > 10 {
		return 10
	}
	return v
}
