package craft

// computeAvailableMoves re-derives the legal-move set for s. A terminal state always gets
// the empty set. Otherwise the pool starts from context.ActionPool and shrinks through two
// hard, mode-independent rules, the per-action table of §4.4, and -- in strict mode only --
// the additional pruning used to keep MCTS rollouts tractable.
func (s *CraftState) computeAvailableMoves(strict bool) ActionSet {
	if s.IsTerminal() {
		return 0
	}

	pool := s.ctx.ActionPool.Retain(func(a Action) bool {
		attrs := a.Attributes()
		if attrs.CPCost != nil {
			cost := cpCost(a, *attrs.CPCost, s.PreviousComboAction)
			if cost > 0 && uint32(cost) > s.CP {
				return false
			}
		}
		if s.Quality >= s.ctx.QualityTarget && a.IsQualityAction() {
			return false
		}
		return true
	})

	pool = pool.Retain(func(a Action) bool { return s.actionSpecificAllowed(a, strict) })

	if strict {
		pool = s.applyStrictOnly(pool)
	}
	return pool
}

// actionSpecificAllowed implements the mode-independent per-action table of §4.4; the
// strict parameter only tightens a handful of these to a stricter variant (ByregotsBlessing,
// Observe).
func (s *CraftState) actionSpecificAllowed(a Action, strict bool) bool {
	switch a {
	case ActionMuscleMemory, ActionReflect:
		return s.Step == 0
	case ActionTrainedEye:
		return s.Step == 0 && !s.ctx.IsExpert
	case ActionByregotsBlessing:
		if strict {
			return s.Buffs.InnerQuiet > 1
		}
		return s.Buffs.InnerQuiet > 0
	case ActionTrainedFinesse:
		return s.Buffs.InnerQuiet == 10
	case ActionTrainedPerfection:
		return s.TrainedPerfectionActive == TrainedPerfectionNone
	case ActionPrudentSynthesis, ActionPrudentTouch:
		return !s.Buffs.anyWasteNotActive()
	case ActionObserve:
		isAnchor := s.PreviousComboAction != nil && *s.PreviousComboAction == ActionObserve
		if strict {
			return !isAnchor && s.CP >= 25
		}
		return !isAnchor
	case ActionGroundwork, ActionGroundworkTraited:
		attrs := a.Attributes()
		cost := durabilityCost(*attrs.DurabilityCost, s.TrainedPerfectionActive, s.Buffs)
		return s.Durability >= cost
	case ActionRefinedTouch:
		return s.PreviousComboAction != nil && *s.PreviousComboAction == ActionBasicTouch
	case ActionManipulation:
		return s.ctx.UseManipulation
	case ActionQuickInnovation:
		return s.ctx.UseDelineation && s.Buffs.Innovation == 0 && s.QuickInnovationAvailable
	}
	return true
}

// applyStrictOnly narrows pool with the extra rules reserved for MCTS rollout/replay:
// forced moves, re-cast throttles, and the progress-vs-quality heuristics that keep the
// branching factor small.
func (s *CraftState) applyStrictOnly(pool ActionSet) ActionSet {
	if pool.Contains(ActionTrainedEye) && s.ctx.QualityTarget > 0 {
		return NewActionSet(ActionTrainedEye)
	}
	if s.PreviousComboAction != nil && *s.PreviousComboAction == ActionObserve {
		return pool & NewActionSet(ActionAdvancedTouch)
	}

	return pool.Retain(func(a Action) bool {
		switch a {
		case ActionWasteNot, ActionWasteNotII:
			if s.Buffs.anyWasteNotActive() {
				return false
			}
		case ActionMastersMend:
			if s.ctx.DurabilityMax-s.Durability < 25 {
				return false
			}
		case ActionManipulation:
			if s.Buffs.Manipulation > 0 {
				return false
			}
		case ActionGreatStrides:
			if s.Buffs.GreatStrides > 0 {
				return false
			}
		case ActionVeneration:
			if !(s.Buffs.Veneration <= 1 && s.Buffs.Innovation <= 1) {
				return false
			}
		case ActionInnovation:
			if !(s.Buffs.Innovation <= 1 && s.Buffs.Veneration <= 1) {
				return false
			}
		case ActionImmaculateMend:
			if !(s.ctx.DurabilityMax-s.Durability > 45 && s.Buffs.Manipulation == 0) {
				return false
			}
		}

		if a.IsProgressAction() {
			attrs := a.Attributes()
			prospective := s.Progress + progressIncrease(s.ctx.BaseProgressFactor, *attrs.ProgressEfficiency, s.Buffs)
			wouldComplete := prospective >= s.ctx.ProgressTarget
			if wouldComplete && s.Quality < s.ctx.QualityTarget/5 {
				return false
			}
			if s.Buffs.Innovation > 0 && !a.IsQualityAction() && !wouldComplete {
				return false
			}
		}

		if s.Buffs.MuscleMemory > 0 && s.ctx.PlayerJobLevel == s.ctx.RecipeJobLevel && a.IsQualityAction() {
			return false
		}
		if s.Buffs.Veneration > 0 && a.IsQualityAction() && !a.IsProgressAction() {
			return false
		}
		return true
	})
}
