package craft

import "github.com/chewxy/math32"

// progressIncrease computes the progress gained by applying an action of efficiency e
// (a percentage), given the buffs in effect when the action began (i.e. before this
// action's own decrement/effect steps run).
func progressIncrease(base int32, e int32, buffs Buffs) uint32 {
	m := float32(1)
	if buffs.Veneration > 0 {
		m += 0.5
	}
	if buffs.MuscleMemory > 0 {
		m += 1.0
	}
	return floorPct(base, e, m)
}

// qualityIncrease computes the quality gained by applying action a with entering buffs
// and inner_quiet. For ByregotsBlessing the efficiency is overridden; for TrainedEye the
// formula is bypassed entirely in favor of jumping straight to the quality target.
func qualityIncrease(ctx *CraftContext, a Action, e int32, buffs Buffs, quality uint32) uint32 {
	if a == ActionTrainedEye {
		if ctx.QualityTarget <= quality {
			return 0
		}
		return ctx.QualityTarget - quality
	}
	if a == ActionByregotsBlessing {
		e = 100 + 20*int32(buffs.InnerQuiet)
	}
	m := (1 + float32(buffs.InnerQuiet)/10)
	bonus := float32(1)
	if buffs.Innovation > 0 {
		bonus += 0.5
	}
	if buffs.GreatStrides > 0 {
		bonus += 1.0
	}
	m *= bonus
	return floorPct(ctx.BaseQualityFactor, e, m)
}

// floorPct computes floor(base * e * m / 100), the shape shared by both the progress
// and quality formulas.
func floorPct(base int32, e int32, m float32) uint32 {
	v := float32(base) * float32(e) * m / 100
	if v <= 0 {
		return 0
	}
	return uint32(math32.Floor(v))
}

// durabilityCost resolves the post-modifier durability cost of a base cost, given the
// state's trained-perfection lifecycle and active waste-not buffs.
func durabilityCost(base int32, trainedPerfectionActive TrainedPerfectionState, buffs Buffs) int32 {
	if trainedPerfectionActive == TrainedPerfectionActive {
		return 0
	}
	if buffs.anyWasteNotActive() {
		return base / 2
	}
	return base
}

// comboPairs lists the (antecedent, successor) chains that discount the successor's CP
// cost to 18 when the antecedent is the state's previous_combo_action.
var comboPairs = map[Action]Action{
	ActionBasicTouch:    ActionStandardTouch,
	ActionStandardTouch: ActionAdvancedTouch,
	ActionObserve:       ActionAdvancedTouch,
}

const comboCPCost = 18

// cpCost resolves the post-combo CP cost of executing a, given the previous combo anchor.
func cpCost(a Action, base int32, previousCombo *Action) int32 {
	if previousCombo != nil {
		if successor, ok := comboPairs[*previousCombo]; ok && successor == a {
			return comboCPCost
		}
	}
	return base
}

// nextComboAnchor computes the new previous_combo_action after executing a, given the
// anchor entering the transition. The anchor only ever carries a single hop: BasicTouch
// and Observe become fresh anchors, BasicTouch extends into StandardTouch or RefinedTouch,
// and every other action clears it.
func nextComboAnchor(a Action, entering *Action) *Action {
	switch a {
	case ActionBasicTouch:
		return actionPtr(ActionBasicTouch)
	case ActionObserve:
		return actionPtr(ActionObserve)
	}
	if entering != nil && *entering == ActionBasicTouch && (a == ActionStandardTouch || a == ActionRefinedTouch) {
		return actionPtr(a)
	}
	return nil
}

func actionPtr(a Action) *Action { return &a }
