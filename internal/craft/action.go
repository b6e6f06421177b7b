// Package craft implements the crafting simulation kernel: the action catalog,
// the per-craft context and mutable state, the state transition function, and
// the legal-move pruner. It has no search logic of its own -- internal/search
// and internal/driver build on top of it.
package craft

import "strconv"

//go:generate go tool enumer -type=Action -trimprefix=Action -transform=snake -text -json

// Action enumerates every move the simulation kernel knows about. The order
// here is the dense index used by ActionSet; it has no other significance.
type Action int

const (
	ActionBasicSynthesis Action = iota
	ActionCarefulSynthesis
	ActionGroundwork
	ActionGroundworkTraited
	ActionMuscleMemory
	ActionPrudentSynthesis
	ActionDelicateSynthesis
	ActionBasicTouch
	ActionStandardTouch
	ActionAdvancedTouch
	ActionRefinedTouch
	ActionPreparatoryTouch
	ActionPrudentTouch
	ActionTrainedFinesse
	ActionByregotsBlessing
	ActionReflect
	ActionTrainedEye
	ActionVeneration
	ActionInnovation
	ActionGreatStrides
	ActionWasteNot
	ActionWasteNotII
	ActionManipulation
	ActionMastersMend
	ActionObserve
	ActionTrainedPerfection
	ActionQuickInnovation
	ActionImmaculateMend

	numActions
)

// NumActions is the size of the dense action index space, the width ActionSet is built for.
const NumActions = int(numActions)

// Effect mutates a CraftState after the base progress/quality/durability/cp accounting of
// execute has already run. It must not touch step, progress, quality, cp, inner_quiet,
// previous_combo_action or available_moves -- execute owns those. Durability is the one
// resource an effect may change: Master's Mend and Immaculate Mend restore it here.
type Effect func(s *CraftState)

// Attributes is the immutable per-action record the catalog returns. Optional fields use
// nil rather than a magic sentinel value, since Go has no Option<T> and a literal 0 cost
// is a legitimate value for some actions (BasicSynthesis costs 0 CP).
type Attributes struct {
	Label string
	Level uint32

	// ProgressEfficiency and QualityEfficiency are percentages (100 == "full" efficiency).
	// A value of 0 for an action that does carry the field (ByregotsBlessing, TrainedEye)
	// marks that its real efficiency is computed specially rather than read off this table.
	ProgressEfficiency *int32
	QualityEfficiency  *int32

	DurabilityCost *int32
	CPCost         *int32

	Effect Effect
}

func ptr32(v int32) *int32 { return &v }

var catalog = [numActions]Attributes{
	ActionBasicSynthesis: {
		Label: "Basic Synthesis", Level: 1,
		ProgressEfficiency: ptr32(120), DurabilityCost: ptr32(10), CPCost: ptr32(0),
	},
	ActionCarefulSynthesis: {
		Label: "Careful Synthesis", Level: 62,
		ProgressEfficiency: ptr32(180), DurabilityCost: ptr32(10), CPCost: ptr32(7),
	},
	ActionGroundwork: {
		Label: "Groundwork", Level: 72,
		ProgressEfficiency: ptr32(300), DurabilityCost: ptr32(20), CPCost: ptr32(18),
	},
	ActionGroundworkTraited: {
		Label: "Groundwork", Level: 86,
		ProgressEfficiency: ptr32(360), DurabilityCost: ptr32(20), CPCost: ptr32(18),
	},
	ActionMuscleMemory: {
		Label: "Muscle Memory", Level: 54,
		ProgressEfficiency: ptr32(300), DurabilityCost: ptr32(10), CPCost: ptr32(6),
		Effect: func(s *CraftState) { s.Buffs.MuscleMemory = 5 },
	},
	ActionPrudentSynthesis: {
		Label: "Prudent Synthesis", Level: 88,
		ProgressEfficiency: ptr32(180), DurabilityCost: ptr32(5), CPCost: ptr32(18),
	},
	ActionDelicateSynthesis: {
		Label: "Delicate Synthesis", Level: 76,
		ProgressEfficiency: ptr32(100), QualityEfficiency: ptr32(100),
		DurabilityCost: ptr32(10), CPCost: ptr32(32),
	},
	ActionBasicTouch: {
		Label: "Basic Touch", Level: 5,
		QualityEfficiency: ptr32(100), DurabilityCost: ptr32(10), CPCost: ptr32(18),
	},
	ActionStandardTouch: {
		Label: "Standard Touch", Level: 18,
		QualityEfficiency: ptr32(125), DurabilityCost: ptr32(10), CPCost: ptr32(32),
	},
	ActionAdvancedTouch: {
		Label: "Advanced Touch", Level: 84,
		QualityEfficiency: ptr32(150), DurabilityCost: ptr32(10), CPCost: ptr32(46),
	},
	ActionRefinedTouch: {
		Label: "Refined Touch", Level: 92,
		QualityEfficiency: ptr32(100), DurabilityCost: ptr32(10), CPCost: ptr32(24),
	},
	ActionPreparatoryTouch: {
		Label: "Preparatory Touch", Level: 71,
		QualityEfficiency: ptr32(200), DurabilityCost: ptr32(20), CPCost: ptr32(40),
	},
	ActionPrudentTouch: {
		Label: "Prudent Touch", Level: 66,
		QualityEfficiency: ptr32(100), DurabilityCost: ptr32(5), CPCost: ptr32(25),
	},
	ActionTrainedFinesse: {
		Label: "Trained Finesse", Level: 90,
		QualityEfficiency: ptr32(100), DurabilityCost: ptr32(10), CPCost: ptr32(32),
	},
	ActionByregotsBlessing: {
		Label: "Byregot's Blessing", Level: 50,
		QualityEfficiency: ptr32(0), DurabilityCost: ptr32(10), CPCost: ptr32(24),
	},
	ActionReflect: {
		Label: "Reflect", Level: 69,
		QualityEfficiency: ptr32(100), DurabilityCost: ptr32(10), CPCost: ptr32(6),
	},
	ActionTrainedEye: {
		Label: "Trained Eye", Level: 80,
		QualityEfficiency: ptr32(0), CPCost: ptr32(250),
	},
	ActionVeneration: {
		Label: "Veneration", Level: 15,
		CPCost: ptr32(18),
		Effect: func(s *CraftState) { s.Buffs.Veneration = 4 },
	},
	ActionInnovation: {
		Label: "Innovation", Level: 26,
		CPCost: ptr32(18),
		Effect: func(s *CraftState) { s.Buffs.Innovation = 4 },
	},
	ActionGreatStrides: {
		Label: "Great Strides", Level: 21,
		CPCost: ptr32(32),
		Effect: func(s *CraftState) { s.Buffs.GreatStrides = 3 },
	},
	ActionWasteNot: {
		Label: "Waste Not", Level: 15,
		CPCost: ptr32(56),
		Effect: func(s *CraftState) { s.Buffs.WasteNot = 4 },
	},
	ActionWasteNotII: {
		Label: "Waste Not II", Level: 47,
		CPCost: ptr32(98),
		Effect: func(s *CraftState) { s.Buffs.WasteNotII = 8 },
	},
	ActionManipulation: {
		Label: "Manipulation", Level: 65,
		CPCost: ptr32(96),
		Effect: func(s *CraftState) { s.Buffs.Manipulation = 8 },
	},
	ActionMastersMend: {
		Label: "Master's Mend", Level: 7,
		CPCost: ptr32(88),
		Effect: func(s *CraftState) { s.Durability = minI32(s.Durability+30, s.ctx.DurabilityMax) },
	},
	ActionObserve: {
		Label: "Observe", Level: 13,
		CPCost: ptr32(7),
	},
	ActionTrainedPerfection: {
		Label: "Trained Perfection", Level: 100,
		CPCost: ptr32(0),
		Effect: func(s *CraftState) { s.TrainedPerfectionActive = TrainedPerfectionActive },
	},
	ActionQuickInnovation: {
		Label: "Quick Innovation", Level: 100,
		CPCost: ptr32(0),
		Effect: func(s *CraftState) {
			s.Buffs.Innovation = 4
			s.QuickInnovationAvailable = false
		},
	},
	ActionImmaculateMend: {
		Label: "Immaculate Mend", Level: 98,
		CPCost: ptr32(112),
		Effect: func(s *CraftState) { s.Durability = s.ctx.DurabilityMax },
	},
}

// Attributes returns the immutable record for a, which must be a valid action index.
func (a Action) Attributes() Attributes {
	return catalog[a]
}

// IsQualityAction reports whether a produces a quality increase, for the purposes of
// the inner_quiet/great_strides reset rules and the "quality-producing action" pruner checks.
func (a Action) IsQualityAction() bool {
	return catalog[a].QualityEfficiency != nil
}

// IsProgressAction reports whether a produces a progress increase.
func (a Action) IsProgressAction() bool {
	return catalog[a].ProgressEfficiency != nil
}

// IsBuff reports whether a has no progress, quality or durability component -- a pure
// buff/utility action. Such actions may still cost CP.
func (a Action) IsBuff() bool {
	attrs := catalog[a]
	return attrs.ProgressEfficiency == nil && attrs.QualityEfficiency == nil && attrs.DurabilityCost == nil
}

// MacroText renders a as a crafting macro line: `/ac "<Label>" <wait.N>`.
// N is 2 for pure buffs, 3 otherwise.
func (a Action) MacroText() string {
	wait := 3
	if a.IsBuff() {
		wait = 2
	}
	return `/ac "` + catalog[a].Label + `" <wait.` + strconv.Itoa(wait) + `>`
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
