package craft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioContext() *CraftContext {
	player := Player{JobLevel: 90, Craftsmanship: 3304, Control: 3374, CP: 575}
	recipe := Recipe{
		RecipeLevel: 560, JobLevel: 90, Stars: 0,
		Progress: 3500, Quality: 7200, Durability: 80,
		ProgressDiv: 130, ProgressMod: 90,
		QualityDiv: 115, QualityMod: 80,
		IsExpert: false,
	}
	opts := CraftOptions{
		MaxSteps:         30,
		QualityTarget:    7200,
		HasQualityTarget: true,
		UseManipulation:  true,
		UseDelineation:   true,
	}
	return NewCraftContext(player, recipe, opts)
}

func execSequence(t *testing.T, ctx *CraftContext, actions ...Action) *CraftState {
	t.Helper()
	s := ctx.NewState()
	for _, a := range actions {
		require.Truef(t, s.AvailableMoves.Contains(a), "action %s not available at step %d", a, s.Step)
		s = s.Execute(a, false)
	}
	return s
}

func TestScenario1BasicTouchBasicSynthesisMastersMend(t *testing.T) {
	ctx := scenarioContext()
	final := execSequence(t, ctx, ActionBasicTouch, ActionBasicSynthesis, ActionMastersMend)

	assert.Equal(t, uint32(276), final.Progress)
	assert.Equal(t, uint32(262), final.Quality)
	assert.Equal(t, int32(80), final.Durability)
	assert.Equal(t, uint32(469), final.CP)
}

func TestScenario2ComboChainPricing(t *testing.T) {
	ctx := scenarioContext()
	final := execSequence(t, ctx,
		ActionInnovation, ActionBasicTouch, ActionStandardTouch,
		ActionAdvancedTouch, ActionStandardTouch, ActionAdvancedTouch)

	assert.Equal(t, uint32(0), final.Progress)
	assert.Equal(t, uint32(2828), final.Quality)
	assert.Equal(t, int32(30), final.Durability)
	assert.Equal(t, uint32(425), final.CP)
}

func TestScenario3ReflectManipulationPreparatoryWasteNotII(t *testing.T) {
	ctx := scenarioContext()
	final := execSequence(t, ctx,
		ActionReflect, ActionManipulation, ActionPreparatoryTouch, ActionWasteNotII)

	assert.Equal(t, uint32(0), final.Progress)
	assert.Equal(t, uint32(890), final.Quality)
	assert.Equal(t, int32(60), final.Durability)
	assert.Equal(t, uint32(335), final.CP)
}

func TestScenario4MuscleMemoryGreatStridesPrudentDelicate(t *testing.T) {
	ctx := scenarioContext()
	final := execSequence(t, ctx,
		ActionMuscleMemory, ActionGreatStrides, ActionPrudentTouch, ActionDelicateSynthesis)

	assert.Equal(t, uint32(1150), final.Progress)
	assert.Equal(t, uint32(812), final.Quality)
	assert.Equal(t, int32(55), final.Durability)
	assert.Equal(t, uint32(480), final.CP)
}

func TestScenario5FullComboIntoByregotsBlessing(t *testing.T) {
	ctx := scenarioContext()
	final := execSequence(t, ctx,
		ActionMuscleMemory, ActionManipulation, ActionMastersMend, ActionWasteNotII,
		ActionInnovation, ActionDelicateSynthesis, ActionBasicTouch, ActionGreatStrides,
		ActionByregotsBlessing)

	assert.Equal(t, uint32(1150), final.Progress)
	assert.Equal(t, uint32(1925), final.Quality)
	assert.Equal(t, int32(80), final.Durability)
	assert.Equal(t, uint32(163), final.CP)
}

func TestScenario6InnerQuietReachesTenAndUnlocksTrainedFinesse(t *testing.T) {
	ctx := scenarioContext()
	final := execSequence(t, ctx,
		ActionReflect, ActionWasteNot, ActionPreparatoryTouch, ActionPreparatoryTouch,
		ActionBasicTouch, ActionStandardTouch, ActionPrudentTouch, ActionPreparatoryTouch)

	assert.Equal(t, uint8(10), final.Buffs.InnerQuiet)
	assert.True(t, final.AvailableMoves.Contains(ActionTrainedFinesse))
}

func TestComboPricingBasicStandardAdvanced(t *testing.T) {
	ctx := scenarioContext()
	s := ctx.NewState()

	s = s.Execute(ActionBasicTouch, false)
	cpAfterBasic := s.CP

	s = s.Execute(ActionStandardTouch, false)
	assert.Equal(t, uint32(comboCPCost), cpAfterBasic-s.CP, "StandardTouch after BasicTouch should cost 18 CP")
	cpAfterStandard := s.CP

	s = s.Execute(ActionAdvancedTouch, false)
	assert.Equal(t, uint32(comboCPCost), cpAfterStandard-s.CP, "AdvancedTouch after StandardTouch should cost 18 CP")
}

func TestTrainedEyeForcedWhenAvailableOnStepOne(t *testing.T) {
	ctx := scenarioContext()
	s := ctx.NewState()
	strictMoves := s.computeAvailableMoves(true)

	require.True(t, strictMoves.Contains(ActionTrainedEye), "TrainedEye should be legal on step 0")
	assert.Equal(t, NewActionSet(ActionTrainedEye), strictMoves, "strict pruning must force TrainedEye alone when available")
}

func TestStrictFirstMovePlaythroughDoesNotPanic(t *testing.T) {
	ctx := scenarioContext()
	require.NotPanics(t, func() {
		s := ctx.NewState()
		for i := 0; i < 50 && !s.IsTerminal(); i++ {
			moves := s.computeAvailableMoves(true)
			if moves.IsEmpty() {
				break
			}
			a := moves.ToSlice()[0]
			s = s.Execute(a, true)
		}
	})
}

func TestInvariantsHoldAlongAFirstMoveStrictPlaythrough(t *testing.T) {
	ctx := scenarioContext()
	s := ctx.NewState()
	seen := 0
	for !s.IsTerminal() && seen < int(ctx.StepMax)+5 {
		moves := s.computeAvailableMoves(true)
		if moves.IsEmpty() {
			break
		}
		assert.True(t, moves.IsSubsetOf(ctx.ActionPool))
		assert.Less(t, s.Progress, ctx.ProgressTarget+1)
		assert.Greater(t, s.Durability, int32(0))
		assert.LessOrEqual(t, s.Durability, ctx.DurabilityMax)
		assert.LessOrEqual(t, s.CP, ctx.CPMax)
		assert.Less(t, s.Step, ctx.StepMax)
		assert.LessOrEqual(t, s.Buffs.InnerQuiet, uint8(10))

		a := moves.ToSlice()[0]
		s = s.Execute(a, true)
		seen++
	}
	assert.True(t, s.IsTerminal())
	assert.True(t, s.AvailableMoves.IsEmpty())
}

func TestExecuteIsPure(t *testing.T) {
	ctx := scenarioContext()
	s := ctx.NewState()

	a := ActionBasicTouch
	r1 := s.Execute(a, false)
	r2 := s.Execute(a, false)

	assert.Equal(t, r1.Progress, r2.Progress)
	assert.Equal(t, r1.Quality, r2.Quality)
	assert.Equal(t, r1.Durability, r2.Durability)
	assert.Equal(t, r1.CP, r2.CP)
	assert.Equal(t, r1.Buffs, r2.Buffs)
	assert.Equal(t, r1.PreviousComboAction, r2.PreviousComboAction)
	assert.Equal(t, r1.AvailableMoves, r2.AvailableMoves)

	assert.Equal(t, uint32(0), s.Progress, "Execute must not mutate the receiver")
}

func TestCheckResultIsIdempotent(t *testing.T) {
	ctx := scenarioContext()
	s := execSequence(t, ctx, ActionMuscleMemory, ActionGreatStrides, ActionPrudentTouch, ActionDelicateSynthesis)

	r1 := s.CheckResult()
	r2 := s.CheckResult()
	assert.Equal(t, r1, r2)
}

func TestStrictMovesAreSubsetOfNonStrictMoves(t *testing.T) {
	ctx := scenarioContext()
	s := ctx.NewState()

	nonStrict := s.computeAvailableMoves(false)
	strict := s.computeAvailableMoves(true)

	assert.True(t, strict.IsSubsetOf(nonStrict))
}

func TestTerminalStateHasEmptyAvailableMoves(t *testing.T) {
	ctx := scenarioContext()
	s := ctx.NewState()
	for !s.IsTerminal() {
		moves := s.computeAvailableMoves(true)
		if moves.IsEmpty() {
			break
		}
		s = s.Execute(moves.ToSlice()[0], true)
	}
	assert.Empty(t, s.computeAvailableMoves(true).ToSlice())
}

func TestScoreIsMonotoneInQualityOnceProgressMet(t *testing.T) {
	ctx := scenarioContext()
	s := ctx.NewState()
	s.Progress = ctx.ProgressTarget

	s.Quality = ctx.QualityTarget / 4
	lower := s.Score()
	s.Quality = ctx.QualityTarget / 2
	higher := s.Score()

	assert.Greater(t, higher, lower)
}

func TestMacroTextQuotesLabelAndPicksWaitByBuffStatus(t *testing.T) {
	assert.Equal(t, `/ac "Basic Synthesis" <wait.3>`, ActionBasicSynthesis.MacroText())
	assert.Equal(t, `/ac "Innovation" <wait.2>`, ActionInnovation.MacroText())
}
