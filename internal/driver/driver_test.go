package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alostsock/craftsim/internal/craft"
	"github.com/alostsock/craftsim/internal/search"
)

func testContext() *craft.CraftContext {
	player := craft.Player{JobLevel: 90, Craftsmanship: 3304, Control: 3374, CP: 575}
	recipe := craft.Recipe{
		RecipeLevel: 560, JobLevel: 90, Stars: 0,
		Progress: 3500, Quality: 7200, Durability: 80,
		ProgressDiv: 130, ProgressMod: 90,
		QualityDiv: 115, QualityMod: 80,
		IsExpert: false,
	}
	opts := craft.CraftOptions{
		MaxSteps:         30,
		QualityTarget:    7200,
		HasQualityTarget: true,
		UseManipulation:  true,
		UseDelineation:   true,
	}
	return craft.NewCraftContext(player, recipe, opts)
}

func TestSimulateMatchesScenarioOne(t *testing.T) {
	ctx := testContext()
	result := Simulate(ctx, []craft.Action{
		craft.ActionBasicTouch, craft.ActionBasicSynthesis, craft.ActionMastersMend,
	})

	assert.Equal(t, uint32(276), result.Final.Progress)
	assert.Equal(t, uint32(262), result.Final.Quality)
	assert.Equal(t, int32(80), result.Final.Durability)
	assert.Equal(t, uint32(469), result.Final.CP)
}

func TestSimulateReportsInvalidActionFailure(t *testing.T) {
	ctx := testContext()
	result := Simulate(ctx, []craft.Action{craft.ActionTrainedFinesse})

	assert.Equal(t, craft.ResultInvalidActionFailure, result.Result.Kind)
}

func TestSearchOneshotDoesNotPanicAndBoundsSolutionLength(t *testing.T) {
	ctx := testContext()
	opts := search.DefaultOptions()
	opts.Iterations = 100
	opts.RNGSeed = 3

	var out SearchOneshotResult
	var err error
	require.NotPanics(t, func() {
		out, err = SearchOneshot(ctx, nil, opts, 1)
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out.Actions), int(ctx.StepMax))
}

func TestSearchOneshotParallelTakesHighestMaxScore(t *testing.T) {
	ctx := testContext()
	opts := search.DefaultOptions()
	opts.Iterations = 80
	opts.RNGSeed = 11

	out, err := SearchOneshot(ctx, nil, opts, 3)
	require.NoError(t, err)
	assert.NotNil(t, out.Final)
}

func TestSearchStepwiseInvokesCallbackAndTerminates(t *testing.T) {
	ctx := testContext()
	opts := search.DefaultOptions()
	opts.Iterations = 40
	opts.RNGSeed = 5

	var callbackCount int
	out, err := SearchStepwise(ctx, nil, opts, func(a craft.Action, s *craft.CraftState) {
		callbackCount++
	})
	require.NoError(t, err)
	assert.Greater(t, callbackCount, 0)
	assert.Equal(t, callbackCount, len(out.Actions))
	assert.True(t, out.Final.IsTerminal())
}

func TestSearchOneshotRejectsIllegalHistory(t *testing.T) {
	ctx := testContext()
	opts := search.DefaultOptions()
	_, err := SearchOneshot(ctx, []craft.Action{craft.ActionTrainedFinesse}, opts, 1)
	require.Error(t, err)
}
