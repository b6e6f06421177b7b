package exhaustive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alostsock/craftsim/internal/craft"
	"github.com/alostsock/craftsim/internal/parameters"
)

func smallContext() *craft.CraftContext {
	player := craft.Player{JobLevel: 90, Craftsmanship: 3304, Control: 3374, CP: 200}
	recipe := craft.Recipe{
		RecipeLevel: 560, JobLevel: 90,
		Progress: 300, Quality: 0, Durability: 80,
		ProgressDiv: 130, ProgressMod: 90,
		QualityDiv: 115, QualityMod: 80,
	}
	opts := craft.CraftOptions{MaxSteps: 4}
	return craft.NewCraftContext(player, recipe, opts)
}

func TestRunFindsAFinishedTrajectoryWithinDepth(t *testing.T) {
	ctx := smallContext()
	root := ctx.NewState().StrictCopy()

	s := New()
	actions, final := s.Run(root)

	require.NotEmpty(t, actions)
	assert.True(t, final.Progress >= ctx.ProgressTarget)
}

func TestNewFromParamsGateIsOptIn(t *testing.T) {
	params := parameters.Params(parameters.NewFromConfigString(""))
	s, err := NewFromParams(params)
	require.NoError(t, err)
	assert.Nil(t, s)

	params = parameters.Params(parameters.NewFromConfigString("exhaustive=true,max_depth=10"))
	s, err = NewFromParams(params)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 10, s.maxDepth)
}
