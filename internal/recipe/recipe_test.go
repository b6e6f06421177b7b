package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alostsock/craftsim/internal/craft"
)

func TestTableLooksUpByJobLevel(t *testing.T) {
	r90 := craft.Recipe{RecipeLevel: 560, JobLevel: 90, Progress: 3500, Quality: 7200, Durability: 80}
	table := NewTable(
		map[uint32][]craft.Recipe{90: {r90}},
		map[uint32]uint32{90: 560},
	)

	assert.Equal(t, []craft.Recipe{r90}, table.RecipesForJobLevel(90))
	assert.Nil(t, table.RecipesForJobLevel(1))

	base, ok := table.BaseLevel(90)
	assert.True(t, ok)
	assert.Equal(t, uint32(560), base)

	_, ok = table.BaseLevel(1)
	assert.False(t, ok)
}

func TestTableCopiesInputDefensively(t *testing.T) {
	recipes := []craft.Recipe{{RecipeLevel: 1, JobLevel: 1}}
	table := NewTable(map[uint32][]craft.Recipe{1: recipes}, nil)

	recipes[0].RecipeLevel = 999
	assert.Equal(t, uint32(1), table.RecipesForJobLevel(1)[0].RecipeLevel)
}

func TestJobLevelsAreSortedAscending(t *testing.T) {
	table := NewTable(
		map[uint32][]craft.Recipe{90: nil, 1: nil, 50: nil},
		nil,
	)

	assert.Equal(t, []uint32{1, 50, 90}, table.JobLevels())
}
