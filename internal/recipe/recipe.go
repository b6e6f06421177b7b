// Package recipe holds the read-only recipe lookup tables consumed when building a
// craft.CraftContext. The concrete tables are produced out-of-band (see spec §6) by
// joining RecipeLevelTable/ClassJobLevel-style game data; this package only exposes the
// resulting structured values, it never parses CSV itself.
package recipe

import (
	"slices"

	"github.com/alostsock/craftsim/internal/craft"
	"github.com/alostsock/craftsim/internal/generics"
)

// Table is a read-only recipe catalog: the recipes available at each job level, and the
// base recipe level a crafter of that job level would see without any recipe-level
// modifiers applied.
type Table struct {
	byJobLevel map[uint32][]craft.Recipe
	baseLevel  map[uint32]uint32
}

// NewTable builds a Table from the resolved per-job-level recipe lists and base levels.
// Both maps are copied defensively so the Table is safe to share by reference, the same
// way a CraftContext is.
func NewTable(byJobLevel map[uint32][]craft.Recipe, baseLevel map[uint32]uint32) *Table {
	t := &Table{
		byJobLevel: make(map[uint32][]craft.Recipe, len(byJobLevel)),
		baseLevel:  make(map[uint32]uint32, len(baseLevel)),
	}
	for level, recipes := range byJobLevel {
		cp := make([]craft.Recipe, len(recipes))
		copy(cp, recipes)
		t.byJobLevel[level] = cp
	}
	for level, base := range baseLevel {
		t.baseLevel[level] = base
	}
	return t
}

// RecipesForJobLevel returns the ordered list of recipes available to a crafter at
// jobLevel, or nil if none are registered at that level.
func (t *Table) RecipesForJobLevel(jobLevel uint32) []craft.Recipe {
	return t.byJobLevel[jobLevel]
}

// BaseLevel returns the base recipe level corresponding to jobLevel, and whether one is
// registered.
func (t *Table) BaseLevel(jobLevel uint32) (uint32, bool) {
	level, ok := t.baseLevel[jobLevel]
	return level, ok
}

// JobLevels returns every job level with at least one registered recipe, sorted
// ascending.
func (t *Table) JobLevels() []uint32 {
	return slices.Collect(generics.SortedKeys(t.byJobLevel))
}
