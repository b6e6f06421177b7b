package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaInsertAndGet(t *testing.T) {
	a := New[int]()
	root := a.Insert(NoParent, 1)
	child := a.Insert(root, 2)
	grandchild := a.Insert(child, 3)

	assert.Equal(t, 1, a.Get(root))
	assert.Equal(t, 2, a.Get(child))
	assert.Equal(t, 3, a.Get(grandchild))
	assert.Equal(t, 3, a.Len())
}

func TestArenaParentChildren(t *testing.T) {
	a := New[string]()
	root := a.Insert(NoParent, "root")
	c1 := a.Insert(root, "c1")
	c2 := a.Insert(root, "c2")

	assert.Equal(t, NoParent, a.Parent(root))
	assert.Equal(t, root, a.Parent(c1))
	assert.Equal(t, []int{c1, c2}, a.Children(root))
}

func TestArenaSetOverwrites(t *testing.T) {
	a := New[int]()
	root := a.Insert(NoParent, 0)
	a.Set(root, 42)
	assert.Equal(t, 42, a.Get(root))
}

func TestArenaPathToRoot(t *testing.T) {
	a := New[int]()
	root := a.Insert(NoParent, 0)
	c := a.Insert(root, 1)
	gc := a.Insert(c, 2)

	assert.Equal(t, []int{gc, c, root}, a.PathToRoot(gc))
	assert.Equal(t, []int{root}, a.PathToRoot(root))
}

func TestArenaWalkVisitsAllDescendants(t *testing.T) {
	a := New[int]()
	root := a.Insert(NoParent, 0)
	c1 := a.Insert(root, 1)
	a.Insert(root, 2)
	a.Insert(c1, 3)

	var seen []int
	a.Walk(root, func(idx int, value int) {
		seen = append(seen, value)
	})
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, seen)
	assert.Equal(t, 0, seen[0])
}

func TestArenaInsertPanicsOnOutOfRangeParent(t *testing.T) {
	a := New[int]()
	require.Panics(t, func() {
		a.Insert(5, 1)
	})
}
