// Package tree implements the append-only, index-addressed arena that backs a search.
// Nodes are never removed; callers hold integer indices rather than pointers, so the
// arena may grow (and reallocate its backing slice) freely without invalidating any
// index already handed out.
package tree

import "github.com/pkg/errors"

// NoParent marks the root of an Arena; it is never a valid index produced by Insert.
const NoParent = -1

// node bundles a stored value with its tree position. Parent/children are indices into
// the owning Arena, never pointers, so the tree has no back-edges to form a cycle.
type node[T any] struct {
	value    T
	parent   int
	children []int
}

// Arena is an append-only tree of values of type T, addressed by integer index.
type Arena[T any] struct {
	nodes []node[T]
}

// New returns an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert appends value as a new node and, unless parent is NoParent, registers it as a
// child of parent. It panics if parent is out of range, per the programmer-error
// classification for arena misuse.
func (a *Arena[T]) Insert(parent int, value T) int {
	if parent != NoParent && (parent < 0 || parent >= len(a.nodes)) {
		panic(errors.Errorf("tree: parent index %d out of range [0, %d)", parent, len(a.nodes)))
	}
	idx := len(a.nodes)
	a.nodes = append(a.nodes, node[T]{value: value, parent: parent})
	if parent != NoParent {
		a.nodes[parent].children = append(a.nodes[parent].children, idx)
	}
	return idx
}

// Get returns the value stored at idx.
func (a *Arena[T]) Get(idx int) T {
	return a.nodes[idx].value
}

// Set overwrites the value stored at idx, e.g. to update backpropagation stats in place.
func (a *Arena[T]) Set(idx int, value T) {
	a.nodes[idx].value = value
}

// Parent returns the parent index of idx, or NoParent if idx is a root.
func (a *Arena[T]) Parent(idx int) int {
	return a.nodes[idx].parent
}

// Children returns the child indices of idx, in insertion order. The returned slice
// aliases the arena's internal storage and must not be mutated by the caller.
func (a *Arena[T]) Children(idx int) []int {
	return a.nodes[idx].children
}

// Len returns the number of nodes in the arena.
func (a *Arena[T]) Len() int {
	return len(a.nodes)
}

// Walk calls fn with the value at idx, then recursively with every descendant, in
// depth-first pre-order.
func (a *Arena[T]) Walk(idx int, fn func(idx int, value T)) {
	fn(idx, a.nodes[idx].value)
	for _, c := range a.nodes[idx].children {
		a.Walk(c, fn)
	}
}

// PathToRoot returns the indices from idx up to (and including) its root, in that order.
func (a *Arena[T]) PathToRoot(idx int) []int {
	path := []int{idx}
	for a.nodes[idx].parent != NoParent {
		idx = a.nodes[idx].parent
		path = append(path, idx)
	}
	return path
}
