package craft

import (
	"math/rand"

	"github.com/pkg/errors"
)

// ActionSet is a fixed-width bitset over the Action index space. NumActions is well under
// 64, so a single uint64 backs the whole set -- no need for a multi-word bitset here.
type ActionSet uint64

// NewActionSet builds a set containing exactly the given actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.Set(a)
	}
	return s
}

// Set returns s with a added.
func (s ActionSet) Set(a Action) ActionSet {
	return s | (1 << uint(a))
}

// Unset returns s with a removed.
func (s ActionSet) Unset(a Action) ActionSet {
	return s &^ (1 << uint(a))
}

// Contains reports whether a is a member of s.
func (s ActionSet) Contains(a Action) bool {
	return s&(1<<uint(a)) != 0
}

// Len returns the number of members (popcount).
func (s ActionSet) Len() int {
	n := 0
	for x := uint64(s); x != 0; x &= x - 1 {
		n++
	}
	return n
}

// IsEmpty reports whether s has no members.
func (s ActionSet) IsEmpty() bool {
	return s == 0
}

// IsSubsetOf reports whether every member of s is also a member of other.
func (s ActionSet) IsSubsetOf(other ActionSet) bool {
	return s&other == s
}

// Iter yields the members of s in increasing index order.
func (s ActionSet) Iter(yield func(Action) bool) {
	for a := Action(0); a < Action(NumActions); a++ {
		if s.Contains(a) {
			if !yield(a) {
				return
			}
		}
	}
}

// ToSlice returns the members of s as a slice, in increasing index order.
func (s ActionSet) ToSlice() []Action {
	out := make([]Action, 0, s.Len())
	s.Iter(func(a Action) bool {
		out = append(out, a)
		return true
	})
	return out
}

// Retain returns the subset of s whose members satisfy keep.
func (s ActionSet) Retain(keep func(Action) bool) ActionSet {
	var out ActionSet
	s.Iter(func(a Action) bool {
		if keep(a) {
			out = out.Set(a)
		}
		return true
	})
	return out
}

// Sample returns a uniformly random member of s, without removing it. Sampling an empty
// set is a programmer error: the caller must check IsEmpty first.
func (s ActionSet) Sample(rng *rand.Rand) Action {
	if s.IsEmpty() {
		panic(errors.Errorf("craft: Sample called on an empty ActionSet"))
	}
	idx := rng.Intn(s.Len())
	ii := 0
	var chosen Action
	s.Iter(func(a Action) bool {
		if ii == idx {
			chosen = a
			return false
		}
		ii++
		return true
	})
	return chosen
}

// Pick returns a uniformly random member of s along with s minus that member.
// Picking from an empty set is a programmer error.
func (s ActionSet) Pick(rng *rand.Rand) (Action, ActionSet) {
	a := s.Sample(rng)
	return a, s.Unset(a)
}
