package powerset

import "github.com/benagain/powerset/sets"

// An Enum lazily enumerates the subsets of a set in ascending bitmask order.
// One subset is materialized per call to Next; the sequence is single-pass and
// not restartable. Enums are not safe for concurrent use.
type Enum[T comparable] struct {
	elems []T
	mask  uint64
	last  uint64
	cur   sets.Set[T]
}

// Enumerate returns an Enum over all 2^n subsets of s, where n = s.Len().
//
// Masks run from 1 through 2^n inclusive: mask 0 is never visited, and the
// final mask 2^n carries no bits below n, so the empty subset is emitted
// exactly once, as the last subset of the sequence. For an empty input the
// sequence consists of that single empty subset.
func Enumerate[T comparable](s sets.Set[T]) *Enum[T] {
	elems := s.Elems()
	return &Enum[T]{
		elems: elems,
		mask:  0,
		last:  1 << len(elems),
	}
}

// Next advances the enumeration and reports whether a subset was produced.
// Once Next returns false it always returns false.
func (e *Enum[T]) Next() bool {
	if e.mask >= e.last {
		return false
	}
	e.mask++
	subset := sets.New[T]()
	for i, elem := range e.elems {
		if e.mask&(1<<uint(i)) != 0 {
			subset.Add(elem)
		}
	}
	e.cur = subset
	return true
}

// Subset returns the subset produced by the most recent successful call to Next.
func (e *Enum[T]) Subset() sets.Set[T] {
	return e.cur
}

// Bitmask generates the power set of s by draining Enumerate(s). The result
// holds subsets in ascending mask order with the empty subset last.
func Bitmask[T comparable](s sets.Set[T]) []sets.Set[T] {
	result := make([]sets.Set[T], 0, 1<<s.Len())
	enum := Enumerate(s)
	for enum.Next() {
		result = append(result, enum.Subset())
	}
	return result
}
