// Package sets contains a generic Set implementation used as the element domain
// for power set generation.
package sets

// Set represents a finite set (in the sense of Discrete mathematics) of comparable
// elements. Sets are compared by content, never by reference.
type Set[T comparable] struct {
	items map[T]struct{}
}

// New constructs a new set with the provided elements. Duplicate elements are collapsed.
func New[T comparable](elems ...T) Set[T] {
	result := Set[T]{items: make(map[T]struct{}, len(elems))}
	for _, elem := range elems {
		result.items[elem] = struct{}{}
	}
	return result
}

// Add adds the provided element to this set, modifying it if it does not already exist.
func (s Set[T]) Add(elem T) {
	s.items[elem] = struct{}{}
}

// Remove removes the provided element from this set, if present.
func (s Set[T]) Remove(elem T) {
	delete(s.items, elem)
}

// Len returns the number of elements in this set.
func (s Set[T]) Len() int {
	return len(s.items)
}

// Contains returns true if and only if this set contains the provided element.
func (s Set[T]) Contains(elem T) bool {
	_, ok := s.items[elem]
	return ok
}

// ContainsSet returns true if and only if this set contains the other set.
func (s Set[T]) ContainsSet(other Set[T]) bool {
	for b := range other.items {
		if !s.Contains(b) {
			return false
		}
	}
	return true
}

// Equals returns true if and only if this set is equal to other.
func (s Set[T]) Equals(other Set[T]) bool {
	return len(s.items) == len(other.items) && s.ContainsSet(other)
}

// Elems returns the elements of this set as a slice. The order of elements is
// unspecified and may differ between calls on the same set.
func (s Set[T]) Elems() []T {
	result := make([]T, 0, len(s.items))
	for elem := range s.items {
		result = append(result, elem)
	}
	return result
}

// Clone returns a new set with exactly the elements of this set. Mutating the
// clone never affects the original.
func (s Set[T]) Clone() Set[T] {
	result := Set[T]{items: make(map[T]struct{}, len(s.items))}
	for elem := range s.items {
		result.items[elem] = struct{}{}
	}
	return result
}
