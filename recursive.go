package powerset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/benagain/powerset/sets"
)

// Recursive generates the power set of s by removal-based discovery: it
// records the working set, then recurses once per element on the working set
// with that element removed, until the working set is empty. Subsets reached
// through different removal orders are collapsed by content, keyed on a
// canonical rendering of their elements. The empty subset is never reached by
// removal once deduplication prunes revisits, so it is added explicitly.
//
// Recursive revisits subsets through many removal paths before deduplication
// collapses them, making it far slower than Bitmask or Doubling. It exists as
// a reference baseline.
func Recursive[T comparable](s sets.Set[T]) []sets.Set[T] {
	acc := immutable.NewMap[string, sets.Set[T]](nil)
	acc = discover(s.Clone(), acc)

	empty := sets.New[T]()
	acc = acc.Set(canonical(empty), empty)

	result := make([]sets.Set[T], 0, acc.Len())
	itr := acc.Iterator()
	for !itr.Done() {
		_, subset, _ := itr.Next()
		result = append(result, subset)
	}
	return result
}

func discover[T comparable](s sets.Set[T], acc *immutable.Map[string, sets.Set[T]]) *immutable.Map[string, sets.Set[T]] {
	if s.Len() == 0 {
		return acc
	}
	key := canonical(s)
	if _, ok := acc.Get(key); ok {
		return acc
	}
	acc = acc.Set(key, s)
	for _, elem := range s.Elems() {
		reduced := s.Clone()
		reduced.Remove(elem)
		acc = discover(reduced, acc)
	}
	return acc
}

// canonical returns a content-based key for a subset: each element rendered
// with %#v, sorted, joined on an unprintable separator. Distinct subsets of
// the same element type never share a key, and element order never matters.
func canonical[T comparable](s sets.Set[T]) string {
	parts := make([]string, 0, s.Len())
	for _, elem := range s.Elems() {
		parts = append(parts, fmt.Sprintf("%#v", elem))
	}
	sort.Strings(parts)
	return strings.Join(parts, "\x1f")
}
