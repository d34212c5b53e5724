package powerset

import "github.com/benagain/powerset/sets"

// Doubling generates the power set of s by index doubling: the result table
// starts with the empty subset in slot 0, and processing the i-th element
// copies each of the first 2^i subsets with that element added, filling slots
// [2^i, 2^(i+1)). After all n elements, slot k holds the subset whose members
// are the elements at the set bit positions of k.
//
// Each subset is built by a single append to a previously built subset, so
// total work is proportional to the sum of all subset sizes, n*2^(n-1). This
// is the fastest of the strategies; it is also the most memory-hungry, holding
// the full table for the duration of the call.
func Doubling[T comparable](s sets.Set[T]) []sets.Set[T] {
	elems := s.Elems()
	table := make([]sets.Set[T], 1<<len(elems))
	table[0] = sets.New[T]()
	for i, elem := range elems {
		count := 1 << uint(i)
		for j := 0; j < count; j++ {
			next := table[j].Clone()
			next.Add(elem)
			table[count+j] = next
		}
	}
	return table
}
