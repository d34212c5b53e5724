// Package powerset generates the power set (the set of all subsets, including the
// empty set and the full set) of a finite set of distinct elements. It provides
// several interchangeable generation strategies which all satisfy the same
// contract, differing only in construction technique and cost:
//
//	Recursive: removal-based discovery with content-keyed deduplication; a
//	clarity baseline, asymptotically the most wasteful of the strategies.
//	Bitmask: enumerates subsets by testing the bits of an ascending integer
//	mask; available lazily through Enumerate.
//	Doubling: builds the 2^n result table by extending previously built
//	subsets, one append per subset; the performance-oriented construction.
//
// Every strategy produces exactly 2^n subsets for an input of size n, with no
// duplicates, always including the empty subset and the input itself. Subset
// order within the result is unspecified unless a strategy documents otherwise.
//
// The eager strategies hold all 2^n subsets in memory at once, which bounds
// feasible input sizes to roughly n <= 20; beyond that, allocation failure is
// fatal and not recovered.
package powerset

import "github.com/benagain/powerset/sets"

// A Generator produces the power set of its input as a slice of subsets. All
// generation strategies in this package satisfy Generator and may be used
// interchangeably.
type Generator[T comparable] func(s sets.Set[T]) []sets.Set[T]
