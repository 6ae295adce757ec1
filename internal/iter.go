package internal

import (
	"iter"
	"slices"
)

// Permutations iterates over every ordering of values, in lexicographic
// order of their indexes. Each yielded slice is a fresh copy.
func Permutations[T any](values []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		used := make([]bool, len(values))
		perm := make([]T, 0, len(values))

		var walk func() bool
		walk = func() bool {
			if len(perm) == len(values) {
				return yield(slices.Clone(perm))
			}
			for n, value := range values {
				if used[n] {
					continue
				}
				used[n] = true
				perm = append(perm, value)
				ok := walk()
				perm = perm[:len(perm)-1]
				used[n] = false
				if !ok {
					return false // Stop if the consumer stops
				}
			}
			return true
		}

		walk()
	}
}

// Range returns the inclusive sequence lo..hi.
func Range(lo, hi int64) (values []int64) {
	for n := lo; n <= hi; n++ {
		values = append(values, n)
	}
	return
}
