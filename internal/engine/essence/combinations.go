package essence

import (
	"iter"
)

// Combinations yields every k-element subset of values in lexicographic
// order of positions. With ascending input the subsets are ascending too.
// Each yielded slice is fresh and may be retained.
func Combinations[T any](values []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(values)
		if k <= 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			combo := make([]T, k)
			for i, j := range idx {
				combo[i] = values[j]
			}
			if !yield(combo) {
				return
			}

			// advance the rightmost index that still has room
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
