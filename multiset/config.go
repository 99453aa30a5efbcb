package multiset

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Config configures the ordering of a tree.
type Config[T any] struct {
	// Compare returns a negative number if a sorts before b, a positive
	// number if a sorts after b, and 0 if a and b are to be counted as the
	// same key. Compare has to be a total order and must not change during
	// the lifetime of a tree.
	Compare func(a, b T) int
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	return nil
}

// Natural returns a comparison function which uses operator < of T.
//
// Floating point NaNs do not have a total order and will never be found
// again after insertion.
func Natural[T constraints.Ordered]() func(a, b T) int {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// ByKey returns a comparison function which orders items by a key extracted
// from them. The key function is called for both operands on every
// comparison.
func ByKey[T any, K constraints.Ordered](key func(T) K) func(a, b T) int {
	cmp := Natural[K]()
	return func(a, b T) int {
		return cmp(key(a), key(b))
	}
}
