package multiset

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("multiset: invalid configuration")
	// ErrInvariant signals a violation of the tree's structural invariants.
	ErrInvariant = errors.New("multiset: invariant violated")
)
