/*
Package multiset provides an ordered multiset, implemented as a plain binary
search tree which counts duplicate keys.

Every distinct key occupies a single tree node, carrying the number of times
it has been inserted. Removing a key decrements its count; the node is
unlinked from the tree only when the last occurrence is removed. The tree is
not re-balanced, therefore inserting keys in sorted order will degenerate it
into a list. All operations are iterative, so tree height is not limited by
the call stack.

Ordering is defined by a comparison function, handed to the tree at
construction time. For types with a natural order, New uses operator <.
NewByKey orders items by a projection, e.g. a struct field:

	byAge := multiset.NewByKey(func(p Person) int { return p.Age })

Items with equal keys are counted at the same node; the node keeps the item
inserted first.

Trees are not safe for concurrent use. Clients needing concurrent access have
to serialize calls themselves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package multiset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'notation'
func tracer() tracing.Trace {
	return tracing.Select("notation")
}
