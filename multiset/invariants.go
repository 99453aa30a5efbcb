package multiset

import "fmt"

// Check validates structural tree invariants: keys ascend strictly in-order,
// every node has a positive count, and the size and occurrence counters match
// the nodes in the tree.
//
// Check visits every node and is intended for tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	var prev *node[T]
	nodes, total := 0, 0
	var err error
	t.walkIn(func(n *node[T]) bool {
		if n.count < 1 {
			err = fmt.Errorf("%w: node %v has count %d", ErrInvariant, n.key, n.count)
			return false
		}
		if prev != nil && t.cfg.Compare(prev.key, n.key) >= 0 {
			err = fmt.Errorf("%w: key %v does not sort before %v", ErrInvariant, prev.key, n.key)
			return false
		}
		prev = n
		nodes++
		total += n.count
		return true
	})
	if err != nil {
		return err
	}
	if nodes != t.size {
		return fmt.Errorf("%w: size is %d, but tree has %d nodes", ErrInvariant, t.size, nodes)
	}
	if total != t.total {
		return fmt.Errorf("%w: total is %d, but nodes count %d occurrences", ErrInvariant, t.total, total)
	}
	return nil
}
