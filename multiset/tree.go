package multiset

import (
	"golang.org/x/exp/constraints"
)

// node is a tree node for a distinct key. count is at least 1 for every node
// linked into a tree.
type node[T any] struct {
	key         T
	left, right *node[T]
	count       int
}

// Tree is an ordered multiset of items of type T.
//
// The zero value is not usable; create trees with New, NewByKey or
// NewWithConfig. Like a nil map, a nil *Tree reads as an empty tree, but
// inserting into it panics.
type Tree[T any] struct {
	cfg   Config[T]
	root  *node[T]
	size  int // number of distinct keys
	total int // number of occurrences
}

// New creates an empty tree for a type with a natural order.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{cfg: Config[T]{Compare: Natural[T]()}}
}

// NewByKey creates an empty tree which orders items by a projection to an
// ordered key type.
func NewByKey[T any, K constraints.Ordered](key func(T) K) *Tree[T] {
	return &Tree[T]{cfg: Config[T]{Compare: ByKey(key)}}
}

// NewWithConfig creates an empty tree with validated configuration.
func NewWithConfig[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg}, nil
}

// Len returns the number of distinct keys in the tree. Duplicates do not
// count; see Total.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Total returns the number of occurrences of all keys in the tree.
func (t *Tree[T]) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Insert adds an occurrence of item. If the tree already contains a key equal
// to item, its count is incremented and item itself is not stored.
func (t *Tree[T]) Insert(item T) {
	if t == nil {
		panic("multiset: Insert into nil tree")
	}
	link := t.locate(item)
	if n := *link; n != nil {
		n.count++
	} else {
		*link = &node[T]{key: item, count: 1}
		t.size++
	}
	t.total++
}

// Search reports whether the tree contains a key equal to item.
func (t *Tree[T]) Search(item T) bool {
	if t.IsEmpty() {
		return false
	}
	return *t.locate(item) != nil
}

// Count returns the number of occurrences of item's key, or 0.
func (t *Tree[T]) Count(item T) int {
	if t.IsEmpty() {
		return 0
	}
	if n := *t.locate(item); n != nil {
		return n.count
	}
	return 0
}

// Remove deletes one occurrence of item's key. It returns false if the key is
// not contained, leaving the tree unchanged.
func (t *Tree[T]) Remove(item T) bool {
	if t.IsEmpty() {
		return false
	}
	link := t.locate(item)
	if *link == nil {
		return false
	}
	t.removeAt(link)
	t.total--
	return true
}

// locate descends to the link which points to the node for item's key. If
// the key is not contained, the link points to nil and marks the position
// where a node for item would have to be inserted.
func (t *Tree[T]) locate(item T) **node[T] {
	link := &t.root
	for n := *link; n != nil; n = *link {
		c := t.cfg.Compare(item, n.key)
		switch {
		case c < 0:
			link = &n.left
		case c > 0:
			link = &n.right
		default:
			return link
		}
	}
	return link
}

// removeAt removes one occurrence of the key of the node at *link.
//
// A node with two children takes over key and count of its in-order
// successor. The successor's count is then forced to 1, so removing it
// unlinks it. The order of these steps is essential: the occurrences of
// the successor key move to the retained node and are counted exactly once.
func (t *Tree[T]) removeAt(link **node[T]) {
	n := *link
	if n.count > 1 {
		n.count--
		return
	}
	if n.left == nil || n.right == nil {
		t.unlink(link)
		return
	}
	succLink := &n.right
	for (*succLink).left != nil {
		succLink = &(*succLink).left
	}
	succ := *succLink
	tracer().Debugf("multiset: replacing removed node by successor (count=%d)", succ.count)
	n.key = succ.key
	n.count = succ.count
	succ.count = 1
	t.removeAt(succLink) // successor has no left child
}

// unlink splices out the node at *link, which has at most one child.
func (t *Tree[T]) unlink(link **node[T]) {
	n := *link
	if n.left != nil {
		*link = n.left
	} else {
		*link = n.right
	}
	n.left, n.right = nil, nil
	t.size--
}

// Height returns the number of levels of the tree, where 0 means empty.
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	height := 0
	level := []*node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}
