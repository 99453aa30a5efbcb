package multiset

// Order selects a tree traversal.
type Order int

const (
	// InOrder visits left subtree, node, right subtree, i.e. ascending keys.
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
	// LevelOrder visits nodes breadth-first, level by level, left to right.
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "unknown order"
}

// Walk visits every distinct key in the given order, passing the stored item
// and the number of its occurrences to fn.
//
// Iteration stops early if fn returns false. fn must not modify the tree.
func (t *Tree[T]) Walk(order Order, fn func(item T, count int) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	visit := func(n *node[T]) bool {
		return fn(n.key, n.count)
	}
	switch order {
	case InOrder:
		t.walkIn(visit)
	case PreOrder:
		t.walkPre(visit)
	case PostOrder:
		t.walkPost(visit)
	case LevelOrder:
		t.walkLevels(visit)
	}
}

// Items returns all occurrences in the given order. A key with count n appears
// n times in a row.
func (t *Tree[T]) Items(order Order) []T {
	items := make([]T, 0, t.Total())
	t.Walk(order, func(item T, count int) bool {
		for i := 0; i < count; i++ {
			items = append(items, item)
		}
		return true
	})
	return items
}

// Inorder returns all occurrences in ascending order.
func (t *Tree[T]) Inorder() []T { return t.Items(InOrder) }

// Preorder returns all occurrences in pre-order.
func (t *Tree[T]) Preorder() []T { return t.Items(PreOrder) }

// Postorder returns all occurrences in post-order.
func (t *Tree[T]) Postorder() []T { return t.Items(PostOrder) }

// Levelorder returns all occurrences breadth-first.
func (t *Tree[T]) Levelorder() []T { return t.Items(LevelOrder) }

// --- Traversals ------------------------------------------------------------

func (t *Tree[T]) walkIn(visit func(*node[T]) bool) {
	var stack []*node[T]
	n := t.root
	for n != nil || len(stack) > 0 {
		for ; n != nil; n = n.left {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		n = n.right
	}
}

func (t *Tree[T]) walkPre(visit func(*node[T]) bool) {
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

func (t *Tree[T]) walkPost(visit func(*node[T]) bool) {
	var stack []*node[T]
	var last *node[T] // most recently visited node
	n := t.root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		if !visit(top) {
			return
		}
		last = top
		stack = stack[:len(stack)-1]
	}
}

func (t *Tree[T]) walkLevels(visit func(*node[T]) bool) {
	queue := []*node[T]{t.root}
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if !visit(n) {
			return
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}
