package multiset

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./multiset -run TestRandomizedMultiplicity -count=1
//   - Fuzz test for this file:
//     go test ./multiset -run '^$' -fuzz FuzzMultiplicity -fuzztime=10s

// expectedFromModel expands a key→count model into a sorted item list.
func expectedFromModel(model map[int]int) []int {
	keys := make([]int, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var items []int
	for _, k := range keys {
		for i := 0; i < model[k]; i++ {
			items = append(items, k)
		}
	}
	return items
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model map[int]int, step int) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("step %d: %v\n%s", step, err, spew.Sdump(tree.Preorder()))
	}
	if tree.Len() != len(model) {
		t.Fatalf("step %d: size mismatch: got=%d want=%d", step, tree.Len(), len(model))
	}
	want := expectedFromModel(model)
	if got := tree.Inorder(); !slices.Equal(got, want) {
		t.Fatalf("step %d: in-order mismatch:\n got=%v\nwant=%v", step, got, want)
	}
}

// applyOp runs one randomized operation on tree and model.
func applyOp(t *testing.T, tree *Tree[int], model map[int]int, key int, insert bool, step int) {
	t.Helper()
	if insert {
		tree.Insert(key)
		model[key]++
		return
	}
	before := tree.Preorder()
	removed := tree.Remove(key)
	if removed != (model[key] > 0) {
		t.Fatalf("step %d: Remove(%d) = %v, model has %d", step, key, removed, model[key])
	}
	switch {
	case !removed:
		if !slices.Equal(before, tree.Preorder()) {
			t.Fatalf("step %d: failed removal of %d changed the tree", step, key)
		}
	case model[key] > 1:
		model[key]--
		if tree.Count(key) != model[key] {
			t.Fatalf("step %d: count of %d is %d, want %d", step, key, tree.Count(key), model[key])
		}
	default:
		delete(model, key)
	}
}

func TestRandomizedMultiplicity(t *testing.T) {
	r := rand.New(rand.NewSource(20201))
	tree := New[int]()
	model := make(map[int]int)
	for step := 0; step < 3000; step++ {
		key := r.Intn(40)
		insert := r.Intn(5) < 3
		applyOp(t, tree, model, key, insert, step)
		assertTreeMatchesModel(t, tree, model, step)
	}
	// drain
	for step, k := range expectedFromModel(model) {
		if !tree.Remove(k) {
			t.Fatalf("drain: could not remove %d", k)
		}
		model[k]--
		if model[k] == 0 {
			delete(model, k)
		}
		assertTreeMatchesModel(t, tree, model, step)
	}
	if !tree.IsEmpty() || tree.Total() != 0 {
		t.Fatalf("expected empty tree after draining")
	}
}

func FuzzMultiplicity(f *testing.F) {
	f.Add([]byte{7, 3, 9, 1, 5, 8, 10, 5, 5, 0x87, 0x85})
	f.Add([]byte{5, 3, 8, 8, 9, 0x85, 0x88})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := New[int]()
		model := make(map[int]int)
		for step, op := range ops {
			key := int(op & 0x7f % 16)
			applyOp(t, tree, model, key, op&0x80 == 0, step)
		}
		assertTreeMatchesModel(t, tree, model, len(ops))
	})
}
