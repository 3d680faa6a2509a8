package bintree

import (
	"errors"
	"math/rand"
	"testing"
)

func TestFlattenScenario(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	var released []int
	tree, _ := New(Config[int]{
		Compare: Compare[int](),
		Release: func(x int) { released = append(released, x) },
	})
	for _, x := range []int{5, 3, 8, 1, 4} {
		tree.Insert(x)
	}
	root := tree.root
	items := tree.Flatten()
	want := []int{1, 3, 4, 5, 8}
	if len(items) != len(want) {
		t.Fatalf("expected %v, got %v", want, items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, items)
		}
	}
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Depth() != 0 {
		t.Errorf("expected tree to be empty after Flatten")
	}
	if root.left != nil || root.right != nil {
		t.Errorf("expected flattened nodes to be unlinked")
	}
	if len(released) != 0 {
		t.Errorf("moved items must not be released, got %v", released)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("flattened tree does not validate: %v", err)
	}
}

func TestFlattenEmpty(t *testing.T) {
	tree := NewOrdered[string]()
	items := tree.Flatten()
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", items)
	}
}

func TestBuildBalancedScenario(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	tree := NewOrdered[int]()
	if err := tree.BuildBalanced([]int{1, 3, 4, 5, 8}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected tree to validate, got %v", err)
	}
	if tree.root.item != 4 {
		t.Errorf("expected root 4, got %d", tree.root.item)
	}
	// left from [1,3]: mid index 0 → 1 with right child 3
	if tree.root.left.item != 1 || tree.root.left.right.item != 3 || tree.root.left.left != nil {
		t.Errorf("unexpected left subtree")
	}
	// right from [5,8]: 5 with right child 8
	if tree.root.right.item != 5 || tree.root.right.right.item != 8 {
		t.Errorf("unexpected right subtree")
	}
	if tree.Depth() != 3 || tree.Height(4) != 3 {
		t.Errorf("expected height 3, got %d", tree.Depth())
	}
	if tree.String() != "1 3 4 5 8" || tree.Len() != 5 {
		t.Errorf("unexpected content %q", tree.String())
	}
}

func ceilLog2(n int) int {
	h := 0
	for (1 << h) < n+1 {
		h++
	}
	return h
}

func TestBuildBalancedHeight(t *testing.T) {
	for n := 0; n <= 130; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = 2 * i
		}
		tree := NewOrdered[int]()
		if err := tree.BuildBalanced(items); err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if tree.Depth() != ceilLog2(n) {
			t.Errorf("n=%d: expected height %d, got %d", n, ceilLog2(n), tree.Depth())
		}
		i := 0
		tree.ForEachItem(func(x int) bool {
			if x != items[i] {
				t.Fatalf("n=%d: in-order mismatch at %d", n, i)
			}
			i++
			return true
		})
		if i != n || tree.Len() != n {
			t.Errorf("n=%d: visited %d items, len=%d", n, i, tree.Len())
		}
	}
}

func TestBuildBalancedRejectsNonEmptyTree(t *testing.T) {
	tree := sampleTree(t, 2)
	err := tree.BuildBalanced([]int{1, 3})
	if !errors.Is(err, ErrTreeNotEmpty) {
		t.Fatalf("expected ErrTreeNotEmpty, got %v", err)
	}
	if tree.String() != "2" {
		t.Errorf("rejected build changed tree: %q", tree.String())
	}
}

func TestBuildBalancedRejectsUnsortedInput(t *testing.T) {
	for _, items := range [][]int{{1, 3, 2}, {1, 1}, {5, 4, 3}} {
		tree := NewOrdered[int]()
		err := tree.BuildBalanced(items)
		if !errors.Is(err, ErrNotAscending) {
			t.Errorf("%v: expected ErrNotAscending, got %v", items, err)
		}
		if !tree.IsEmpty() {
			t.Errorf("%v: rejected build changed tree", items)
		}
	}
}

func TestFlattenBuildRoundTrip(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(17))
	tree := NewOrdered[int]()
	for _, x := range rnd.Perm(200) {
		tree.Insert(x)
	}
	unbalanced := tree.Depth()
	reference := tree.String()
	items := tree.Flatten()
	if len(items) != 200 {
		t.Fatalf("expected 200 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1] >= items[i] {
			t.Fatalf("flattened items not strictly ascending at %d", i)
		}
	}
	if err := tree.BuildBalanced(items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.String() != reference {
		t.Errorf("round trip changed content")
	}
	if tree.Depth() != 8 || tree.Depth() > unbalanced {
		t.Errorf("expected balanced height 8 (unbalanced %d), got %d", unbalanced, tree.Depth())
	}
	balanced := NewOrdered[int]()
	if err := balanced.BuildBalanced(tree.Copy().Flatten()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balanced.Equal(tree) {
		t.Errorf("rebuilding the same items must give an equal tree")
	}
}
