package Trees

import "testing"

func TestNode_Links(t *testing.T) {
	a, b, c := newNode(1), newNode(2), newNode(3)
	b.setLeft(a)
	b.setRight(c)
	if a.Parent() != b || c.Parent() != b || !a.IsLeft() || !c.IsRight() {
		t.Fatal("children aren't linked")
	}
	if !b.IsRoot() || !b.IsNode() || !b.IsFull() || b.HasOneChild() {
		t.Fatal("wrong predicates for b")
	}
	if a.Sibling() != c || c.Sibling() != a || b.Sibling() != nil {
		t.Fatal("wrong siblings")
	}
	// moving a under c takes it out of b.
	c.setLeft(a)
	if b.Left() != nil || a.Parent() != c || c.Left() != a {
		t.Fatal("a wasn't moved")
	}
	if !b.HasOneChild() || b.IsFull() || c.IsLeaf() {
		t.Fatal("wrong predicates after the move")
	}
	if a.Uncle() != nil {
		t.Fatal("c has no sibling")
	}
	d := newNode(0)
	b.setLeft(d)
	if a.Uncle() != d {
		t.Fatal("d is the uncle of a")
	}
	next := a.Ancestors()
	if next() != c || next() != b || next() != nil || next() != nil {
		t.Fatal("wrong ancestors")
	}
	c.setLeft(nil)
	if a.Parent() != nil || c.Left() != nil {
		t.Fatal("a wasn't released")
	}
	// the old parent can't release a once it has moved.
	c.setLeft(a)
	d.setRight(a)
	c.setLeft(nil)
	if a.Parent() != d || d.Right() != a {
		t.Fatal("a was taken from d")
	}
}

func TestNode_Heights(t *testing.T) {
	root := newNode(2)
	if height[int](nil) != -1 || root.Height != 0 {
		t.Fatal("wrong sentinel")
	}
	root.setLeft(newNode(1))
	root.l.setLeft(newNode(0))
	setHeight(root.l)
	setHeight(root)
	if root.Height != 2 || root.BalanceFactor() != 2 || balanced(root) {
		t.Fatalf("height %d, balance %d", root.Height, root.BalanceFactor())
	}
	if root.LeftMost().Value != 0 || root.RightMost() != root {
		t.Fatal("wrong extremes")
	}
	root.Swap(root.l)
	if root.Value != 1 || root.l.Value != 2 {
		t.Fatal("values weren't swapped")
	}
	if s := root.l.depthString(1); s != "2 :D1H1B1" {
		t.Fatalf("got %q", s)
	}
}
