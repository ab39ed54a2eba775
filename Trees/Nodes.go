package Trees

import "fmt"

// Node in a linked binary tree. l and r are owned by the node; p is a
// back-reference kept in sync by setLeft and setRight, so a node is a child
// of at most one parent at a time.
// Height is the length of the longest path to a descendant leaf; a leaf has
// Height 0 and an absent child counts as -1.
type Node[T any] struct {
	Value   T
	Height  int
	l, r, p *Node[T]
}

func newNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

func (u *Node[T]) Left() *Node[T] {
	return u.l
}

func (u *Node[T]) Right() *Node[T] {
	return u.r
}

func (u *Node[T]) Parent() *Node[T] {
	return u.p
}

// detach n from the slot of its parent, if any.
func (u *Node[T]) detach() {
	if p := u.p; p != nil {
		// the slot is compared by identity because n might have moved already.
		if p.l == u {
			p.l = nil
		} else if p.r == u {
			p.r = nil
		}
		u.p = nil
	}
}

// setLeft replaces the left child. The old child loses its back-reference
// only if it still points to u; the new child is detached from wherever it was.
func (u *Node[T]) setLeft(n *Node[T]) {
	if u.l == n {
		return
	}
	if u.l != nil && u.l.p == u {
		u.l.p = nil
	}
	if n != nil {
		n.detach()
		n.p = u
	}
	u.l = n
}

// setRight is the mirror of setLeft.
func (u *Node[T]) setRight(n *Node[T]) {
	if u.r == n {
		return
	}
	if u.r != nil && u.r.p == u {
		u.r.p = nil
	}
	if n != nil {
		n.detach()
		n.p = u
	}
	u.r = n
}

func (u *Node[T]) IsRoot() bool {
	return u.p == nil
}

func (u *Node[T]) IsLeft() bool {
	return u.p != nil && u.p.l == u
}

func (u *Node[T]) IsRight() bool {
	return u.p != nil && u.p.r == u
}

// IsLeaf has no children.
func (u *Node[T]) IsLeaf() bool {
	return u.l == nil && u.r == nil
}

// IsNode has both children.
func (u *Node[T]) IsNode() bool {
	return u.l != nil && u.r != nil
}

func (u *Node[T]) HasOneChild() bool {
	return (u.l != nil) != (u.r != nil)
}

// IsFull has either zero or two children.
func (u *Node[T]) IsFull() bool {
	return !u.HasOneChild()
}

// BalanceFactor is height(l)-height(r).
func (u *Node[T]) BalanceFactor() int {
	return height(u.l) - height(u.r)
}

func (u *Node[T]) LeftMost() *Node[T] {
	n := u
	for n.l != nil {
		n = n.l
	}
	return n
}

func (u *Node[T]) RightMost() *Node[T] {
	n := u
	for n.r != nil {
		n = n.r
	}
	return n
}

// Swap exchanges the values only; links stay where they are.
func (u *Node[T]) Swap(other *Node[T]) {
	u.Value, other.Value = other.Value, u.Value
}

func (u *Node[T]) Sibling() *Node[T] {
	if u.p == nil {
		return nil
	}
	if u.p.l == u {
		return u.p.r
	}
	return u.p.l
}

func (u *Node[T]) Uncle() *Node[T] {
	if u.p == nil {
		return nil
	}
	return u.p.Sibling()
}

// Ancestors returns a closure giving the parent, grandparent, ... of u. It
// returns nil once the root has been given.
func (u *Node[T]) Ancestors() func() *Node[T] {
	cur := u
	return func() *Node[T] {
		if cur != nil {
			cur = cur.p
		}
		return cur
	}
}

func (u *Node[T]) String() string {
	return fmt.Sprint(u.Value)
}

func (u *Node[T]) depthString(depth int) string {
	return fmt.Sprintf("%v :D%dH%dB%d", u.Value, depth, u.Height, u.BalanceFactor())
}

// height of n, -1 for nil.
func height[T any](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return n.Height
}

func setHeight[T any](n *Node[T]) {
	n.Height = 1 + max(height(n.l), height(n.r))
}

func balanced[T any](n *Node[T]) bool {
	bf := n.BalanceFactor()
	return bf <= balanceFactor && bf >= -balanceFactor
}
