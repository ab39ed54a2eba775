package Trees

import (
	"math/bits"
	"slices"

	"github.com/g-m-twostay/go-bst/Queues"
)

// balanceFactor is the largest |BalanceFactor| of a balanced node.
const balanceFactor = 1

// linkedTree holds the state and the comparator-independent operations
// shared by the search trees. The zero value isn't usable: cmp is required.
type linkedTree[T any] struct {
	root    *Node[T]
	count   int
	version uint
	cmp     Comparer[T]
	st      []*Node[T] // reusable descent stack, see BSTree.Add
}

func (u *linkedTree[T]) Root() *Node[T] {
	return u.root
}

func (u *linkedTree[T]) Count() int {
	return u.count
}

// Version is increased by every structural change.
func (u *linkedTree[T]) Version() uint {
	return u.version
}

func (u *linkedTree[T]) Comparer() Comparer[T] {
	return u.cmp
}

// Height of the root, 0 when empty.
func (u *linkedTree[T]) Height() int {
	if u.root == nil {
		return 0
	}
	return u.root.Height
}

func (u *linkedTree[T]) IsFull() bool {
	if u.root == nil {
		return true
	}
	full := true
	u.iterate(u.root, LevelOrder, false, func(n *Node[T]) bool {
		full = n.IsFull()
		return full
	})
	return full
}

func (u *linkedTree[T]) Clear() {
	u.root = nil
	u.count = 0
	u.version++
}

// replace the whole content with the detached tree rooted at root.
func (u *linkedTree[T]) replace(root *Node[T], count int) {
	u.root = root
	u.count = count
	u.version++
}

// attach n in the slot of parent p, the left one if left. p==nil makes n the root.
func (u *linkedTree[T]) attach(p, n *Node[T], left bool) {
	if p == nil {
		u.root = n
		if n != nil {
			n.detach()
		}
	} else if left {
		p.setLeft(n)
	} else {
		p.setRight(n)
	}
}

// rotateLeft x and splice the new subtree root in x's former slot.
// Heights of the two rotated nodes are refreshed, ancestors' aren't.
//
//	  x                 y
//	 / \               / \
//	T1  y     ->      x   T3
//	   / \           / \
//	  T2  T3        T1  T2
func (u *linkedTree[T]) rotateLeft(x *Node[T]) *Node[T] {
	y := x.r
	if y == nil {
		return x
	}
	p, left := x.p, x.IsLeft()
	x.setRight(y.l)
	y.setLeft(x)
	u.attach(p, y, left)
	setHeight(x)
	setHeight(y)
	return y
}

// rotateRight is the mirror of rotateLeft.
func (u *linkedTree[T]) rotateRight(y *Node[T]) *Node[T] {
	x := y.l
	if x == nil {
		return y
	}
	p, left := y.p, y.IsLeft()
	y.setLeft(x.r)
	x.setRight(y)
	u.attach(p, x, left)
	setHeight(y)
	setHeight(x)
	return x
}

// Find the node holding v.
// Time: O(D); Space: O(1)
func (u *linkedTree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.Value); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

func (u *linkedTree[T]) Contains(v T) bool {
	return u.Find(v) != nil
}

// FindByTraversal searches every node in the given order, it doesn't rely on
// the search tree ordering.
// Time: O(n)
func (u *linkedTree[T]) FindByTraversal(v T, method Traversal) (found *Node[T]) {
	u.iterate(u.root, method, false, func(n *Node[T]) bool {
		if u.cmp(v, n.Value) == 0 {
			found = n
			return false
		}
		return true
	})
	return
}

// FindAtLevel searches only the nodes at the given depth; the root is at 0.
func (u *linkedTree[T]) FindAtLevel(v T, level int) (*Node[T], error) {
	nodes, err := u.NodesAtLevel(level)
	for _, n := range nodes {
		if u.cmp(v, n.Value) == 0 {
			return n, nil
		}
	}
	return nil, err
}

// Exists returns whether some value satisfies match.
func (u *linkedTree[T]) Exists(match func(T) bool) (found bool) {
	u.iterate(u.root, PreOrder, false, func(n *Node[T]) bool {
		found = match(n.Value)
		return !found
	})
	return
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *linkedTree[T]) Predecessor(v T) (p *Node[T]) {
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.Value) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *linkedTree[T]) Successor(v T) (p *Node[T]) {
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.Value) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *linkedTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.LeftMost().Value, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *linkedTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.RightMost().Value, true
}

// Validate [Tree.Validate]
func (u *linkedTree[T]) Validate() bool {
	return u.ValidateFrom(u.root)
}

// ValidateFrom checks the subtree rooting at n only.
func (u *linkedTree[T]) ValidateFrom(n *Node[T]) bool {
	if n == nil || n.IsLeaf() {
		return true
	}
	var prev T
	valid, started := true, false
	u.iterate(n, InOrder, false, func(c *Node[T]) bool {
		if started {
			valid = u.cmp(prev, c.Value) < 0
		}
		prev, started = c.Value, true
		return valid
	})
	return valid
}

// IsBalanced [Tree.IsBalanced]
func (u *linkedTree[T]) IsBalanced() bool {
	if u.root == nil || u.root.IsLeaf() {
		return true
	}
	ok := true
	u.iterate(u.root, LevelOrder, false, func(n *Node[T]) bool {
		ok = (n.IsLeaf() || balanced(n)) &&
			(n.l == nil || n.l.IsLeaf() || balanced(n.l)) &&
			(n.r == nil || n.r.IsLeaf() || balanced(n.r))
		return ok
	})
	return ok
}

// Equal returns whether other has the same shape with equal values at the
// same positions, according to the comparator of u.
func (u *linkedTree[T]) Equal(other Tree[T]) bool {
	if u.count != other.Count() {
		return false
	}
	a, b := newWalker(u.root, LevelOrder, false), newWalker(other.Root(), LevelOrder, false)
	for {
		x, y := a.next(), b.next()
		if x == nil || y == nil {
			return x == y
		}
		if u.cmp(x.Value, y.Value) != 0 || (x.l == nil) != (y.l == nil) || (x.r == nil) != (y.r == nil) {
			return false
		}
	}
}

// NodesAtLevel returns the nodes at depth level from left to right, nil if
// the tree isn't that deep.
func (u *linkedTree[T]) NodesAtLevel(level int) ([]*Node[T], error) {
	if level < 0 {
		return nil, &ArgumentError{"level", "must not be negative"}
	}
	var found []*Node[T]
	err := u.IterateLevels(false, func(l int, nodes []*Node[T]) bool {
		if l < level {
			return true
		}
		found = slices.Clone(nodes)
		return false
	})
	return found, err
}

// ToSlice returns the values in the given order.
func (u *linkedTree[T]) ToSlice(method Traversal, rightToLeft bool) []T {
	s := make([]T, 0, u.count)
	u.iterate(u.root, method, rightToLeft, func(n *Node[T]) bool {
		s = append(s, n.Value)
		return true
	})
	return s
}

// stackHint is a capacity for descent stacks; 2*log2(n+1) covers red-black
// heights, AVL and balanced loads stay under it.
func (u *linkedTree[T]) stackHint() int {
	return 2 * bits.Len(uint(u.count)+1)
}

func (u *linkedTree[T]) makeQueue() Queues.ArrayQueue[*Node[T]] {
	return Queues.MakeArrayQueue[*Node[T]](uint(u.stackHint()))
}

// initHeights sets Height of every node under root bottom-up.
func initHeights[T any](root *Node[T]) {
	for w := newWalker(root, PostOrder, false); ; {
		n := w.next()
		if n == nil {
			return
		}
		setHeight(n)
	}
}
