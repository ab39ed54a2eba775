package Trees

import (
	"math/bits"
	"slices"

	"github.com/g-m-twostay/go-bst/Queues"
	"github.com/golang-collections/collections/stack"
)

// The builders construct a detached tree and never touch u's nodes, so a
// failing loader leaves the tree as it was. Heights aren't set.

// bound is an optional limit of a subtree range in buildLevelOrder.
type bound[T any] struct {
	v   T
	set bool
}

// buildLevelOrder reads values as the level-order traversal of a search
// tree. Each queued node owns the range [lo, hi) its children must fall in;
// equal values go right.
func (u *linkedTree[T]) buildLevelOrder(values []T) (*Node[T], error) {
	type entry struct {
		n      *Node[T]
		lo, hi bound[T]
	}
	root := newNode(values[0])
	q := Queues.MakeArrayQueue[entry](uint(bits.Len(uint(len(values)))) + 1)
	q.Push(entry{n: root})
	i := 1
	in := func(v T, lo, hi bound[T]) bool {
		return (!lo.set || u.cmp(v, lo.v) >= 0) && (!hi.set || u.cmp(v, hi.v) < 0)
	}
	for i < len(values) && !q.Empty() {
		e, _ := q.Pop()
		if v := values[i]; in(v, e.lo, bound[T]{e.n.Value, true}) {
			e.n.setLeft(newNode(v))
			q.Push(entry{e.n.l, e.lo, bound[T]{e.n.Value, true}})
			i++
		}
		if i < len(values) {
			if v := values[i]; in(v, bound[T]{e.n.Value, true}, e.hi) {
				e.n.setRight(newNode(v))
				q.Push(entry{e.n.r, bound[T]{e.n.Value, true}, e.hi})
				i++
			}
		}
	}
	if i < len(values) {
		return nil, &ArgumentError{"values", "not the level order of a binary search tree"}
	}
	return root, nil
}

// buildPreOrder reads values as a pre-order traversal (Root-Left-Right).
// A value not less than the top of the stack is the right child of the last
// popped node, otherwise the left child of the top; equal values go right.
// Every later value belongs to the right subtree of the last popped node, so
// one smaller than it means values isn't the pre-order of a search tree.
func (u *linkedTree[T]) buildPreOrder(values []T) (*Node[T], error) {
	root := newNode(values[0])
	st := stack.New()
	st.Push(root)
	var lo *Node[T]
	for _, v := range values[1:] {
		if lo != nil && u.cmp(v, lo.Value) < 0 {
			return nil, &ArgumentError{"values", "not the pre-order of a binary search tree"}
		}
		var p *Node[T]
		for st.Len() > 0 && u.cmp(v, st.Peek().(*Node[T]).Value) >= 0 {
			p = st.Pop().(*Node[T])
		}
		n := newNode(v)
		if p != nil {
			p.setRight(n)
			lo = p
		} else {
			st.Peek().(*Node[T]).setLeft(n)
		}
		st.Push(n)
	}
	return root, nil
}

// buildPostOrder is buildPreOrder over the reversed values (Root-Right-Left).
// The bound is mirrored: later values must be less than the last popped node.
func (u *linkedTree[T]) buildPostOrder(values []T) (*Node[T], error) {
	last := len(values) - 1
	root := newNode(values[last])
	st := stack.New()
	st.Push(root)
	var hi *Node[T]
	for i := last - 1; i > -1; i-- {
		v := values[i]
		if hi != nil && u.cmp(v, hi.Value) >= 0 {
			return nil, &ArgumentError{"values", "not the post-order of a binary search tree"}
		}
		var p *Node[T]
		for st.Len() > 0 && u.cmp(v, st.Peek().(*Node[T]).Value) < 0 {
			p = st.Pop().(*Node[T])
		}
		n := newNode(v)
		if p != nil {
			p.setLeft(n)
			hi = p
		} else {
			st.Peek().(*Node[T]).setRight(n)
		}
		st.Push(n)
	}
	return root, nil
}

// buildInOrder builds a complete tree out of sorted values: the middle of
// every range becomes the subtree root.
func buildInOrder[T any](values []T) *Node[T] {
	type span struct {
		lo, hi int
		p      *Node[T]
		left   bool
	}
	var root *Node[T]
	st := make([]span, 0, bits.Len(uint(len(values)))+1)
	st = append(st, span{0, len(values) - 1, nil, false})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.lo > top.hi {
			continue
		}
		mid := top.lo + (top.hi-top.lo)>>1
		n := newNode(values[mid])
		if top.p == nil {
			root = n
		} else if top.left {
			top.p.setLeft(n)
		} else {
			top.p.setRight(n)
		}
		st = append(st, span{mid + 1, top.hi, n, false}, span{top.lo, mid - 1, n, true})
	}
	return root
}

// checkSorted returns an error at the first pair out of order. strict
// rejects equal neighbours as well.
func (u *linkedTree[T]) checkSorted(values []T, strict bool) error {
	for i := 1; i < len(values); i++ {
		if c := u.cmp(values[i-1], values[i]); c > 0 || strict && c == 0 {
			return &InvalidSliceError{i, values[i-1], values[i]}
		}
	}
	return nil
}

// checkPair validates what every paired loader needs: same length, a
// strictly increasing in-order and every value of other present in it.
func (u *linkedTree[T]) checkPair(inOrder, other []T, name string) error {
	if len(inOrder) != len(other) {
		return &NotFormingATreeError{"inOrder", name, "lengths differ"}
	}
	if err := u.checkSorted(inOrder, true); err != nil {
		return &NotFormingATreeError{"inOrder", name, err.Error()}
	}
	for _, v := range other {
		if _, found := slices.BinarySearchFunc(inOrder, v, u.cmp); !found {
			return &NotFormingATreeError{"inOrder", name, "values differ"}
		}
	}
	return nil
}

// indexOf v in the sorted inOrder; v is known to be present.
func (u *linkedTree[T]) indexOf(inOrder []T, v T) int {
	i, _ := slices.BinarySearchFunc(inOrder, v, u.cmp)
	return i
}

// buildInOrderAndLevelOrder walks levelOrder keeping a queue of nodes with
// the in-order range [lo, hi] their subtree spans; the next level-order value
// is a child of the front node when its in-order index falls in one half of
// that range.
func (u *linkedTree[T]) buildInOrderAndLevelOrder(inOrder, levelOrder []T) (*Node[T], error) {
	type entry struct {
		lo, hi int
		n      *Node[T]
	}
	root := newNode(levelOrder[0])
	q := Queues.MakeArrayQueue[entry](uint(bits.Len(uint(len(inOrder)))) + 1)
	q.Push(entry{0, len(inOrder) - 1, root})
	i := 1
	for i < len(levelOrder) && !q.Empty() {
		e, _ := q.Pop()
		ri := u.indexOf(inOrder, e.n.Value)
		li := u.indexOf(inOrder, levelOrder[i])
		if li >= e.lo && li < ri {
			e.n.setLeft(newNode(inOrder[li]))
			q.Push(entry{e.lo, ri - 1, e.n.l})
			if i++; i < len(levelOrder) {
				li = u.indexOf(inOrder, levelOrder[i])
			} else {
				li = -1
			}
		}
		if li > ri && li <= e.hi {
			e.n.setRight(newNode(inOrder[li]))
			q.Push(entry{ri + 1, e.hi, e.n.r})
			i++
		}
	}
	if i < len(levelOrder) {
		return nil, &NotFormingATreeError{"inOrder", "levelOrder", "values left over"}
	}
	return root, nil
}

// buildInOrderAndPreOrder keeps pre-order nodes on a stack until their
// counterpart shows up in inOrder; by then their left subtree is complete and
// the next pre-order value is a right child.
func (u *linkedTree[T]) buildInOrderAndPreOrder(inOrder, preOrder []T) (*Node[T], error) {
	return u.buildPaired(inOrder, preOrder, false)
}

// buildInOrderAndPostOrder is buildInOrderAndPreOrder over both sequences
// reversed, with left and right exchanged: reversed post-order is
// Root-Right-Left.
func (u *linkedTree[T]) buildInOrderAndPostOrder(inOrder, postOrder []T) (*Node[T], error) {
	return u.buildPaired(inOrder, postOrder, true)
}

func (u *linkedTree[T]) buildPaired(inOrder, order []T, reversed bool) (*Node[T], error) {
	at := func(s []T, i int) T {
		if reversed {
			return s[len(s)-1-i]
		}
		return s[i]
	}
	// near is the child filled first, left for pre-order.
	near := func(p, n *Node[T]) {
		if reversed {
			p.setRight(n)
		} else {
			p.setLeft(n)
		}
	}
	far := func(p, n *Node[T]) {
		if reversed {
			p.setLeft(n)
		} else {
			p.setRight(n)
		}
	}
	name := "preOrder"
	if reversed {
		name = "postOrder"
	}
	oi, ii := 0, 0
	root := newNode(at(order, oi))
	oi++
	st := stack.New()
	st.Push(root)
	for st.Len() > 0 {
		top := st.Peek().(*Node[T])
		if u.cmp(top.Value, at(inOrder, ii)) == 0 {
			st.Pop()
			if ii++; ii == len(inOrder) {
				break
			}
			if st.Len() > 0 && u.cmp(st.Peek().(*Node[T]).Value, at(inOrder, ii)) == 0 {
				continue
			}
			if oi == len(order) {
				return nil, &NotFormingATreeError{"inOrder", name, "ran out of values"}
			}
			n := newNode(at(order, oi))
			oi++
			far(top, n)
			st.Push(n)
		} else {
			if oi == len(order) {
				return nil, &NotFormingATreeError{"inOrder", name, "ran out of values"}
			}
			n := newNode(at(order, oi))
			oi++
			near(top, n)
			st.Push(n)
		}
	}
	if oi != len(order) || ii != len(inOrder) {
		return nil, &NotFormingATreeError{"inOrder", name, "values left over"}
	}
	return root, nil
}

// sameInOrder returns whether the in-order traversal of root equals inOrder.
func (u *linkedTree[T]) sameInOrder(root *Node[T], inOrder []T) bool {
	i := 0
	for w := newWalker(root, InOrder, false); ; i++ {
		n := w.next()
		if n == nil {
			return i == len(inOrder)
		}
		if i == len(inOrder) || u.cmp(n.Value, inOrder[i]) != 0 {
			return false
		}
	}
}
