package Trees

import (
	"slices"

	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// AVLTree is a BSTree kept balanced after every Add and Remove: no node has
// |BalanceFactor|>1, so D<=1.44*log2(n+2). Repeated values are rejected with
// *DuplicateKeyError because they would never let the tree balance.
// Rebalancing is iterative and runs in two phases: the heights on the changed
// path are refreshed bottom-up first, queueing every node found unbalanced;
// then the queue is drained, rotating only the nodes still unbalanced by then.
// AVLTree isn't safe for concurrent use.
type AVLTree[T any] struct {
	bsTree[T]
	q Queues.ArrayQueue[*Node[T]]
}

// NewAVL returns an empty tree using the natural order of T.
func NewAVL[T constraints.Ordered]() *AVLTree[T] {
	return NewAVLFunc(natural[T]())
}

// NewAVLFunc returns an empty tree ordered by c. c mustn't be nil.
func NewAVLFunc[T any](c Comparer[T]) *AVLTree[T] {
	if c == nil {
		panic("Trees: nil Comparer")
	}
	return &AVLTree[T]{bsTree: bsTree[T]{linkedTree[T]{cmp: c}}}
}

// bsTree is embedded unexported so callers can't reach the BSTree mutators,
// which skip the rebalancing.
type bsTree[T any] = BSTree[T]

func (u *AVLTree[T]) AutoBalance() bool {
	return true
}

// Add v. Returns *DuplicateKeyError, leaving the tree unchanged, if v is
// already in the tree.
// Time: O(log n); Space: O(log n)
func (u *AVLTree[T]) Add(v T) error {
	if u.root == nil {
		u.root = newNode(v)
		u.count++
		u.version++
		return nil
	}
	st := u.st[:0]
	var parent *Node[T]
	c := 0
	for next := u.root; next != nil; {
		if c = u.cmp(v, next.Value); c == 0 {
			u.st = clearStack(st)
			return &DuplicateKeyError{v}
		}
		parent = next
		st = append(st, parent)
		if c < 0 {
			next = next.l
		} else {
			next = next.r
		}
	}
	if n := newNode(v); c < 0 {
		parent.setLeft(n)
	} else {
		parent.setRight(n)
	}
	u.refresh(st)
	u.count++
	u.version++
	u.drain()
	u.st = clearStack(st)
	return nil
}

// AddAll values in order, stopping at the first error.
func (u *AVLTree[T]) AddAll(values ...T) error {
	for _, v := range values {
		if err := u.Add(v); err != nil {
			return err
		}
	}
	return nil
}

// Remove [Tree.Remove]
// Time: O(log n); Space: O(log n)
func (u *AVLTree[T]) Remove(v T) bool {
	st, ok := u.unlink(v, u.st[:0])
	if ok {
		u.refresh(st)
		u.count--
		u.version++
		u.drain()
	}
	u.st = clearStack(st)
	return ok
}

func (u *AVLTree[T]) queue() Queues.ArrayQueue[*Node[T]] {
	if u.q == nil {
		u.q = u.makeQueue()
	}
	return u.q
}

// refresh pops st updating heights; unbalanced nodes are queued, not fixed.
func (u *AVLTree[T]) refresh(st []*Node[T]) {
	q := u.queue()
	for i := len(st) - 1; i > -1; i-- {
		setHeight(st[i])
		if !balanced(st[i]) {
			q.Push(st[i])
		}
	}
}

// drain the queue of unbalanced nodes. A rotation lower down may have fixed a
// queued ancestor already, so every node is checked again. After a rotation
// the heights above it are refreshed up to the first unchanged one, queueing
// nodes the rotation unbalanced, which happens on removal.
func (u *AVLTree[T]) drain() {
	q := u.queue()
	for !q.Empty() {
		n, _ := q.Pop()
		if balanced(n) {
			continue
		}
		for p := u.balance(n).p; p != nil; p = p.p {
			h := p.Height
			setHeight(p)
			if !balanced(p) {
				q.Push(p)
			}
			if h == p.Height {
				break
			}
		}
	}
}

// balance rotates the unbalanced n and returns the new root of its subtree.
func (u *AVLTree[T]) balance(n *Node[T]) *Node[T] {
	if bf := n.BalanceFactor(); bf > balanceFactor {
		if n.l.BalanceFactor() < 0 {
			// left-right
			u.rotateLeft(n.l)
		}
		// left-left
		return u.rotateRight(n)
	} else if bf < -balanceFactor {
		if n.r.BalanceFactor() > 0 {
			// right-left
			u.rotateRight(n.r)
		}
		// right-right
		return u.rotateLeft(n)
	}
	return n
}

// The loaders below reject repeated values with *DuplicateKeyError before
// touching the tree, then rebuild the loaded tree balanced if the given
// shape isn't.

// FromLevelOrder [BSTree.FromLevelOrder]
func (u *AVLTree[T]) FromLevelOrder(values []T) error {
	return u.loadUnique(values, u.bsTree.FromLevelOrder)
}

// FromPreOrder [BSTree.FromPreOrder]
func (u *AVLTree[T]) FromPreOrder(values []T) error {
	return u.loadUnique(values, u.bsTree.FromPreOrder)
}

// FromInOrder [BSTree.FromInOrder]. The result is always balanced.
func (u *AVLTree[T]) FromInOrder(values []T) error {
	if err := u.checkSorted(values, false); err != nil {
		return err
	}
	return u.loadUnique(values, u.bsTree.FromInOrder)
}

// FromPostOrder [BSTree.FromPostOrder]
func (u *AVLTree[T]) FromPostOrder(values []T) error {
	return u.loadUnique(values, u.bsTree.FromPostOrder)
}

// FromInOrderAndLevelOrder [BSTree.FromInOrderAndLevelOrder]
func (u *AVLTree[T]) FromInOrderAndLevelOrder(inOrder, levelOrder []T) error {
	return u.loadBalanced(u.bsTree.FromInOrderAndLevelOrder(inOrder, levelOrder))
}

// FromInOrderAndPreOrder [BSTree.FromInOrderAndLevelOrder]
func (u *AVLTree[T]) FromInOrderAndPreOrder(inOrder, preOrder []T) error {
	return u.loadBalanced(u.bsTree.FromInOrderAndPreOrder(inOrder, preOrder))
}

// FromInOrderAndPostOrder [BSTree.FromInOrderAndLevelOrder]
func (u *AVLTree[T]) FromInOrderAndPostOrder(inOrder, postOrder []T) error {
	return u.loadBalanced(u.bsTree.FromInOrderAndPostOrder(inOrder, postOrder))
}

func (u *AVLTree[T]) loadUnique(values []T, load func([]T) error) error {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, u.cmp)
	for i := 1; i < len(sorted); i++ {
		if u.cmp(sorted[i-1], sorted[i]) == 0 {
			return &DuplicateKeyError{sorted[i]}
		}
	}
	return u.loadBalanced(load(values))
}

// loadBalanced rebuilds the tree from its in-order traversal unless it's
// balanced already. The paired loaders need no duplicate check: they demand a
// strictly increasing in-order.
func (u *AVLTree[T]) loadBalanced(err error) error {
	if err != nil || u.isAVL() {
		return err
	}
	root := buildInOrder(u.ToSlice(InOrder, false))
	initHeights(root)
	u.root = root
	return nil
}

// isAVL checks every node of the tree.
func (u *AVLTree[T]) isAVL() bool {
	ok := true
	u.iterate(u.root, PostOrder, false, func(n *Node[T]) bool {
		ok = balanced(n)
		return ok
	})
	return ok
}
