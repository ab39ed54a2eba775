package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree. Values equal to a node's go to
// its right subtree, so repeated values are kept; Validate will report such a
// tree as invalid because it demands a strictly increasing in-order.
// Heights are maintained on every change so that BalanceFactor stays
// meaningful.
// BSTree isn't safe for concurrent use.
type BSTree[T any] struct {
	linkedTree[T]
}

// NewBST returns an empty tree using the natural order of T.
func NewBST[T constraints.Ordered]() *BSTree[T] {
	return NewBSTFunc(natural[T]())
}

// NewBSTFunc returns an empty tree ordered by c. c mustn't be nil.
func NewBSTFunc[T any](c Comparer[T]) *BSTree[T] {
	if c == nil {
		panic("Trees: nil Comparer")
	}
	return &BSTree[T]{linkedTree[T]{cmp: c}}
}

func (u *BSTree[T]) AutoBalance() bool {
	return false
}

// FindNearestParent [Tree.FindNearestParent]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) FindNearestParent(v T) *Node[T] {
	var parent *Node[T]
	for next := u.root; next != nil; {
		c := u.cmp(v, next.Value)
		if c == 0 {
			break
		}
		parent = next
		if c < 0 {
			next = next.l
		} else {
			next = next.r
		}
	}
	return parent
}

// Add v below the last node of the descent; never fails.
// Time: O(D); Space: O(D)
func (u *BSTree[T]) Add(v T) error {
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
		c = u.cmp(v, next.Value)
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
	for i := len(st) - 1; i > -1; i-- {
		setHeight(st[i])
	}
	u.st = clearStack(st)
	u.count++
	u.version++
	return nil
}

// AddAll values in order, stopping at the first error.
func (u *BSTree[T]) AddAll(values ...T) error {
	for _, v := range values {
		if err := u.Add(v); err != nil {
			return err
		}
	}
	return nil
}

// Remove [Tree.Remove]
// Time: O(D); Space: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	st, ok := u.unlink(v, u.st[:0])
	if ok {
		for i := len(st) - 1; i > -1; i-- {
			setHeight(st[i])
		}
		u.count--
		u.version++
	}
	u.st = clearStack(st)
	return ok
}

// unlink the node holding v and put its replacement in its slot. The
// returned stack holds, root first, every node whose children changed and all
// their ancestors, so popping it refreshes heights bottom-up.
func (u *linkedTree[T]) unlink(v T, st []*Node[T]) ([]*Node[T], bool) {
	var parent, node *Node[T]
	for next := u.root; next != nil; {
		c := u.cmp(v, next.Value)
		if c == 0 {
			node = next
			break
		}
		parent = next
		st = append(st, parent)
		if c < 0 {
			next = next.l
		} else {
			next = next.r
		}
	}
	if node == nil {
		return st, false
	}
	left := node.IsLeft()
	var child *Node[T]
	if node.r == nil {
		// case 1: no right child, the left subtree moves up.
		child = node.l
	} else if node.r.l == nil {
		// case 2: the right child has no left child; it adopts node's left.
		child = node.r
		child.setLeft(node.l)
		st = append(st, child)
	} else {
		// case 3: the leftmost node of the right subtree replaces node.
		sp := node.r
		chain := []*Node[T]{sp}
		for sp.l.l != nil {
			sp = sp.l
			chain = append(chain, sp)
		}
		child = sp.l
		sp.setLeft(child.r)
		child.setLeft(node.l)
		child.setRight(node.r)
		st = append(st, child)
		if child.l != nil {
			st = append(st, child.l)
		}
		st = append(st, chain...)
	}
	u.attach(parent, child, left)
	return st, true
}

// clearStack drops the references held by st so removed nodes can be freed.
func clearStack[T any](st []*Node[T]) []*Node[T] {
	clear(st)
	return st[:0]
}

// FromLevelOrder [Tree.FromLevelOrder]
// values must be the level-order traversal of a search tree.
func (u *BSTree[T]) FromLevelOrder(values []T) error {
	if len(values) == 0 {
		u.replace(nil, 0)
		return nil
	}
	root, err := u.buildLevelOrder(values)
	if err != nil {
		return err
	}
	u.load(root, len(values))
	return nil
}

// FromPreOrder [Tree.FromPreOrder]
// Returns *ArgumentError, leaving the tree unchanged, if values isn't the
// pre-order traversal of a search tree.
func (u *BSTree[T]) FromPreOrder(values []T) error {
	if len(values) == 0 {
		u.replace(nil, 0)
		return nil
	}
	root, err := u.buildPreOrder(values)
	if err != nil {
		return err
	}
	u.load(root, len(values))
	return nil
}

// FromInOrder builds a complete tree out of values, which must be sorted.
// Returns *InvalidSliceError otherwise.
func (u *BSTree[T]) FromInOrder(values []T) error {
	if err := u.checkSorted(values, false); err != nil {
		return err
	}
	u.load(buildInOrder(values), len(values))
	return nil
}

// FromPostOrder [Tree.FromPostOrder]
// Returns *ArgumentError, leaving the tree unchanged, if values isn't the
// post-order traversal of a search tree.
func (u *BSTree[T]) FromPostOrder(values []T) error {
	if len(values) == 0 {
		u.replace(nil, 0)
		return nil
	}
	root, err := u.buildPostOrder(values)
	if err != nil {
		return err
	}
	u.load(root, len(values))
	return nil
}

// FromInOrderAndLevelOrder rebuilds the tree whose traversals are given.
// Returns *NotFormingATreeError if there's no such tree.
func (u *BSTree[T]) FromInOrderAndLevelOrder(inOrder, levelOrder []T) error {
	return u.loadPaired(inOrder, levelOrder, "levelOrder", u.buildInOrderAndLevelOrder)
}

// FromInOrderAndPreOrder [BSTree.FromInOrderAndLevelOrder]
func (u *BSTree[T]) FromInOrderAndPreOrder(inOrder, preOrder []T) error {
	return u.loadPaired(inOrder, preOrder, "preOrder", u.buildInOrderAndPreOrder)
}

// FromInOrderAndPostOrder [BSTree.FromInOrderAndLevelOrder]
func (u *BSTree[T]) FromInOrderAndPostOrder(inOrder, postOrder []T) error {
	return u.loadPaired(inOrder, postOrder, "postOrder", u.buildInOrderAndPostOrder)
}

func (u *BSTree[T]) loadPaired(inOrder, other []T, name string, build func(a, b []T) (*Node[T], error)) error {
	if err := u.checkPair(inOrder, other, name); err != nil {
		return err
	}
	if len(inOrder) == 0 {
		u.replace(nil, 0)
		return nil
	}
	root, err := build(inOrder, other)
	if err != nil {
		return err
	}
	if !u.sameInOrder(root, inOrder) {
		return &NotFormingATreeError{"inOrder", name, "traversals disagree"}
	}
	u.load(root, len(inOrder))
	return nil
}

// load a detached tree after setting its heights.
func (u *BSTree[T]) load(root *Node[T], count int) {
	initHeights(root)
	u.replace(root, count)
}
