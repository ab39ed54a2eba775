package Trees

import "github.com/g-m-twostay/go-bst/Queues"

// walker is an iterative traversal over a subtree. next gives nodes one at
// a time and nil once exhausted. The tree must not change while a walker is
// in use; the tree methods wrapping it check Version for that.
type walker[T any] struct {
	method Traversal
	rtl    bool
	st     []*Node[T]
	q      Queues.ArrayQueue[*Node[T]]
	cur    *Node[T] // next subtree to descend into, InOrder and PostOrder.
	last   *Node[T] // last node given, PostOrder.
}

func newWalker[T any](root *Node[T], method Traversal, rightToLeft bool) *walker[T] {
	w := &walker[T]{method: method, rtl: rightToLeft}
	if root == nil {
		return w
	}
	switch method {
	case LevelOrder:
		w.q = Queues.MakeArrayQueue[*Node[T]](8)
		w.q.Push(root)
	case PreOrder:
		w.st = append(w.st, root)
	default:
		w.cur = root
	}
	return w
}

// near is the child visited first.
func (w *walker[T]) near(n *Node[T]) *Node[T] {
	if w.rtl {
		return n.r
	}
	return n.l
}

// far is the child visited last.
func (w *walker[T]) far(n *Node[T]) *Node[T] {
	if w.rtl {
		return n.l
	}
	return n.r
}

func (w *walker[T]) pop() *Node[T] {
	n := w.st[len(w.st)-1]
	w.st = w.st[:len(w.st)-1]
	return n
}

func (w *walker[T]) next() *Node[T] {
	switch w.method {
	case LevelOrder:
		if w.q == nil || w.q.Empty() {
			return nil
		}
		n, _ := w.q.Pop()
		if c := w.near(n); c != nil {
			w.q.Push(c)
		}
		if c := w.far(n); c != nil {
			w.q.Push(c)
		}
		return n
	case PreOrder:
		if len(w.st) == 0 {
			return nil
		}
		n := w.pop()
		if c := w.far(n); c != nil {
			w.st = append(w.st, c)
		}
		if c := w.near(n); c != nil {
			w.st = append(w.st, c)
		}
		return n
	case InOrder:
		for ; w.cur != nil; w.cur = w.near(w.cur) {
			w.st = append(w.st, w.cur)
		}
		if len(w.st) == 0 {
			return nil
		}
		n := w.pop()
		w.cur = w.far(n)
		return n
	case PostOrder:
		for {
			for ; w.cur != nil; w.cur = w.near(w.cur) {
				w.st = append(w.st, w.cur)
			}
			if len(w.st) == 0 {
				return nil
			}
			// coming back either from the near branch or from the far one.
			if top := w.st[len(w.st)-1]; w.far(top) != nil && w.far(top) != w.last {
				w.cur = w.far(top)
				continue
			}
			w.last = w.pop()
			return w.last
		}
	}
	return nil
}

// iterate the subtree rooting at root, stopping early when visit returns
// false. Fails if the tree changes during the walk.
func (u *linkedTree[T]) iterate(root *Node[T], method Traversal, rightToLeft bool, visit func(*Node[T]) bool) error {
	version := u.version
	for w := newWalker(root, method, rightToLeft); ; {
		if version != u.version {
			return &VersionChangedError{version, u.version}
		}
		n := w.next()
		if n == nil || !visit(n) {
			return nil
		}
	}
}

// Iterate visits the nodes of the tree in the given order until visit
// returns false. The nodes must not be relinked by visit; changing the tree
// from visit makes Iterate stop with *VersionChangedError.
func (u *linkedTree[T]) Iterate(method Traversal, rightToLeft bool, visit func(*Node[T]) bool) error {
	return u.iterate(u.root, method, rightToLeft, visit)
}

// IterateFrom is Iterate over the subtree rooting at root.
func (u *linkedTree[T]) IterateFrom(root *Node[T], method Traversal, rightToLeft bool, visit func(*Node[T]) bool) error {
	return u.iterate(root, method, rightToLeft, visit)
}

// IterateLevels gives the nodes level by level, starting at level 0 (root).
// nodes is only valid during the call.
func (u *linkedTree[T]) IterateLevels(rightToLeft bool, visit func(level int, nodes []*Node[T]) bool) error {
	if u.root == nil {
		return nil
	}
	version := u.version
	cur, nxt := []*Node[T]{u.root}, make([]*Node[T], 0, 2)
	for level := 0; len(cur) > 0; level++ {
		if version != u.version {
			return &VersionChangedError{version, u.version}
		}
		if !visit(level, cur) {
			return nil
		}
		nxt = nxt[:0]
		for _, n := range cur {
			a, b := n.l, n.r
			if rightToLeft {
				a, b = b, a
			}
			if a != nil {
				nxt = append(nxt, a)
			}
			if b != nil {
				nxt = append(nxt, b)
			}
		}
		cur, nxt = nxt, cur
	}
	if version != u.version {
		return &VersionChangedError{version, u.version}
	}
	return nil
}

// Enumerate returns a closure acting like an iterator: v, ok, err = f().
// v is meaningful only if ok is true. Once the tree changes, every call
// gives *VersionChangedError.
// Time: f(): amortized O(1); Space: O(D), O(n) for LevelOrder.
func (u *linkedTree[T]) Enumerate(method Traversal, rightToLeft bool) func() (T, bool, error) {
	version := u.version
	w := newWalker(u.root, method, rightToLeft)
	return func() (v T, ok bool, err error) {
		if version != u.version {
			return v, false, &VersionChangedError{version, u.version}
		}
		if n := w.next(); n != nil {
			return n.Value, true, nil
		}
		return
	}
}
