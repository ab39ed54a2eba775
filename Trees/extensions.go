package Trees

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// WriteTo writes the tree in pre-order, one node per line indented by its
// depth, as "value :D<depth>H<height>B<balance factor>". A missing child of
// a node that has the other one is written as <nil>.
func (u *linkedTree[T]) WriteTo(w io.Writer) (int64, error) {
	type entry struct {
		n     *Node[T]
		depth int
	}
	bw := bufio.NewWriter(w)
	var written int64
	line := func(depth int, s string) error {
		n, err := bw.WriteString(strings.Repeat("  ", depth) + s + "\n")
		written += int64(n)
		return err
	}
	if u.root == nil {
		return written, bw.Flush()
	}
	st := []entry{{u.root, 0}}
	for len(st) > 0 {
		e := st[len(st)-1]
		st = st[:len(st)-1]
		if e.n == nil {
			if err := line(e.depth, "<nil>"); err != nil {
				return written, err
			}
			continue
		}
		if err := line(e.depth, e.n.depthString(e.depth)); err != nil {
			return written, err
		}
		if !e.n.IsLeaf() {
			st = append(st, entry{e.n.r, e.depth + 1}, entry{e.n.l, e.depth + 1})
		}
	}
	return written, bw.Flush()
}

// BranchSums returns the sum of the values on every root-to-leaf path, the
// leftmost path first. nil for an empty tree.
func BranchSums[T Number](t Tree[T]) []T {
	type entry struct {
		n   *Node[T]
		sum T
	}
	root := t.Root()
	if root == nil {
		return nil
	}
	var sums []T
	st := []entry{{root, root.Value}}
	for len(st) > 0 {
		e := st[len(st)-1]
		st = st[:len(st)-1]
		if e.n.IsLeaf() {
			sums = append(sums, e.sum)
			continue
		}
		if e.n.r != nil {
			st = append(st, entry{e.n.r, e.sum + e.n.r.Value})
		}
		if e.n.l != nil {
			st = append(st, entry{e.n.l, e.sum + e.n.l.Value})
		}
	}
	return sums
}

// FindClosestValue returns the value of t nearest to v, def if t is empty.
// t must be ordered by the natural order of T.
// Ties go to the value met first on the search path.
// Time: O(D); Space: O(1)
func FindClosestValue[T Number](t Tree[T], v, def T) T {
	cur := t.Root()
	if cur == nil {
		return def
	}
	dist := func(x T) T {
		if x > v {
			return x - v
		}
		return v - x
	}
	closest := cur.Value
	for cur != nil {
		if dist(cur.Value) < dist(closest) {
			closest = cur.Value
		}
		if v < cur.Value {
			cur = cur.l
		} else if v > cur.Value {
			cur = cur.r
		} else {
			break
		}
	}
	return closest
}
