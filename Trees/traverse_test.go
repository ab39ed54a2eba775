package Trees

import (
	"errors"
	"slices"
	"testing"
)

func TestTree_Traversals(t *testing.T) {
	tests := []struct {
		method   Traversal
		ltr, rtl []int
	}{
		{LevelOrder, []int{5, 3, 8, 1, 4, 7, 9}, []int{5, 8, 3, 9, 7, 4, 1}},
		{PreOrder, []int{5, 3, 1, 4, 8, 7, 9}, []int{5, 8, 9, 7, 3, 4, 1}},
		{InOrder, []int{1, 3, 4, 5, 7, 8, 9}, []int{9, 8, 7, 5, 4, 3, 1}},
		{PostOrder, []int{1, 4, 3, 7, 9, 8, 5}, []int{9, 7, 8, 4, 1, 3, 5}},
	}
	for _, tree := range []Tree[int]{shape(NewBST[int]()), shape(NewAVL[int]())} {
		for _, tt := range tests {
			t.Run(tt.method.String(), func(t *testing.T) {
				if s := tree.ToSlice(tt.method, false); !slices.Equal(s, tt.ltr) {
					t.Errorf("left to right: %v, want %v", s, tt.ltr)
				}
				if s := tree.ToSlice(tt.method, true); !slices.Equal(s, tt.rtl) {
					t.Errorf("right to left: %v, want %v", s, tt.rtl)
				}
				var s []int
				next := tree.Enumerate(tt.method, false)
				for v, ok, err := next(); ok; v, ok, err = next() {
					if err != nil {
						t.Fatal(err)
					}
					s = append(s, v)
				}
				if !slices.Equal(s, tt.ltr) {
					t.Errorf("enumerated %v, want %v", s, tt.ltr)
				}
			})
		}
	}
}

func TestTree_InOrderRandom(t *testing.T) {
	tree := NewAVL[int]()
	content := make(map[int]struct{})
	for range tAddN {
		v := rg.Intn(tAddValRange)
		tree.Add(v)
		content[v] = struct{}{}
	}
	for range 10 {
		var s []int
		tree.Iterate(InOrder, false, func(n *Node[int]) bool {
			s = append(s, n.Value)
			return rg.Intn(tree.Count()/2) != 0
		})
		for _, v := range s {
			if _, in := content[v]; !in {
				t.Errorf("sorted has non existent key %v", v)
			}
		}
		if !slices.IsSorted(s) {
			t.Log(s)
			t.Errorf("sorted is not sorted")
		}
	}
	s := tree.ToSlice(InOrder, true)
	if len(s) != len(content) {
		t.Errorf("sorted size is %d, want %d", len(s), len(content))
	}
	if slices.Reverse(s); !slices.IsSorted(s) {
		t.Log(s)
		t.Errorf("sorted is not sorted")
	}
	for _, m := range []Traversal{LevelOrder, PreOrder, PostOrder} {
		s := tree.ToSlice(m, rg.Intn(2) == 0)
		slices.Sort(s)
		if len(s) != len(content) || len(slices.Compact(s)) != len(content) {
			t.Errorf("%v visited %d nodes, want %d", m, len(s), len(content))
		}
	}
}

func TestTree_IterateChanged(t *testing.T) {
	for _, m := range []Traversal{InOrder, LevelOrder, PreOrder, PostOrder} {
		tree := shape(NewAVL[int]())
		n := 0
		err := tree.Iterate(m, false, func(*Node[int]) bool {
			if n++; n == 2 {
				tree.Add(10)
			}
			return true
		})
		var changed *VersionChangedError
		if !errors.As(err, &changed) || changed.Actual != changed.Expected+1 {
			t.Fatalf("%v: got %v", m, err)
		}
		if n != 2 {
			t.Fatalf("%v: visited %d nodes after the change", m, n-2)
		}
	}
	tree := shape(NewBST[int]())
	v := tree.Version()
	if tree.Remove(6); tree.Version() != v {
		t.Fatal("failed delete changed the version")
	}
	if err := tree.Iterate(InOrder, false, func(n *Node[int]) bool { tree.Remove(6); return true }); err != nil {
		t.Fatalf("failed delete broke the walk: %v", err)
	}
	if err := tree.Iterate(InOrder, false, func(n *Node[int]) bool { tree.Clear(); return true }); !errors.Is(err, ErrVersionChanged) {
		t.Fatalf("clear: got %v", err)
	}
}

func TestTree_EnumerateChanged(t *testing.T) {
	tree := shape(NewAVL[int]())
	next := tree.Enumerate(InOrder, false)
	if v, ok, err := next(); !ok || err != nil || v != 1 {
		t.Fatalf("got %v %v %v", v, ok, err)
	}
	tree.Remove(1)
	for range 2 {
		if _, ok, err := next(); ok || !errors.Is(err, ErrVersionChanged) {
			t.Fatalf("got %v %v", ok, err)
		}
	}
	next = NewBST[int]().Enumerate(PostOrder, true)
	if _, ok, err := next(); ok || err != nil {
		t.Fatalf("empty tree gave %v %v", ok, err)
	}
}

func TestTree_IterateFrom(t *testing.T) {
	tree := shape(NewBST[int]())
	var s []int
	tree.IterateFrom(tree.Find(8), PreOrder, true, func(n *Node[int]) bool {
		s = append(s, n.Value)
		return true
	})
	if !slices.Equal(s, []int{8, 9, 7}) {
		t.Fatalf("got %v", s)
	}
	if !tree.ValidateFrom(tree.Find(3)) {
		t.Fatal("subtree is valid")
	}
}

func TestTree_IterateLevels(t *testing.T) {
	tree := shape(NewBST[int]())
	tree.Add(10)
	want := [][]int{{5}, {8, 3}, {9, 7, 4, 1}, {10}}
	got := make([][]int, 0, len(want))
	err := tree.IterateLevels(true, func(level int, nodes []*Node[int]) bool {
		if level != len(got) {
			t.Fatalf("level %d after %d", level, len(got))
		}
		s := make([]int, len(nodes))
		for i, n := range nodes {
			s[i] = n.Value
		}
		got = append(got, s)
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for l, w := range [][]int{{5}, {3, 8}, {1, 4, 7, 9}, {10}, nil} {
		nodes, err := tree.NodesAtLevel(l)
		if err != nil {
			t.Fatal(err)
		}
		s := make([]int, 0, len(nodes))
		for _, n := range nodes {
			s = append(s, n.Value)
		}
		if !slices.Equal(s, w) {
			t.Errorf("level %d is %v, want %v", l, s, w)
		}
	}
	if _, err := tree.NodesAtLevel(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative level gave %v", err)
	}
}
