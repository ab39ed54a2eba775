package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Comparer is a strict total order over T: negative when a<b, zero when
// a==b, positive when a>b. It must not change during the lifetime of a tree.
type Comparer[T any] func(a, b T) int

// natural order of T.
func natural[T constraints.Ordered]() Comparer[T] {
	return cmp.Compare[T]
}

// FromGodsComparator adapts a gods comparator, e.g. utils.StringComparator.
// c is called with values of T boxed in interfaces.
func FromGodsComparator[T any](c utils.Comparator) Comparer[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}
