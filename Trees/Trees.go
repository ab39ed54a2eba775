package Trees

// Traversal selects the order in which a walk visits nodes.
type Traversal byte

const (
	InOrder    Traversal = iota // Left-Root-Right
	LevelOrder                  // Root-Left-Right, level by level
	PreOrder                    // Root-Left-Right
	PostOrder                   // Left-Right-Root
)

func (t Traversal) String() string {
	switch t {
	case InOrder:
		return "InOrder"
	case LevelOrder:
		return "LevelOrder"
	case PreOrder:
		return "PreOrder"
	case PostOrder:
		return "PostOrder"
	}
	return "Traversal(?)"
}

// Tree is a linked binary search tree ordered by a Comparer.
// Receivers that have a bool as a second return value indicate whether the
// first return value is defined; when it isn't, the first value is the zero
// value of T.
// Trees aren't safe for concurrent use. Every structural change increases
// Version; walks started before the change fail with *VersionChangedError
// instead of giving wrong results.
// Every method is implemented iteratively.
type Tree[T any] interface {
	//Add v to the Tree. Exact behavior on duplicates depends on the implementation.
	Add(v T) error
	//AddAll adds values in order and stops at the first error.
	AddAll(values ...T) error
	//Remove v from the Tree. Returns false if v isn't in the tree, in which
	//case nothing changes, Version included.
	Remove(v T) bool
	Contains(v T) bool
	Find(v T) *Node[T]
	//FindNearestParent returns the parent of the node holding v, or the node
	//under which v would be attached. nil for an empty tree.
	FindNearestParent(v T) *Node[T]
	Minimum() (T, bool)
	Maximum() (T, bool)
	//Predecessor returns the node with the greatest value less than v.
	Predecessor(v T) *Node[T]
	//Successor returns the node with the smallest value greater than v.
	Successor(v T) *Node[T]
	Clear()

	Root() *Node[T]
	Count() int
	Version() uint
	Height() int
	AutoBalance() bool
	//Validate returns whether the in-order traversal is strictly increasing.
	Validate() bool
	//IsBalanced returns whether no node has |BalanceFactor|>1.
	IsBalanced() bool

	Iterate(method Traversal, rightToLeft bool, visit func(*Node[T]) bool) error
	Enumerate(method Traversal, rightToLeft bool) func() (T, bool, error)
	ToSlice(method Traversal, rightToLeft bool) []T

	//The loaders replace the content of the tree. On error the tree is left
	//as it was.
	FromLevelOrder(values []T) error
	FromPreOrder(values []T) error
	FromInOrder(values []T) error
	FromPostOrder(values []T) error
	FromInOrderAndLevelOrder(inOrder, levelOrder []T) error
	FromInOrderAndPreOrder(inOrder, preOrder []T) error
	FromInOrderAndPostOrder(inOrder, postOrder []T) error
}

var (
	_ Tree[int] = (*BSTree[int])(nil)
	_ Tree[int] = (*AVLTree[int])(nil)
)
