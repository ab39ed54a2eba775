package Trees

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrVersionChanged  = errors.New("tree changed during iteration")
	ErrNotFormingATree = errors.New("collections do not form a binary tree")
	ErrInvalidArgument = errors.New("invalid argument")
)

// DuplicateKeyError is returned by AVLTree when a value is already present.
// The tree is left unchanged.
type DuplicateKeyError struct {
	Value any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Value)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// VersionChangedError is returned by traversals and enumerators that observed
// a structural change of the tree after they started.
type VersionChangedError struct {
	Expected, Actual uint
}

func (e *VersionChangedError) Error() string {
	return fmt.Sprintf("tree changed during iteration: version %d, want %d", e.Actual, e.Expected)
}

func (e *VersionChangedError) Unwrap() error {
	return ErrVersionChanged
}

// NotFormingATreeError is returned by the paired bulk loaders when the two
// traversals can't describe the same binary search tree.
type NotFormingATreeError struct {
	First, Second string
	Reason        string
}

func (e *NotFormingATreeError) Error() string {
	return fmt.Sprintf("%s and %s do not form a binary tree: %s", e.First, e.Second, e.Reason)
}

func (e *NotFormingATreeError) Unwrap() error {
	return ErrNotFormingATree
}

// InvalidSliceError reports two neighbouring elements of an input slice that
// break the ordering the loader requires: Prev at Index-1 and Next at Index.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't sorted at %d: %v before %v", e.Index, e.Prev, e.Next)
}

func (e *InvalidSliceError) Unwrap() error {
	return ErrInvalidArgument
}

// ArgumentError is an InvalidArgument-class failure for a named parameter.
type ArgumentError struct {
	Name, Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Name, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
