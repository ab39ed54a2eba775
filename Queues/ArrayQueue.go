package Queues

import "math/bits"

// circArrQ is a ring buffer whose capacity is 0 or a power of 2, so indices
// wrap by masking. The items are the sz slots starting at head.
type circArrQ[T any] struct {
	head, sz uint
	content  []T
}

// MakeArrayQueue returns an empty queue with room for at least initCap items.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	q := &circArrQ[T]{}
	q.Grow(initCap)
	return q
}

// roundUp to a power of 2; 0 stays 0.
func roundUp(n uint) uint {
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(n-1)
}

func (this circArrQ[T]) mask() uint {
	return uint(len(this.content)) - 1
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

func (this circArrQ[T]) Cap() uint {
	return uint(len(this.content))
}

// resize moves the items to the front of a new buffer of newLen>=sz slots.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if end := this.head + this.sz; end <= uint(len(this.content)) {
		copy(nc, this.content[this.head:end])
	} else {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:end-uint(len(this.content))])
	}
	this.content, this.head = nc, 0
}

// Grow makes room for n more items.
func (this *circArrQ[T]) Grow(n uint) {
	if need := this.sz + n; need > uint(len(this.content)) {
		this.resize(roundUp(need))
	}
}

// Shrink to the smallest capacity holding the items.
func (this *circArrQ[T]) Shrink() {
	if c := roundUp(this.sz); c < uint(len(this.content)) {
		this.resize(c)
	}
}

// Clear the queue, also drops the references it holds.
func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.head, this.sz = 0, 0
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(max(this.sz<<1, 4))
	}
	this.content[(this.head+this.sz)&this.mask()] = item
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return item, &EmptyQueueError{}
	}
	item, this.content[this.head] = this.content[this.head], item
	this.head = (this.head + 1) & this.mask()
	this.sz--
	return item, nil
}

func (this circArrQ[T]) Peek() (item T) {
	if !this.Empty() {
		item = this.content[this.head]
	}
	return
}
