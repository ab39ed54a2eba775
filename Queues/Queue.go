package Queues

// Queue is a FIFO container. Implementations in this package aren't safe
// for concurrent use.
type Queue[T any] interface {
	Push(item T)
	//Pop returns *EmptyQueueError if the queue is empty.
	Pop() (T, error)
	//Peek returns the zero value of T if the queue is empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growing ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	Size() uint
	Cap() uint
	Grow(n uint)
	Shrink()
	Clear()
}

// EmptyQueueError is returned when popping an empty queue.
type EmptyQueueError struct{}

func (e *EmptyQueueError) Error() string {
	return "pop on empty queue"
}
