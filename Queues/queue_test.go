package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, err := q.Pop(); err == nil {
		t.Errorf("pop on empty queue returned no error")
	} else {
		var e *EmptyQueueError
		if !errors.As(err, &e) {
			t.Errorf("pop on empty queue returned %T, want *EmptyQueueError", err)
		} else if err.Error() != "pop on empty queue" {
			t.Errorf("error message is %q", err.Error())
		}
	}
	for i := range 100 {
		q.Push(i)
	}
	if q.Size() != 100 {
		t.Errorf("queue size is %d, want 100", q.Size())
	}
	for i := range 100 {
		if p := q.Peek(); p != i {
			t.Errorf("peek gives %d, want %d", p, i)
		}
		if v, err := q.Pop(); err != nil || v != i {
			t.Errorf("pop gives (%d, %v), want (%d, nil)", v, err, i)
		}
	}
	if !q.Empty() {
		t.Errorf("queue should be empty")
	}
}

func TestArrayQueue_Wrap(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	q := MakeArrayQueue[int](3)
	var model []int
	for i := range 5000 {
		if r.Intn(3) == 0 && len(model) > 0 {
			v, err := q.Pop()
			if err != nil || v != model[0] {
				t.Fatalf("step %d: pop gives (%d, %v), want %d", i, v, err, model[0])
			}
			model = model[1:]
		} else {
			q.Push(i)
			model = append(model, i)
		}
		if i%997 == 0 {
			q.Shrink()
		}
		if q.Size() != uint(len(model)) {
			t.Fatalf("step %d: size is %d, want %d", i, q.Size(), len(model))
		}
	}
	q.Clear()
	if !q.Empty() || q.Peek() != 0 {
		t.Errorf("cleared queue isn't empty")
	}
	q.Push(7)
	if v, _ := q.Pop(); v != 7 {
		t.Errorf("pop after clear gives %d, want 7", v)
	}
}

func TestArrayQueue_Grow(t *testing.T) {
	q := MakeArrayQueue[int](5)
	if q.Cap() != 8 {
		t.Fatalf("capacity is %d, want 8", q.Cap())
	}
	for i := range 6 {
		q.Push(i)
	}
	q.Pop()
	q.Pop()
	q.Grow(5)
	if q.Cap() != 16 || q.Size() != 4 {
		t.Fatalf("capacity %d, size %d", q.Cap(), q.Size())
	}
	for i := 2; i < 6; i++ {
		if v, _ := q.Pop(); v != i {
			t.Fatalf("pop gives %d, want %d", v, i)
		}
	}
	q.Shrink()
	if q.Cap() != 0 {
		t.Fatalf("empty queue kept %d slots", q.Cap())
	}
	q.Push(1)
	if q.Cap() != 4 || q.Peek() != 1 {
		t.Fatalf("capacity %d after push", q.Cap())
	}
}
