// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import "iter"

// Queue is a bounded FIFO ring buffer.
//
// The live elements occupy count consecutive slots starting at head,
// wrapping around the end of the storage block; tail is the slot of the
// newest element. Every other slot is dead and holds the zero value.
// Indices advance by increment-and-compare, never by modulo.
//
// Push rejects new elements when the queue is full. Use PushOverwrite to
// evict the oldest element instead.
//
// Queue is not safe for concurrent use.
//
// Memory: exactly capacity slots, allocated once (or none with NewQueueOver)
type Queue[T any] struct {
	count int
	head  int // Oldest live element
	tail  int // Newest live element, or the slot before head when empty
	slots slots[T]
}

// NewQueue creates a queue holding at most capacity elements.
// Panics if capacity < 1.
func NewQueue[T any](capacity int) *Queue[T] {
	mustCapacity(capacity)
	return newQueue(make([]T, capacity))
}

// NewQueueOver creates a queue that uses storage as its slots and never
// allocates. The capacity is len(storage). The contents of storage are
// discarded, and the caller must not touch storage while the queue is in
// use. Panics if len(storage) < 1.
//
// Example:
//
//	var events [64]Event
//	q := fixed.NewQueueOver(events[:])
func NewQueueOver[T any](storage []T) *Queue[T] {
	mustCapacity(len(storage))
	return newQueue(storage)
}

func newQueue[T any](buf []T) *Queue[T] {
	return &Queue[T]{
		tail:  len(buf) - 1,
		slots: makeSlots(buf),
	}
}

// next returns the slot after i, wrapping to 0.
func (q *Queue[T]) next(i int) int {
	if i == q.slots.capacity()-1 {
		return 0
	}
	return i + 1
}

// Push appends v at the back.
// Returns ErrFull if the queue is full; v is not stored and the queue is
// unchanged.
func (q *Queue[T]) Push(v T) error {
	return q.Enqueue(&v)
}

// Enqueue appends a copy of *elem at the back.
// Returns ErrFull if the queue is full.
func (q *Queue[T]) Enqueue(elem *T) error {
	if q.Full() {
		return ErrFull
	}
	q.tail = q.next(q.tail)
	q.slots.construct(q.tail, elem)
	q.count++
	return nil
}

// Emplace appends a new element built in place by init.
// init receives a pointer to the zeroed slot and must not retain it.
// Returns ErrFull without calling init if the queue is full.
// If init panics the queue is left unchanged.
func (q *Queue[T]) Emplace(init func(*T)) error {
	if q.Full() {
		return ErrFull
	}
	i := q.next(q.tail)
	q.slots.emplace(i, init)
	q.tail = i
	q.count++
	return nil
}

// PushOverwrite appends v, destroying the oldest element first if the
// queue is full. Reports whether an element was evicted.
func (q *Queue[T]) PushOverwrite(v T) (evicted bool) {
	if q.Full() {
		q.Pop()
		evicted = true
	}
	q.tail = q.next(q.tail)
	q.slots.construct(q.tail, &v)
	q.count++
	return evicted
}

// Pop destroys the front element. No-op if the queue is empty.
func (q *Queue[T]) Pop() {
	if q.count == 0 {
		return
	}
	q.slots.destroy(q.head)
	q.head = q.next(q.head)
	q.count--
}

// Dequeue removes and returns the front element.
// The element is moved out, not released.
// Returns (zero-value, ErrEmpty) if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	elem := q.slots.moveOut(q.head)
	q.head = q.next(q.head)
	q.count--
	return elem, nil
}

// Front returns the oldest element, or (nil, false) if the queue is empty.
// The pointer is valid until the next mutating call.
func (q *Queue[T]) Front() (*T, bool) {
	if q.count == 0 {
		return nil, false
	}
	return q.slots.at(q.head), true
}

// Back returns the newest element, or (nil, false) if the queue is empty.
// The pointer is valid until the next mutating call.
func (q *Queue[T]) Back() (*T, bool) {
	if q.count == 0 {
		return nil, false
	}
	return q.slots.at(q.tail), true
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int { return q.count }

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int { return q.slots.capacity() }

// Available returns the number of free slots.
func (q *Queue[T]) Available() int { return q.slots.capacity() - q.count }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.count == 0 }

// Full reports whether the queue holds Cap() elements.
func (q *Queue[T]) Full() bool { return q.count == q.slots.capacity() }

// Clear destroys every element, oldest first.
func (q *Queue[T]) Clear() {
	for q.count > 0 {
		q.Pop()
	}
}

// Values returns an iterator over the elements, oldest first.
// The queue must not be modified during iteration.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		idx := q.head
		for range q.count {
			if !yield(*q.slots.at(idx)) {
				return
			}
			idx = q.next(idx)
		}
	}
}

// EqualFunc reports whether q and o hold the same number of elements and
// eq holds for each pair, oldest first. Slot positions do not matter.
func (q *Queue[T]) EqualFunc(o *Queue[T], eq func(a, b T) bool) bool {
	if q == o {
		return true
	}
	return EqualQueueFunc(q, o, eq)
}

// EqualQueueFunc is like [Queue.EqualFunc] but allows a and b to hold
// different element types.
func EqualQueueFunc[T, U any](a *Queue[T], b *Queue[U], eq func(T, U) bool) bool {
	if a.count != b.count {
		return false
	}
	i, j := a.head, b.head
	for range a.count {
		if !eq(*a.slots.at(i), *b.slots.at(j)) {
			return false
		}
		i, j = a.next(i), b.next(j)
	}
	return true
}

// EqualQueue reports whether a and b hold equal elements in the same
// order.
func EqualQueue[T comparable](a, b *Queue[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// CopyFrom replaces the contents of q with copies of the elements of src.
//
// The current elements of q are destroyed first. The copies are laid out
// from slot 0 in src's logical order. If src holds more than Cap()
// elements only the oldest Cap() are copied. Returns the number of
// elements copied. Copying a queue onto itself is a no-op.
func (q *Queue[T]) CopyFrom(src *Queue[T]) int {
	if q == src {
		return q.count
	}
	q.Clear()

	n := min(src.count, q.slots.capacity())
	idx := src.head
	for i := range n {
		q.slots.copyConstruct(i, src.slots.at(idx))
		idx = src.next(idx)
	}
	q.head = 0
	q.tail = n - 1
	if n == 0 {
		q.tail = q.slots.capacity() - 1
	}
	q.count = n
	return n
}

// Clone returns a new queue with the same capacity and copies of q's
// elements.
func (q *Queue[T]) Clone() *Queue[T] {
	c := NewQueue[T](q.slots.capacity())
	c.CopyFrom(q)
	return c
}

// Swap exchanges the contents and storage of q and o.
// Swapping a queue with itself is a no-op.
func (q *Queue[T]) Swap(o *Queue[T]) {
	if q == o {
		return
	}
	q.count, o.count = o.count, q.count
	q.head, o.head = o.head, q.head
	q.tail, o.tail = o.tail, q.tail
	q.slots, o.slots = o.slots, q.slots
}
