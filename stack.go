// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import "iter"

// Stack is a bounded LIFO stack.
//
// Slots [0, top) are live, slots [top, Cap()) are dead and hold the zero
// value. Push rejects new elements when the stack is full.
//
// Stack is not safe for concurrent use.
type Stack[T any] struct {
	top   int // One past the top element; also the element count
	slots slots[T]
}

// NewStack creates a stack holding at most capacity elements.
// Panics if capacity < 1.
func NewStack[T any](capacity int) *Stack[T] {
	mustCapacity(capacity)
	return &Stack[T]{slots: makeSlots(make([]T, capacity))}
}

// NewStackOver creates a stack that uses storage as its slots and never
// allocates. See [NewQueueOver] for the ownership rules.
// Panics if len(storage) < 1.
func NewStackOver[T any](storage []T) *Stack[T] {
	mustCapacity(len(storage))
	return &Stack[T]{slots: makeSlots(storage)}
}

// Push places v on top.
// Returns ErrFull if the stack is full; v is not stored.
func (s *Stack[T]) Push(v T) error {
	if s.Full() {
		return ErrFull
	}
	s.slots.construct(s.top, &v)
	s.top++
	return nil
}

// Emplace places a new element built in place by init on top.
// Returns ErrFull without calling init if the stack is full.
// If init panics the stack is left unchanged.
func (s *Stack[T]) Emplace(init func(*T)) error {
	if s.Full() {
		return ErrFull
	}
	s.slots.emplace(s.top, init)
	s.top++
	return nil
}

// Pop destroys the top element. No-op if the stack is empty.
func (s *Stack[T]) Pop() {
	if s.top == 0 {
		return
	}
	s.top--
	s.slots.destroy(s.top)
}

// Take removes and returns the top element without releasing it.
// Returns (zero-value, ErrEmpty) if the stack is empty.
func (s *Stack[T]) Take() (T, error) {
	if s.top == 0 {
		var zero T
		return zero, ErrEmpty
	}
	s.top--
	return s.slots.moveOut(s.top), nil
}

// Top returns the top element, or (nil, false) if the stack is empty.
// The pointer is valid until the next mutating call.
func (s *Stack[T]) Top() (*T, bool) {
	if s.top == 0 {
		return nil, false
	}
	return s.slots.at(s.top - 1), true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.top }

// Cap returns the stack capacity.
func (s *Stack[T]) Cap() int { return s.slots.capacity() }

// Available returns the number of free slots.
func (s *Stack[T]) Available() int { return s.slots.capacity() - s.top }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.top == 0 }

// Full reports whether the stack holds Cap() elements.
func (s *Stack[T]) Full() bool { return s.top == s.slots.capacity() }

// Clear destroys every element, top first.
func (s *Stack[T]) Clear() {
	for s.top > 0 {
		s.Pop()
	}
}

// Values returns an iterator over the elements from bottom to top.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.top {
			if !yield(*s.slots.at(i)) {
				return
			}
		}
	}
}

// EqualFunc reports whether s and o hold the same number of elements and
// eq holds for each pair at the same position.
func (s *Stack[T]) EqualFunc(o *Stack[T], eq func(a, b T) bool) bool {
	if s == o {
		return true
	}
	return EqualStackFunc(s, o, eq)
}

// EqualStackFunc is like [Stack.EqualFunc] but allows a and b to hold
// different element types.
func EqualStackFunc[T, U any](a *Stack[T], b *Stack[U], eq func(T, U) bool) bool {
	if a.top != b.top {
		return false
	}
	for i := range a.top {
		if !eq(*a.slots.at(i), *b.slots.at(i)) {
			return false
		}
	}
	return true
}

// EqualStack reports whether a and b hold equal elements at equal
// positions.
func EqualStack[T comparable](a, b *Stack[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// CopyFrom replaces the contents of s with copies of the elements of src,
// bottom first. If src holds more than Cap() elements only the bottom
// Cap() are copied. Returns the number of elements copied.
// Copying a stack onto itself is a no-op.
func (s *Stack[T]) CopyFrom(src *Stack[T]) int {
	if s == src {
		return s.top
	}
	s.Clear()

	n := min(src.top, s.slots.capacity())
	for i := range n {
		s.slots.copyConstruct(i, src.slots.at(i))
	}
	s.top = n
	return n
}

// Clone returns a new stack with the same capacity and copies of s's
// elements.
func (s *Stack[T]) Clone() *Stack[T] {
	c := NewStack[T](s.slots.capacity())
	c.CopyFrom(s)
	return c
}

// Swap exchanges the contents and storage of s and o.
// Swapping a stack with itself is a no-op.
func (s *Stack[T]) Swap(o *Stack[T]) {
	if s == o {
		return
	}
	s.top, o.top = o.top, s.top
	s.slots, o.slots = o.slots, s.slots
}
