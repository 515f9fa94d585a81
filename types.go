// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

// Bounded is the status interface shared by [Queue] and [Stack].
type Bounded interface {
	// Len returns the number of live elements.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// Available returns Cap() - Len().
	Available() int
	Empty() bool
	Full() bool
	// Clear destroys every live element.
	Clear()
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs on the
// call. The container stores a copy of the pointed-to value, so the
// original can be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element (non-blocking).
	// Returns nil on success, ErrFull if the container is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Ownership of the value moves to the caller.
	// Returns (zero-value, ErrEmpty) if the container is empty.
	Dequeue() (T, error)
}

// Releaser is implemented by element types that own something which must
// be given back when the element leaves a container slot.
//
// Queue and Stack call Release on the slot pointer whenever they destroy a
// live element: Pop, Clear, eviction by PushOverwrite, and the implicit
// clear at the start of CopyFrom. Release is not called when the value is
// moved out to the caller by Dequeue or Take.
//
// Example:
//
//	type Conn struct{ fd int }
//
//	func (c *Conn) Release() { syscall.Close(c.fd) }
//
//	q := fixed.NewQueue[Conn](16)
//	q.Push(Conn{fd: fd})
//	q.Pop() // closes fd
//
// CopyFrom and Clone copy elements by plain assignment unless the type also
// implements [Cloner]. A Releaser that owns a resource must therefore
// implement Cloner as well, or both containers will release the same
// resource.
type Releaser interface {
	Release()
}

// Cloner is implemented by element types that need a deep copy when a
// container is copied with CopyFrom or Clone. Without it, elements are
// copied by plain assignment.
type Cloner[T any] interface {
	Clone() T
}
