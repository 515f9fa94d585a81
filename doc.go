// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixed provides fixed-capacity generic containers that never grow.
//
// The package offers three independent containers:
//
//   - Array: fixed-length sequence, every element always live
//   - Queue: bounded FIFO ring buffer
//   - Stack: bounded LIFO stack
//
// Capacity is set once at construction. Storage is allocated by the
// constructor, or supplied by the caller so that the container never
// allocates at all:
//
//	q := fixed.NewQueue[Event](64)
//
//	var frames [16]Frame
//	s := fixed.NewStackOver(frames[:])
//
// # Slot Lifetime
//
// Queue and Stack keep the distinction between live and dead slots
// explicit. A slot becomes live when an element is pushed into it and dead
// when the element is popped, cleared, evicted, or dropped by CopyFrom.
// Dead slots always hold the zero value and are never handed out.
//
// Element types hook into this lifecycle through two optional interfaces:
//
//	Releaser  - Release() is called when a live slot is destroyed
//	Cloner[T] - Clone() T is used when a container is copied
//
// Emplace builds an element directly in its slot instead of copying a
// temporary:
//
//	q.Emplace(func(e *Event) {
//	    e.ID = id
//	    e.Payload = append(e.Payload[:0], data...)
//	})
//
// Dequeue and Take move the element out to the caller. The slot becomes
// dead, but Release is not called: the caller owns the value now.
//
// # Full and Empty
//
// Push, Emplace and Enqueue reject new elements on a full container and
// return [ErrFull]. The value is not stored and the container is unchanged.
// Dequeue and Take return [ErrEmpty] on an empty container. Both errors wrap
// [ErrWouldBlock] from [code.hybscloud.com/iox]:
//
//	if err := q.Push(ev); fixed.IsWouldBlock(err) {
//	    // Queue is full - drop, retry later, or make room
//	}
//
// To keep the newest elements instead, use the explicitly named
// PushOverwrite, which evicts the oldest element of a full queue.
//
// Pop on an empty container is a no-op. Front, Back and Top return
// (nil, false) on an empty container.
//
// # Contract Violations
//
// The following are programming errors and panic:
//
//   - capacity < 1 at construction
//   - Array.At with an index outside [0, Len())
//   - Array.Swap between arrays of different lengths
//
// # Copy, Compare, Swap
//
// CopyFrom and Clone copy live elements only; the copy is laid out from
// slot 0 regardless of where the source's elements sit. Comparison looks at
// live elements in logical order, never at slot positions, so two queues
// with the same elements compare equal even when their heads differ.
// Copying, comparing or swapping a container with itself is a no-op.
//
// Some operations accept a different element type on the other side:
// ConvertArray, ConvertInto, EqualArrayFunc, EqualQueueFunc,
// EqualStackFunc, and the numeric forms ConvertNumeric and EqualNumeric.
// EqualNumeric compares exactly, so distinct int64 values above 2^53 never
// compare equal.
//
// # Thread Safety
//
// Containers are not safe for concurrent use. Guard a shared container with
// a lock of your choice. Pointers returned by Front, Back, Top, Ref and At
// are valid only until the next mutating call on the same container.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [golang.org/x/exp] for cross-type comparison and numeric constraints.
package fixed
