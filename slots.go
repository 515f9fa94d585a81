// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

// slots is a fixed block of element storage with per-slot lifetime control.
//
// A slot is either live (holds an element put there by construct, emplace
// or copyConstruct) or dead (holds the zero value of T). The owner tracks
// which slots are live; slots only moves values in and out.
//
// Dead slots are kept zeroed so that nothing reachable from a dead slot
// stays alive for the garbage collector, and so that emplace always starts
// from a clean slot.
type slots[T any] struct {
	buf []T

	releases bool // *T implements Releaser
	clones   bool // *T implements Cloner[T]
}

func makeSlots[T any](buf []T) slots[T] {
	clear(buf)
	_, releases := any((*T)(nil)).(Releaser)
	_, clones := any((*T)(nil)).(Cloner[T])
	return slots[T]{buf: buf, releases: releases, clones: clones}
}

// at returns a typed view of slot i.
func (s *slots[T]) at(i int) *T {
	return &s.buf[i]
}

// construct copies *v into dead slot i.
func (s *slots[T]) construct(i int, v *T) {
	s.buf[i] = *v
}

// emplace lets init build the element directly in dead slot i.
// If init panics the slot is zeroed again before the panic propagates.
func (s *slots[T]) emplace(i int, init func(*T)) {
	done := false
	defer func() {
		if !done {
			var zero T
			s.buf[i] = zero
		}
	}()
	init(&s.buf[i])
	done = true
}

// copyConstruct copies the live element v into dead slot i, using
// Clone when the element type provides one.
func (s *slots[T]) copyConstruct(i int, v *T) {
	if s.clones {
		s.buf[i] = any(v).(Cloner[T]).Clone()
		return
	}
	s.buf[i] = *v
}

// destroy ends the lifetime of live slot i.
func (s *slots[T]) destroy(i int) {
	p := &s.buf[i]
	if s.releases {
		any(p).(Releaser).Release()
	}
	var zero T
	*p = zero
}

// moveOut returns the element in live slot i and marks the slot dead
// without releasing it: ownership moves to the caller.
func (s *slots[T]) moveOut(i int) T {
	elem := s.buf[i]
	var zero T
	s.buf[i] = zero
	return elem
}

// capacity returns the number of slots.
func (s *slots[T]) capacity() int {
	return len(s.buf)
}

// mustCapacity panics if n cannot back a container.
func mustCapacity(n int) {
	if n < 1 {
		panic("fixed: capacity must be >= 1")
	}
}
