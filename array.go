// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import (
	"iter"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Array is a fixed-length sequence whose every element is always live.
//
// Unlike [Queue] and [Stack], an Array has no dead slots: all Len()
// elements exist from construction on and are only ever overwritten.
type Array[T any] struct {
	data []T
}

// Number is the set of element types ConvertNumeric and EqualNumeric
// accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// NewArray creates an array of n zero values.
// Panics if n < 1.
func NewArray[T any](n int) *Array[T] {
	mustCapacity(n)
	return &Array[T]{data: make([]T, n)}
}

// NewArrayFill creates an array of n copies of v.
func NewArrayFill[T any](n int, v T) *Array[T] {
	return NewArray[T](n).Fill(v)
}

// NewArrayFrom creates an array of n elements and copies the first
// min(n, len(src)) elements of src into it. The rest keep the zero value.
// A nil src leaves the whole array zeroed.
func NewArrayFrom[T any](n int, src []T) *Array[T] {
	a := NewArray[T](n)
	copy(a.data, src)
	return a
}

// ArrayOf creates an array of n elements initialized from values.
// Values beyond n are ignored; missing ones are zero.
//
//	a := fixed.ArrayOf(5, 1, 2, 3) // [1 2 3 0 0]
func ArrayOf[T any](n int, values ...T) *Array[T] {
	return NewArrayFrom(n, values)
}

// CloneArray creates an array of n elements copied from src.
// The lengths may differ; min(n, src.Len()) elements are copied.
func CloneArray[T any](n int, src *Array[T]) *Array[T] {
	return NewArrayFrom(n, src.data)
}

// ConvertArray creates an array of n elements converted from src by conv.
// min(n, src.Len()) elements are converted, the rest are zero.
func ConvertArray[T, U any](n int, src *Array[U], conv func(U) T) *Array[T] {
	a := NewArray[T](n)
	ConvertInto(a, src, conv)
	return a
}

// ConvertNumeric creates an array of n elements converted from src with
// Go's numeric conversion rules.
func ConvertNumeric[T, U Number](n int, src *Array[U]) *Array[T] {
	return ConvertArray(n, src, func(u U) T { return T(u) })
}

// ConvertInto assigns conv(src[i]) to dst[i] for the first
// min(dst.Len(), src.Len()) elements and returns that count.
func ConvertInto[T, U any](dst *Array[T], src *Array[U], conv func(U) T) int {
	n := min(len(dst.data), len(src.data))
	for i := range n {
		dst.data[i] = conv(src.data[i])
	}
	return n
}

// Get returns element i. It does not validate i beyond Go's own bounds
// check; use At for an explicit contract check.
func (a *Array[T]) Get(i int) T { return a.data[i] }

// Set assigns v to element i.
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }

// Ref returns a pointer to element i.
func (a *Array[T]) Ref(i int) *T { return &a.data[i] }

// At returns a pointer to element i.
// Panics if i is outside [0, Len()): an out-of-range index is a
// programming error, not a runtime condition.
func (a *Array[T]) At(i int) *T {
	if i < 0 || i >= len(a.data) {
		panic("fixed: index out of range")
	}
	return &a.data[i]
}

// All returns an iterator over index-value pairs.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Len returns the number of elements. It never changes.
func (a *Array[T]) Len() int { return len(a.data) }

// SizeBytes returns the size of the element storage in bytes.
func (a *Array[T]) SizeBytes() uintptr {
	var zero T
	return uintptr(len(a.data)) * unsafe.Sizeof(zero)
}

// Empty always returns false: an Array has at least one element.
func (a *Array[T]) Empty() bool { return false }

// CopyFrom copies the first min(a.Len(), src.Len()) elements of src into
// a and returns that count. Copying an array onto itself is a no-op.
func (a *Array[T]) CopyFrom(src *Array[T]) int {
	if a == src {
		return len(a.data)
	}
	return copy(a.data, src.data)
}

// Fill assigns v to every element.
func (a *Array[T]) Fill(v T) *Array[T] {
	for i := range a.data {
		a.data[i] = v
	}
	return a
}

// FillRange assigns v to the elements in [start, end).
// start is clamped to 0 and end to Len(); if start >= end nothing changes.
func (a *Array[T]) FillRange(v T, start, end int) *Array[T] {
	start = max(start, 0)
	end = min(end, len(a.data))
	for i := start; i < end; i++ {
		a.data[i] = v
	}
	return a
}

// FillCursor assigns v to the elements from first up to, not including,
// last, with the clamping rules of FillRange.
func (a *Array[T]) FillCursor(v T, first, last Cursor) *Array[T] {
	return a.FillRange(v, first.pos, last.pos)
}

// FillFunc assigns fn(i) to element i for every index.
func (a *Array[T]) FillFunc(fn func(i int) T) *Array[T] {
	for i := range a.data {
		a.data[i] = fn(i)
	}
	return a
}

// Swap exchanges the elements of a and o one by one.
// Swapping an array with itself is a no-op.
// Panics if the lengths differ.
func (a *Array[T]) Swap(o *Array[T]) {
	if a == o {
		return
	}
	if len(a.data) != len(o.data) {
		panic("fixed: swap of arrays with different lengths")
	}
	for i := range a.data {
		a.data[i], o.data[i] = o.data[i], a.data[i]
	}
}

// Begin returns the position of the first element.
func (a *Array[T]) Begin() Cursor { return Cursor{} }

// End returns the position one past the last element.
func (a *Array[T]) End() Cursor { return Cursor{pos: len(a.data)} }

// Cursor is an iterator-like position within an Array.
type Cursor struct {
	pos int
}

// Next returns the following position.
func (c Cursor) Next() Cursor { return Cursor{pos: c.pos + 1} }

// Advance returns the position n elements further (n may be negative).
func (c Cursor) Advance(n int) Cursor { return Cursor{pos: c.pos + n} }

// Index returns the element index c refers to.
func (c Cursor) Index() int { return c.pos }

// EqualArray reports whether a and b have the same length and equal
// elements.
func EqualArray[T comparable](a, b *Array[T]) bool {
	if a == b {
		return true
	}
	return slices.Equal(a.data, b.data)
}

// EqualArrayFunc reports whether a and b have the same length and eq holds
// for every pair of elements. The element types may differ.
func EqualArrayFunc[T, U any](a *Array[T], b *Array[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.data, b.data, eq)
}

// EqualNumeric reports whether a and b hold numerically equal elements,
// so that int(65) equals float64(65.0). Values are compared exactly:
// integers are never rounded through float64.
func EqualNumeric[T, U Number](a *Array[T], b *Array[U]) bool {
	return EqualArrayFunc(a, b, equalNumber[T, U])
}

func equalNumber[T, U Number](x T, y U) bool {
	switch xf, yf := isFloat[T](), isFloat[U](); {
	case xf && yf:
		return float64(x) == float64(y)
	case xf:
		return equalIntFloat(y, float64(x))
	case yf:
		return equalIntFloat(x, float64(y))
	}
	if x < 0 || y < 0 {
		return x < 0 && y < 0 && int64(x) == int64(y)
	}
	return uint64(x) == uint64(y)
}

// equalIntFloat compares the integer i with f. NaN, infinities and
// fractional or out-of-range values of f never match.
func equalIntFloat[I Number](i I, f float64) bool {
	if f != math.Trunc(f) {
		return false
	}
	if i < 0 {
		return f >= math.MinInt64 && f < 0 && int64(f) == int64(i)
	}
	return f >= 0 && f < 1<<64 && uint64(f) == uint64(i)
}

func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}
