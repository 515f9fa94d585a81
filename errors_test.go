// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/fixed"
	"code.hybscloud.com/iox"
)

func TestErrorClassification(t *testing.T) {
	if fixed.ErrWouldBlock != iox.ErrWouldBlock {
		t.Fatalf("ErrWouldBlock: not aliased to iox.ErrWouldBlock")
	}

	for _, err := range []error{fixed.ErrFull, fixed.ErrEmpty, fmt.Errorf("push: %w", fixed.ErrFull)} {
		if !errors.Is(err, fixed.ErrWouldBlock) {
			t.Fatalf("errors.Is(%v, ErrWouldBlock): got false", err)
		}
		if !fixed.IsWouldBlock(err) {
			t.Fatalf("IsWouldBlock(%v): got false", err)
		}
	}

	if errors.Is(fixed.ErrFull, fixed.ErrEmpty) || errors.Is(fixed.ErrEmpty, fixed.ErrFull) {
		t.Fatalf("ErrFull and ErrEmpty must be distinguishable")
	}

	if !fixed.IsSemantic(fixed.ErrWouldBlock) {
		t.Fatalf("IsSemantic(ErrWouldBlock): got false")
	}
	if !fixed.IsNonFailure(nil) || !fixed.IsNonFailure(fixed.ErrWouldBlock) {
		t.Fatalf("IsNonFailure: got false for nil or ErrWouldBlock")
	}

	other := errors.New("boom")
	if fixed.IsWouldBlock(other) || fixed.IsSemantic(other) || fixed.IsNonFailure(other) {
		t.Fatalf("unrelated error classified as control flow")
	}
}

func TestFullErrorFromContainers(t *testing.T) {
	q := fixed.NewQueue[int](1)
	s := fixed.NewStack[int](1)
	q.Push(1)
	s.Push(1)

	if err := q.Push(2); !fixed.IsWouldBlock(err) {
		t.Fatalf("Queue.Push on full: got %v, want would-block", err)
	}
	if err := s.Push(2); !fixed.IsWouldBlock(err) {
		t.Fatalf("Stack.Push on full: got %v, want would-block", err)
	}
}
