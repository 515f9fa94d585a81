// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// It is the root of [ErrFull] and [ErrEmpty]. Both are control flow
// signals, not failures: the container state is unchanged and the caller
// decides whether to drop, retry later, or make room.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrFull is returned by Push, Emplace and Enqueue when the container holds
// Cap() elements. The rejected value is not stored.
var ErrFull = fmt.Errorf("fixed: container is full: %w", ErrWouldBlock)

// ErrEmpty is returned by Dequeue and Take when there is nothing to remove.
var ErrEmpty = fmt.Errorf("fixed: container is empty: %w", ErrWouldBlock)

// IsWouldBlock reports whether err indicates the operation would block.
// True for [ErrFull] and [ErrEmpty].
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
