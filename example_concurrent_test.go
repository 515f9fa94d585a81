// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains an example that guards a container with a spin lock
// built from atomix primitives. The race detector cannot see the
// acquire-release ordering of atomix operations and reports false
// positives, so the example is excluded from race testing.

package fixed_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/fixed"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// spinLock is a minimal test-and-set lock.
type spinLock struct {
	state atomix.Uint64
}

func (l *spinLock) Lock() {
	sw := spin.Wait{}
	for !l.state.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

func (l *spinLock) Unlock() {
	l.state.StoreRelease(0)
}

// Example_sharedQueue demonstrates external synchronization: containers are
// not safe for concurrent use, so every access goes through a lock.
func Example_sharedQueue() {
	var (
		mu   spinLock
		q    = fixed.NewQueue[int](8)
		wg   sync.WaitGroup
		done atomix.Int64
	)

	const producers, perProducer = 4, 100

	for p := range producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for i := range perProducer {
				v := id*perProducer + i
				for {
					mu.Lock()
					err := q.Push(v)
					mu.Unlock()
					if err == nil {
						break
					}
					backoff.Wait()
				}
				backoff.Reset()
			}
		}(p)
	}

	sum := 0
	backoff := iox.Backoff{}
	for done.Load() < producers*perProducer {
		mu.Lock()
		v, err := q.Dequeue()
		mu.Unlock()
		if fixed.IsWouldBlock(err) {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		sum += v
		done.Add(1)
	}
	wg.Wait()

	fmt.Println("received:", done.Load())
	fmt.Println("sum:", sum)

	// Output:
	// received: 400
	// sum: 79800
}
