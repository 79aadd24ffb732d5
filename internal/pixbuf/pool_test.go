// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"sync"
	"testing"
)

func TestPool_BucketLimit(t *testing.T) {
	pool := NewPool(2)
	for range 4 {
		buf, _ := New(8, 8)
		buf.release()
		pool.put(buf)
	}
	if pool.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pool.Len())
	}
}

func TestPool_GeometryBuckets(t *testing.T) {
	pool := NewPool(0)
	a, _ := NewWithStride(8, 8, 32)
	b, _ := NewWithStride(8, 8, 64)
	pool.put(a)
	pool.put(b)

	if got := pool.get(8, 8, 64); got != b {
		t.Error("get() returned buffer from the wrong bucket")
	}
	if got := pool.get(8, 8, 64); got != nil {
		t.Error("get() on empty bucket should return nil")
	}
	if got := pool.get(8, 8, 32); got != a {
		t.Error("get() lost the 32-byte stride buffer")
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(4)
	a := NewAllocator(WithPool(pool), WithRowAlignment(1))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				buf, err := a.Allocate(16, 16)
				if err != nil {
					t.Error(err)
					return
				}
				_ = buf.Fill([4]byte{1, 1, 1, 1})
				a.Release(buf)
			}
		}()
	}
	wg.Wait()

	if pool.Len() > 4 {
		t.Errorf("Len() = %d, want <= 4", pool.Len())
	}
}
