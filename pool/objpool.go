// File: pool/objpool.go
// Generic recycling for transient helper objects around the block machinery.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

// ObjectPool recycles transient helper objects (per-request writers and
// readers) so hot paths do not allocate one per use.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool is an ObjectPool backed by sync.Pool. An optional reset hook
// runs on every object handed back through Put, so recycled instances
// come out of Get in their initial state.
type SyncPool[T any] struct {
	inner sync.Pool
	reset func(T)
}

// NewSyncPool builds a pool that creates instances with create.
func NewSyncPool[T any](create func() T) *SyncPool[T] {
	return NewSyncPoolWithReset(create, nil)
}

// NewSyncPoolWithReset builds a pool that runs reset before parking an
// object. Callers pooling writers or readers reset them here rather than
// at every Get site.
func NewSyncPoolWithReset[T any](create func() T, reset func(T)) *SyncPool[T] {
	sp := &SyncPool[T]{reset: reset}
	sp.inner.New = func() any { return create() }
	return sp
}

// Get returns a recycled instance, creating a fresh one on a miss.
func (sp *SyncPool[T]) Get() T {
	return sp.inner.Get().(T)
}

// Put parks obj for reuse, resetting it first when a hook is set.
func (sp *SyncPool[T]) Put(obj T) {
	if sp.reset != nil {
		sp.reset(obj)
	}
	sp.inner.Put(obj)
}

var _ ObjectPool[int] = (*SyncPool[int])(nil)
