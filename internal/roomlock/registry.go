// Package roomlock serializes booking attempts per room.
//
// The Registry is process-local: two instances of the service running
// against the same store do not see each other's locks. Guard is the seam
// for a storage-level or distributed implementation.
package roomlock

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Guard hands out exclusive per-room locks.
type Guard interface {
	Acquire(ctx context.Context, roomID int64) (Releaser, error)
}

// Releaser gives a held lock back. Calling Release more than once is a no-op.
type Releaser interface {
	Release()
}

// Registry is the in-process Guard. Locks are created on first use and never removed.
type Registry struct {
	locks sync.Map // int64 -> *semaphore.Weighted
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Acquire blocks until the lock for roomID is held or ctx is done. On error
// nothing is held.
func (r *Registry) Acquire(ctx context.Context, roomID int64) (Releaser, error) {
	sem := r.lockFor(roomID)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return &release{sem: sem}, nil
}

func (r *Registry) lockFor(roomID int64) *semaphore.Weighted {
	if existing, ok := r.locks.Load(roomID); ok {
		return existing.(*semaphore.Weighted)
	}
	actual, _ := r.locks.LoadOrStore(roomID, semaphore.NewWeighted(1))
	return actual.(*semaphore.Weighted)
}

// Size is the number of rooms that have ever been locked.
func (r *Registry) Size() int {
	n := 0
	r.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

type release struct {
	sem  *semaphore.Weighted
	once sync.Once
}

func (l *release) Release() {
	l.once.Do(func() {
		l.sem.Release(1)
	})
}
