// Package workerpool runs blocking tasks on a bounded number of goroutines.
package workerpool

import (
	"context"

	"golang.org/x/sync/semaphore"
)

type Pool struct {
	sem  *semaphore.Weighted
	size int
}

func New(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size)), size: size}
}

func (p *Pool) Size() int { return p.size }

type result[T any] struct {
	value T
	err   error
}

// Run waits for a free slot, executes fn on its own goroutine and returns its
// result. When ctx ends first Run returns ctx.Err(); fn sees the same ctx, and
// its slot is released once it returns.
func Run[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, err
	}

	done := make(chan result[T], 1)
	go func() {
		defer p.sem.Release(1)
		v, err := fn(ctx)
		done <- result[T]{value: v, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
