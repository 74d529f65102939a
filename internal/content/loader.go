package content

import (
	"context"
	"sync"
)

// Loader serialises fetches triggered by rapidly-changing input such as a
// language toggle or a route id. The last-issued fetch wins: a stale
// response arriving after a newer request is discarded, and closing the
// loader cancels whatever is still in flight.
type Loader[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewLoader constructs an idle loader.
func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{}
}

// Load starts fetch on its own goroutine. Any previous in-flight fetch is
// cancelled first. apply runs only when this fetch is still the most
// recently issued one and the loader has not been closed; stale or
// post-close results are dropped without observable effect.
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) (T, error), apply func(T, error)) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if l.cancel != nil {
		l.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.seq++
	seq := l.seq
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer cancel()

		value, err := fetch(fetchCtx)

		// The lock is held across apply so a result can never land after a
		// newer fetch's result. apply must not call back into the loader.
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed || seq != l.seq {
			return
		}
		if apply != nil {
			apply(value, err)
		}
	}()
}

// Close cancels the in-flight fetch and suppresses every future apply.
// Safe to call more than once.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	l.closed = true
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until every issued fetch goroutine has finished. Used by
// teardown paths and tests to guarantee nothing runs after return.
func (l *Loader[T]) Wait() {
	l.wg.Wait()
}
