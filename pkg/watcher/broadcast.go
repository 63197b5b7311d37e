package watcher

import "sync"

// Broadcast fans one event stream out to registered listeners.
//
// Cancellation is strict: once the cancel function returned by Listen has
// returned, the listener will not be invoked again, even if a Send was in
// flight when cancel was called (cancel blocks until the in-flight delivery
// to that listener completes). For the same reason a listener must not call
// its own cancel function from inside the callback.
type Broadcast[T any] struct {
	mu   sync.Mutex
	seq  uint64
	subs map[uint64]*listener[T]
}

type listener[T any] struct {
	mu     sync.Mutex
	closed bool
	fn     func(T)
}

// Listen registers fn and returns its cancel function.
// Cancel is idempotent.
func (b *Broadcast[T]) Listen(fn func(T)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[uint64]*listener[T])
	}
	b.seq++
	id := b.seq
	l := &listener[T]{fn: fn}
	b.subs[id] = l

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()

		// Block until any in-flight delivery finishes, then mark closed so a
		// delivery that already snapshotted this listener skips it.
		l.mu.Lock()
		l.closed = true
		l.mu.Unlock()
	}
}

// Send delivers ev to every listener registered at the time of the call.
// Listeners run sequentially on the calling goroutine.
func (b *Broadcast[T]) Send(ev T) {
	b.mu.Lock()
	snapshot := make([]*listener[T], 0, len(b.subs))
	for _, l := range b.subs {
		snapshot = append(snapshot, l)
	}
	b.mu.Unlock()

	for _, l := range snapshot {
		l.mu.Lock()
		if !l.closed {
			l.fn(ev)
		}
		l.mu.Unlock()
	}
}

// Len reports the number of registered listeners.
func (b *Broadcast[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
