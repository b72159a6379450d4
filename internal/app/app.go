// Package app runs a demo's shutdown on the main thread.
//
// GLFW must be terminated from the thread that initialized it, but xlab/closer
// runs bound cleanups on its own goroutine when a signal arrives. The bound
// cleanup here only cancels the context and waits; the main thread notices
// the cancellation, unwinds its GL objects and releases the waiter.
package app

import (
	"context"
	"log"
	"sync"

	"github.com/xlab/closer"
)

// Lifecycle owns the cleanup stack of one binary
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	cleanups []func()
	once     sync.Once
}

// Start sets the log prefix and hooks the lifecycle into closer
func Start(name string) *Lifecycle {
	log.SetFlags(0)
	log.SetPrefix(name + ": ")

	l := newLifecycle()
	closer.Bind(func() {
		l.cancel()
		<-l.done
	})
	return l
}

func newLifecycle() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel, done: make(chan struct{})}
}

// Context is cancelled when the process is asked to stop
func (l *Lifecycle) Context() context.Context {
	return l.ctx
}

// Defer registers fn to run at shutdown. Cleanups run last-in first-out.
func (l *Lifecycle) Defer(fn func()) {
	l.mu.Lock()
	l.cleanups = append(l.cleanups, fn)
	l.mu.Unlock()
}

// Exit runs the cleanups and exits with status 0. Call from the main goroutine.
func (l *Lifecycle) Exit() {
	l.shutdown()
	closer.Close()
}

// Fatal runs the cleanups, logs err and exits with a non-zero status.
// Call from the main goroutine.
func (l *Lifecycle) Fatal(err error) {
	l.shutdown()
	closer.Fatalln(err)
}

func (l *Lifecycle) shutdown() {
	l.once.Do(func() {
		l.cancel()
		l.mu.Lock()
		cleanups := l.cleanups
		l.cleanups = nil
		l.mu.Unlock()
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		close(l.done)
	})
}
