// Package ready provides a gate for deferring work until a build completes.
//
// A development middleware can't serve anything while the bundle is being
// rebuilt, so requests arriving mid-build wait on a [Gate]. When the build
// finishes, [Gate.Done] releases the waiting callbacks in the order they
// arrived, passing each the build's result. Callbacks arriving after that are
// run immediately, until [Gate.Invalidate] signals a new build has started.
package ready

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Gate defers callbacks until a build result of type T is available. The zero
// value is not usable; create one with New.
type Gate[T any] struct {
	log       logrus.FieldLogger
	result    T
	callbacks []func(T)
	mu        sync.Mutex
	ready     bool
	hasResult bool
	flushing  bool
}

// Option configures a Gate.
type Option interface {
	apply(*config)
}

type config struct {
	log logrus.FieldLogger
}

type optionFunc func(*config)

func (o optionFunc) apply(c *config) {
	o(c)
}

// WithLogger sets the logger used to report waiting callbacks. Defaults to
// the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return optionFunc(func(c *config) {
		if logger != nil {
			c.log = logger
		}
	})
}

// New returns a Gate in the not-ready state.
func New[T any](opts ...Option) *Gate[T] {
	cfg := config{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	return &Gate[T]{log: cfg.log}
}

// Wait calls cb with the last build result if the build is complete.
// Otherwise cb is queued until the next call to Done. The name (typically
// the request URL) is only used for logging.
func (g *Gate[T]) Wait(name string, cb func(T)) {
	g.mu.Lock()

	if g.ready && !g.flushing {
		res := g.result
		g.mu.Unlock()

		cb(res)

		return
	}

	g.callbacks = append(g.callbacks, cb)
	g.mu.Unlock()

	msg := "wait until bundle finished"
	if name != "" {
		msg += ": " + name
	}

	g.log.Info(msg)
}

// Done marks the build complete with the given result, and runs all queued
// callbacks in the order they were queued. Callbacks queued while this is in
// progress are run too, after the earlier ones.
//
// Callbacks run on the calling goroutine, without the gate's lock held, so
// they may safely call back into the gate.
func (g *Gate[T]) Done(result T) {
	g.mu.Lock()

	g.result = result
	g.hasResult = true
	g.ready = true

	if g.flushing {
		// the goroutine already flushing will pick up the new result
		g.mu.Unlock()

		return
	}

	g.flushing = true

	for g.ready && len(g.callbacks) > 0 {
		cbs := g.callbacks
		g.callbacks = nil
		res := g.result

		g.mu.Unlock()

		for _, cb := range cbs {
			cb(res)
		}

		g.mu.Lock()
	}

	g.flushing = false
	g.mu.Unlock()
}

// Invalidate marks the build as in progress again, so that subsequent calls
// to Wait are queued. The last result is retained.
func (g *Gate[T]) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ready = false
}

// Ready reports whether the build is complete.
func (g *Gate[T]) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ready
}

// Result returns the last build result, and whether there has been one.
func (g *Gate[T]) Result() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.result, g.hasResult
}

// Pending returns the number of queued callbacks.
func (g *Gate[T]) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.callbacks)
}
