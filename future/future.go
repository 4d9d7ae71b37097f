// Package future implements the deferred launch primitive the execution
// engine uses to represent an in-flight resolver call (spec.md §4.2, §5:
// "resolve returns a Future<Value>; work happens at .Get(), not at
// construction time").
//
// botobag-artemis's concurrent/future package models this with a Poll/Waker
// pair because its resolvers may run on arbitrary goroutines and a caller
// needs to park without busy-waiting. spec.md §5 is explicit that the core
// itself needs no async runtime ("a synchronous, memoized thunk is
// sufficient; no goroutine pool is mandated by this design"), so this
// package keeps artemis's shape — a value computed once and cached — but
// drops its scheduler integration in favor of a plain sync.Once.
package future

import "sync"

// Future is a deferred, memoized computation of an interface{} value. The
// computation does not run until the first call to Get; subsequent calls
// return the cached result without re-invoking the underlying function.
type Future struct {
	once sync.Once
	fn   func() (interface{}, error)
	val  interface{}
	err  error
}

// New defers fn, returning a Future that will run it on first Get.
func New(fn func() (interface{}, error)) *Future {
	return &Future{fn: fn}
}

// Done returns an already-resolved Future, useful at leaf call sites that
// have a value in hand and want to satisfy a Future-typed interface
// without an extra allocation-avoiding closure.
func Done(val interface{}, err error) *Future {
	f := &Future{val: val, err: err}
	f.once.Do(func() {}) // mark resolved; fn is never consulted
	return f
}

// Get runs the deferred computation on the first call and returns its
// cached result on every subsequent call.
func (f *Future) Get() (interface{}, error) {
	f.once.Do(func() {
		if f.fn != nil {
			f.val, f.err = f.fn()
		}
	})
	return f.val, f.err
}

// Map derives a new Future that applies fn to f's result once f resolves,
// without forcing f eagerly.
func (f *Future) Map(fn func(interface{}) (interface{}, error)) *Future {
	return New(func() (interface{}, error) {
		v, err := f.Get()
		if err != nil {
			return nil, err
		}
		return fn(v)
	})
}

// Join waits for every Future in fs and returns their results in order,
// stopping at the first error (spec.md §7: "propagation aborts the whole
// operation on first failure").
func Join(fs []*Future) ([]interface{}, error) {
	out := make([]interface{}, len(fs))
	for i, f := range fs {
		v, err := f.Get()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
