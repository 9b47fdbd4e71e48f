// Package fetch models a data request that either completed before the call
// returned or is still in flight.
//
// Callers branch on IsReady right after asking for data: a ready value is
// used on the spot, a pending one is awaited off the UI goroutine (usually
// inside a tea.Cmd) while a spinner is shown.
package fetch

// Result is either Ready with a value or Pending with a way to wait for it.
type Result[T any] struct {
	ready bool
	value T
	await func() T
}

// Ready wraps a value that is already available.
func Ready[T any](v T) Result[T] {
	return Result[T]{ready: true, value: v}
}

// Pending wraps a blocking function producing the value later. A nil
// function yields the zero value when awaited.
func Pending[T any](await func() T) Result[T] {
	return Result[T]{await: await}
}

// IsReady reports whether the value is available without waiting.
func (r Result[T]) IsReady() bool {
	return r.ready
}

// Value returns the value of a ready result and the zero value otherwise.
func (r Result[T]) Value() T {
	return r.value
}

// Await returns the value, blocking for a pending result.
func (r Result[T]) Await() T {
	if r.ready {
		return r.value
	}
	if r.await == nil {
		var zero T
		return zero
	}
	return r.await()
}
