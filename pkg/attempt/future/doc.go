// Package future models a pending asynchronous attempt as a one-shot
// receive channel of Attempt[T]. The package never schedules anything on
// its own: Go starts exactly one goroutine per wrapped function, and the
// continuation helpers register on an upstream channel and settle a
// downstream one.
//
// Key operations:
// - Go/GoSwitch: run a function asynchronously inside the fault boundary
// - Settled: lift an already-settled attempt into a future
// - Then/Map/Try/Tee: register continuations, short-circuiting on failure
// - Await: block for settlement, failing on cancellation
package future
