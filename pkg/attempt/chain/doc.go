// Package chain provides a fluent wrapper around Attempt[T]
// for building synchronous success/failure chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching attempts at each step.
//
// Key operations:
// - Start/FromValue/Of: begin a chain from an Attempt[T], a value, or a function
// - Then: switch to a new Attempt[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Assert: fail the chain when a predicate does not hold
// - Ensure: run side effects on success without changing the attempt
// - OrElse/Finally: collapse the chain into a final value
package chain
