// Package solo contains single-value, synchronous primitives that operate
// on Attempt[T]. These functions form the core building blocks for
// error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Attempt[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Assert/AssertAll: check predicates against the payload, joining errors
// - Switch: move from Attempt[In] to Attempt[Out]
// - Map/DoubleMap: transform successful values (with optional error/cancel maps)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
