// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Attempt[T] values.
//
// It parallels the chain package but keeps API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose attempt-returning or error-returning functions
// - Map/Assert: transform or check the successful value
// - RepeatUntil/While/Or/And: loop and combine chains
// - Ensure: trigger side effects without changing the attempt
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability without introducing channels.
package tiny
