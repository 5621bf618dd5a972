package attempt

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful payload
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the attempt failed
	Err() error
	// IsSuccess returns true if the attempt succeeded
	IsSuccess() bool
}
