package hashmap

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned when a computed bucket index falls
	// outside of the bucket array. It should never happen.
	ErrIndexOutOfRange = errors.New("hashmap: index out of range")

	// ErrInvalidConfiguration is returned by New for a non-positive
	// capacity or load factor.
	ErrInvalidConfiguration = errors.New("hashmap: invalid configuration")
)
