package vecmap

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityOverflow is returned when the requested capacity can't be
	// represented: the element count or its size in bytes overflows int.
	ErrCapacityOverflow = errors.New("capacity overflow")

	// ErrAllocFailed is returned when the runtime can't allocate the
	// requested capacity.
	ErrAllocFailed = errors.New("memory allocation failed")

	// ErrUnsupportedKey is returned when a map key can't be encoded as an
	// object key.
	ErrUnsupportedKey = errors.New("unsupported key type")
)

// ReserveError is returned by TryReserve.
type ReserveError struct {
	// Number of additional elements requested.
	Additional int
	// One of ErrCapacityOverflow or ErrAllocFailed.
	Err error
}

func (e *ReserveError) Error() string {
	return fmt.Sprintf("vecmap: reserve %d: %v", e.Additional, e.Err)
}

func (e *ReserveError) Unwrap() error {
	return e.Err
}
