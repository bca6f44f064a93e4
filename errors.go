package bitutil

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is wrapped by errors returned from the _ToNew allocator
	// variants when the supplied Allocator fails to produce a buffer.
	ErrAllocation = errors.New("bitutil: buffer allocation failed")

	// ErrPrecondition backs the panics raised by checkSpan/checkWords.
	// Negative lengths, negative offsets, and misaligned fast-path
	// offsets are programmer errors, not runtime conditions — callers
	// that choose to recover from a panic can still errors.Is it against
	// ErrPrecondition.
	ErrPrecondition = errors.New("bitutil: precondition violated")

	// ErrInvalidLength is wrapped by the panic checkSpan raises when a
	// buffer operation is asked to run over a negative length.
	ErrInvalidLength = fmt.Errorf("%w: length must be non-negative", ErrPrecondition)
)

// allocationError wraps an Allocator failure with the request that caused it.
type allocationError struct {
	bitLength int64
	cause     error
}

func (e *allocationError) Error() string {
	return fmt.Sprintf("bitutil: failed to allocate %d-bit bitmap: %v", e.bitLength, e.cause)
}

func (e *allocationError) Unwrap() error { return errors.Join(ErrAllocation, e.cause) }

func newAllocationError(bitLength int64, cause error) error {
	return &allocationError{bitLength: bitLength, cause: cause}
}

// checkSpan panics with an error wrapping ErrPrecondition if offset or
// length is negative. It is the Go stand-in for the DCHECK_GE assertions
// in the original C++ implementation.
func checkSpan(offset, length int64) {
	if offset < 0 {
		panic(fmt.Errorf("%w: negative offset %d", ErrPrecondition, offset))
	}
	if length < 0 {
		panic(fmt.Errorf("%w: negative length %d", ErrInvalidLength, length))
	}
}

// checkWords panics with an error wrapping ErrPrecondition if the given
// bit offsets are not congruent mod 8. It is the Go stand-in for the
// alignment DCHECKs guarding the original's word-parallel path: the
// byte-aligned fast path only ever runs when every offset it touches
// shares the same remainder mod 8, and this asserts that invariant at
// the one place it's assumed rather than re-deriving it ad hoc.
func checkWords(offsets ...int64) {
	if len(offsets) == 0 {
		return
	}
	want := offsets[0] % 8
	for _, o := range offsets[1:] {
		if o%8 != want {
			panic(fmt.Errorf("%w: offsets %v are not congruent mod 8", ErrPrecondition, offsets))
		}
	}
}
