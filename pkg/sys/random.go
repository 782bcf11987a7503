package sys

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ErrShortRandom is returned when getrandom(2) succeeds but delivers
// fewer bytes than requested. No retry is attempted here; callers that
// need the full amount decide whether to call again. Any other error
// from Random or FillRandom means the syscall itself failed and wraps
// the errno.
var ErrShortRandom = errors.New("getrandom: short read")

// Integer constrains Random to fixed-width integer types. These are the
// types for which every bit pattern is a valid value, so overwriting
// their memory with raw kernel randomness cannot produce an invalid
// representation. Anything else — structs with padding, types carrying
// pointers, enumerations with invalid states — must go through
// FillRandom with an explicit byte buffer.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Random returns a value of type T filled entirely from the kernel's
// entropy source. Exactly unsafe.Sizeof(T) bytes are requested in a
// single getrandom(2) call; on any failure the zero value and an error
// come back, never a partially randomized one.
func Random[T Integer]() (T, error) {
	var v T
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	if err := FillRandom(buf); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// FillRandom overwrites buf with bytes from getrandom(2). If it returns
// an error the contents of buf are undefined and must be discarded: a
// partial fill reports ErrShortRandom with the counts, a failed call
// wraps the errno.
func FillRandom(buf []byte) error {
	n, err := unix.Getrandom(buf, 0)
	if err != nil {
		return fmt.Errorf("getrandom: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortRandom, n, len(buf))
	}
	return nil
}
