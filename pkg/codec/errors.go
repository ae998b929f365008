package codec

import "github.com/cockroachdb/errors"

var (
	// ErrNullReference is returned when an operation receives a nil buffer
	// where one is required.
	ErrNullReference = errors.New("null reference")

	// ErrOutOfBounds is returned when an offset, length or index falls
	// outside the valid range of a buffer.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrCorruptRecord is returned when a text record fails size or CRC validation.
	ErrCorruptRecord = errors.New("corrupt text record")

	// ErrInvalidHex is returned when a hex dump cannot be parsed.
	ErrInvalidHex = errors.New("invalid hex")
)

// CheckRange verifies that [off, off+n) lies inside a buffer of the given size.
// Every codec operation runs it before touching a buffer.
func CheckRange(size, off, n int) error {
	if off < 0 || n < 0 || off > size || size-off < n {
		return errors.Wrapf(ErrOutOfBounds, "range offset=%d length=%d outside buffer of length %d", off, n, size)
	}
	return nil
}

// CheckIndex verifies that i addresses an element of a buffer of the given size.
func CheckIndex(size, i int) error {
	if i < 0 || i >= size {
		return errors.Wrapf(ErrOutOfBounds, "index %d outside [0,%d)", i, size)
	}
	return nil
}

func nullBuffer(name string) error {
	return errors.Wrapf(ErrNullReference, "%s buffer is nil", name)
}
