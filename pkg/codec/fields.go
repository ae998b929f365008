package codec

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedField is returned for a width and byte order pair with no
// setter/getter. Only 32-bit big endian and 16-bit big or little endian exist.
var ErrUnsupportedField = errors.New("unsupported field layout")

// ByteOrder names the byte order of a fixed-width field.
type ByteOrder string

const (
	BigEndian    ByteOrder = "big"
	LittleEndian ByteOrder = "little"
)

// ParseByteOrder accepts "big" or "little" in any case. Empty means big endian.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", string(BigEndian):
		return BigEndian, nil
	case string(LittleEndian):
		return LittleEndian, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedField, "byte order %q", s)
	}
}

// Field describes a fixed-width signed integer slot.
type Field struct {
	Width int // bits: 16 or 32
	Order ByteOrder
}

// Size returns the number of bytes the field occupies.
func (f Field) Size() int {
	return f.Width / 8
}

func (f Field) validate() error {
	switch {
	case f.Width == 32 && f.Order == BigEndian:
	case f.Width == 16 && (f.Order == BigEndian || f.Order == LittleEndian):
	default:
		return errors.Wrapf(ErrUnsupportedField, "width %d, order %q", f.Width, f.Order)
	}
	return nil
}

// Encode returns value laid out as the field.
func (f Field) Encode(value int64) ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, f.Size())
	if f.Width == 32 {
		if value < math.MinInt32 || value > math.MaxInt32 {
			return nil, errors.Wrapf(ErrOutOfBounds, "value %d does not fit in 32 bits", value)
		}
		return buf, SetInt32(buf, 0, int32(value))
	}

	if value < math.MinInt16 || value > math.MaxInt16 {
		return nil, errors.Wrapf(ErrOutOfBounds, "value %d does not fit in 16 bits", value)
	}
	if f.Order == LittleEndian {
		return buf, SetInt16Little(buf, 0, int16(value))
	}
	return buf, SetInt16(buf, 0, int16(value))
}

// Decode reads the field from buf at off.
func (f Field) Decode(buf []byte, off int) (int64, error) {
	if err := f.validate(); err != nil {
		return 0, err
	}

	switch {
	case f.Width == 32:
		v, err := GetInt32(buf, off)
		return int64(v), err
	case f.Order == LittleEndian:
		v, err := GetInt16Little(buf, off)
		return int64(v), err
	default:
		v, err := GetInt16(buf, off)
		return int64(v), err
	}
}
