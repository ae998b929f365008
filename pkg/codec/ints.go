package codec

// Multi-byte values are written and read one byte at a time with explicit
// shifts and 0xFF masks so the result never depends on host byte order.

const (
	int32Size = 4
	int16Size = 2
)

func checkField(buf []byte, off, size int) error {
	if buf == nil {
		return nullBuffer("target")
	}
	return CheckRange(len(buf), off, size)
}

// SetInt32 writes value into buf[off:off+4] in big-endian order.
func SetInt32(buf []byte, off int, value int32) error {
	if err := checkField(buf, off, int32Size); err != nil {
		return err
	}

	for i := 0; i < int32Size; i++ {
		buf[off+int32Size-1-i] = byte((value >> (i * 8)) & 0xFF)
	}
	return nil
}

// GetInt32 reads a big-endian 32-bit signed integer from buf[off:off+4].
func GetInt32(buf []byte, off int) (int32, error) {
	if err := checkField(buf, off, int32Size); err != nil {
		return 0, err
	}

	var x int32
	for i := 0; i < int32Size; i++ {
		x <<= 8
		x |= int32(buf[off+i]) & 0xFF
	}
	return x, nil
}

// MakeInt32 composes a 32-bit signed integer from four bytes, most
// significant first.
func MakeInt32(b1, b2, b3, b4 byte) int32 {
	return (int32(b1)&0xFF)<<24 | (int32(b2)&0xFF)<<16 | (int32(b3)&0xFF)<<8 | int32(b4)&0xFF
}

// SetInt16 writes value into buf[off:off+2] in big-endian order.
func SetInt16(buf []byte, off int, value int16) error {
	if err := checkField(buf, off, int16Size); err != nil {
		return err
	}

	for i := 0; i < int16Size; i++ {
		buf[off+int16Size-1-i] = byte((value >> (i * 8)) & 0xFF)
	}
	return nil
}

// GetInt16 reads a big-endian 16-bit signed integer from buf[off:off+2].
func GetInt16(buf []byte, off int) (int16, error) {
	if err := checkField(buf, off, int16Size); err != nil {
		return 0, err
	}

	var s int16
	for i := 0; i < int16Size; i++ {
		s <<= 8
		s |= int16(buf[off+i]) & 0xFF
	}
	return s, nil
}

// MakeInt16 composes a 16-bit signed integer from two bytes, most significant first.
func MakeInt16(b1, b2 byte) int16 {
	return (int16(b1)&0xFF)<<8 | int16(b2)&0xFF
}

// SetInt16Little writes value into buf[off:off+2] in little-endian order.
func SetInt16Little(buf []byte, off int, value int16) error {
	if err := checkField(buf, off, int16Size); err != nil {
		return err
	}

	buf[off] = byte(value & 0xFF)
	buf[off+1] = byte((value >> 8) & 0xFF)
	return nil
}

// GetInt16Little reads a little-endian 16-bit signed integer from buf[off:off+2].
func GetInt16Little(buf []byte, off int) (int16, error) {
	if err := checkField(buf, off, int16Size); err != nil {
		return 0, err
	}

	return (int16(buf[off+1])&0xFF)<<8 | int16(buf[off])&0xFF, nil
}

// MakeInt16Little composes a 16-bit signed integer from two bytes, least
// significant first.
func MakeInt16Little(b1, b2 byte) int16 {
	return (int16(b2)&0xFF)<<8 | int16(b1)&0xFF
}
