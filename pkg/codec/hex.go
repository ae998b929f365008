package codec

import "github.com/cockroachdb/errors"

// ToHexChar writes the two uppercase ASCII hex digits of value into
// dest[off] and dest[off+1], high nibble first.
func ToHexChar(dest []byte, off int, value byte) error {
	if err := checkField(dest, off, 2); err != nil {
		return err
	}

	dest[off] = hexDigit((value >> 4) & 0x0F)
	dest[off+1] = hexDigit(value & 0x0F)
	return nil
}

func hexDigit(nibble byte) byte {
	if nibble >= 10 {
		return nibble - 10 + 'A'
	}
	return nibble + '0'
}

// ToHexString renders n bytes of src starting at off as 2*n uppercase hex
// digits with no separators.
func ToHexString(src []byte, off, n int) (string, error) {
	if src == nil {
		return "", nullBuffer("source")
	}
	if err := CheckRange(len(src), off, n); err != nil {
		return "", err
	}

	dest := make([]byte, n*2)
	for i := 0; i < n; i++ {
		if err := ToHexChar(dest, i*2, src[off+i]); err != nil {
			return "", err
		}
	}
	return string(dest), nil
}

// DecodeHex parses a hex dump produced by ToHexString. Lowercase digits are
// accepted. An odd length or a non-hex character yields ErrInvalidHex.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidHex, "odd length %d", len(s))
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, ok := nibble(s[2*i])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidHex, "bad digit %q at %d", s[2*i], 2*i)
		}
		lo, ok := nibble(s[2*i+1])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidHex, "bad digit %q at %d", s[2*i+1], 2*i+1)
		}
		out[i] = (hi<<4)&0xF0 | lo&0x0F
	}
	return out, nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
