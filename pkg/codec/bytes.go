package codec

// CopyElements copies n elements from src[srcOff:] to dest[destOff:].
// Both ranges are validated before anything is written. Overlapping
// regions of the same backing array are not guaranteed to be copied
// in any particular order.
func CopyElements[T any](src []T, srcOff int, dest []T, destOff int, n int) error {
	if src == nil {
		return nullBuffer("source")
	}
	if dest == nil {
		return nullBuffer("destination")
	}
	if err := CheckRange(len(src), srcOff, n); err != nil {
		return err
	}
	if err := CheckRange(len(dest), destOff, n); err != nil {
		return err
	}

	copy(dest[destOff:destOff+n], src[srcOff:srcOff+n])
	return nil
}

// CloneElements returns a new slice holding n elements of src starting at off.
func CloneElements[T any](src []T, off, n int) ([]T, error) {
	if src == nil {
		return nil, nullBuffer("source")
	}
	if err := CheckRange(len(src), off, n); err != nil {
		return nil, err
	}

	out := make([]T, n)
	copy(out, src[off:off+n])
	return out, nil
}

// Copy copies n bytes from src[srcOff:] to dest[destOff:].
func Copy(src []byte, srcOff int, dest []byte, destOff int, n int) error {
	return CopyElements(src, srcOff, dest, destOff, n)
}

// CloneBytes returns a copy of n bytes of src starting at off.
func CloneBytes(src []byte, off, n int) ([]byte, error) {
	return CloneElements(src, off, n)
}

// Fill sets n consecutive bytes of buf, starting at off, to value.
func Fill(buf []byte, off, n int, value byte) error {
	if buf == nil {
		return nullBuffer("target")
	}
	if err := CheckRange(len(buf), off, n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		buf[off+i] = value
	}
	return nil
}

// Compare compares n bytes of a starting at aOff with n bytes of b starting
// at bOff. It returns -1 or +1 according to the first unequal pair (bytes
// compared as unsigned values) and 0 when all n pairs match.
func Compare(a []byte, aOff int, b []byte, bOff int, n int) (int, error) {
	if a == nil || b == nil {
		return 0, nullBuffer("comparison")
	}
	if err := CheckRange(len(a), aOff, n); err != nil {
		return 0, err
	}
	if err := CheckRange(len(b), bOff, n); err != nil {
		return 0, err
	}

	for i := 0; i < n; i++ {
		x, y := a[aOff+i], b[bOff+i]
		if x != y {
			if x < y {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, nil
}
