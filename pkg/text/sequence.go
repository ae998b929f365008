package text

import (
	"unicode/utf16"

	"github.com/cockroachdb/errors"
	"github.com/ssargent/charseq/pkg/codec"
)

// NotFound is returned by the index searches when no match exists.
const NotFound = -1

// Sequence is an immutable run of 16-bit code units. Every operation that
// looks like a modification returns a new Sequence.
type Sequence struct {
	units []uint16
}

var empty = &Sequence{units: []uint16{}}

// Empty returns the zero-length sequence.
func Empty() *Sequence {
	return empty
}

// FromChars returns a sequence holding a copy of c. A nil slice yields the
// empty sequence.
func FromChars(c []uint16) *Sequence {
	units := make([]uint16, len(c))
	copy(units, c)
	return &Sequence{units: units}
}

// FromCharRange returns a sequence holding a copy of c[off:off+n].
func FromCharRange(c []uint16, off, n int) (*Sequence, error) {
	if c == nil {
		return nil, errors.Wrap(codec.ErrNullReference, "character array is nil")
	}
	if err := codec.CheckRange(len(c), off, n); err != nil {
		return nil, err
	}

	units := make([]uint16, n)
	if err := codec.CopyElements(c, off, units, 0, n); err != nil {
		return nil, err
	}
	return &Sequence{units: units}, nil
}

// FromBytes returns a sequence with one code unit per byte of b, each byte
// zero-extended.
func FromBytes(b []byte) *Sequence {
	units := make([]uint16, len(b))
	for i, c := range b {
		units[i] = uint16(c) & 0x00FF
	}
	return &Sequence{units: units}
}

// FromByteRange is FromBytes over b[off:off+n].
func FromByteRange(b []byte, off, n int) (*Sequence, error) {
	if b == nil {
		return nil, errors.Wrap(codec.ErrNullReference, "byte array is nil")
	}
	if err := codec.CheckRange(len(b), off, n); err != nil {
		return nil, err
	}
	return FromBytes(b[off : off+n]), nil
}

// FromString returns the UTF-16 code units of s.
func FromString(s string) *Sequence {
	units := utf16.Encode([]rune(s))
	if units == nil {
		units = []uint16{}
	}
	return &Sequence{units: units}
}

// ConcatAll allocates one sequence holding the fragments' contents in order.
// Nil fragments contribute nothing.
func ConcatAll(fragments ...*Sequence) *Sequence {
	n := 0
	for _, f := range fragments {
		if f != nil {
			n += len(f.units)
		}
	}

	units := make([]uint16, n)
	j := 0
	for _, f := range fragments {
		if f == nil {
			continue
		}
		j += copy(units[j:], f.units)
	}
	return &Sequence{units: units}
}

// Len returns the number of code units.
func (s *Sequence) Len() int {
	return len(s.units)
}

// CharAt returns the code unit at position i.
func (s *Sequence) CharAt(i int) (uint16, error) {
	if err := codec.CheckIndex(len(s.units), i); err != nil {
		return 0, err
	}
	return s.units[i], nil
}

// Substring returns the code units in the half-open range [start, end).
func (s *Sequence) Substring(start, end int) (*Sequence, error) {
	if start > end {
		return nil, errors.Wrapf(codec.ErrOutOfBounds, "substring start %d after end %d", start, end)
	}
	units := s.units
	if units == nil {
		units = empty.units
	}
	return FromCharRange(units, start, end-start)
}

// SubstringFrom returns the code units from start to the end of the sequence.
func (s *Sequence) SubstringFrom(start int) (*Sequence, error) {
	return s.Substring(start, len(s.units))
}

// IndexOf returns the first position at or after from holding ch, or NotFound.
func (s *Sequence) IndexOf(ch uint16, from int) int {
	if from >= len(s.units) {
		return NotFound
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s.units); i++ {
		if s.units[i] == ch {
			return i
		}
	}
	return NotFound
}

// IndexOfChar returns the first position holding ch, or NotFound.
func (s *Sequence) IndexOfChar(ch uint16) int {
	return s.IndexOf(ch, 0)
}

// LastIndexOf scans backward from position from and returns the last
// position at or before it holding ch, or NotFound. A negative from is
// treated as 0; a from at or past the end finds nothing.
func (s *Sequence) LastIndexOf(ch uint16, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(s.units) {
		return NotFound
	}
	for i := from; i >= 0; i-- {
		if s.units[i] == ch {
			return i
		}
	}
	return NotFound
}

// LastIndexOfChar returns the last position holding ch, or NotFound.
func (s *Sequence) LastIndexOfChar(ch uint16) int {
	return s.LastIndexOf(ch, len(s.units)-1)
}

// StartsWith reports whether prefix occurs at position off.
func (s *Sequence) StartsWith(prefix *Sequence, off int) bool {
	if prefix == nil || off < 0 || off+len(prefix.units) > len(s.units) {
		return false
	}
	for i, u := range prefix.units {
		if s.units[off+i] != u {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the sequence begins with prefix.
func (s *Sequence) HasPrefix(prefix *Sequence) bool {
	return s.StartsWith(prefix, 0)
}

// EndsWith reports whether the sequence ends with suffix.
func (s *Sequence) EndsWith(suffix *Sequence) bool {
	if suffix == nil {
		return false
	}
	return s.StartsWith(suffix, len(s.units)-len(suffix.units))
}

// Equal reports whether other has the same length and code units.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	if len(s.units) != len(other.units) {
		return false
	}
	for i := range s.units {
		if s.units[i] != other.units[i] {
			return false
		}
	}
	return true
}

// CompareTo returns -1 at the first mismatching position within the
// overlapping length, whichever side holds the larger unit. If the overlap
// matches it returns 0 for equal lengths and 1 otherwise. It is an
// equality test with a length hint, not a lexicographic order. A nil other
// compares as the empty sequence.
func (s *Sequence) CompareTo(other *Sequence) int {
	if other == nil {
		other = empty
	}
	for i := 0; i < len(other.units) && i < len(s.units); i++ {
		if other.units[i] != s.units[i] {
			return -1
		}
	}
	if len(other.units) == len(s.units) {
		return 0
	}
	return 1
}

// Concat returns the receiver followed by other. If other is nil or empty
// the receiver itself is returned.
func (s *Sequence) Concat(other *Sequence) *Sequence {
	if other == nil || len(other.units) == 0 {
		return s
	}
	return ConcatAll(s, other)
}

// ToCharArray returns a copy of the code units.
func (s *Sequence) ToCharArray() []uint16 {
	out := make([]uint16, len(s.units))
	copy(out, s.units)
	return out
}

// Bytes returns the low 8 bits of every code unit.
func (s *Sequence) Bytes() []byte {
	out := make([]byte, len(s.units))
	for i, u := range s.units {
		out[i] = byte(u)
	}
	return out
}

// String decodes the code units as UTF-16.
func (s *Sequence) String() string {
	return string(utf16.Decode(s.units))
}
