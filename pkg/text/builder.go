package text

// DefaultBuilderCapacity is the number of fragment slots a new Builder starts with.
const DefaultBuilderCapacity = 4

// Builder accumulates fragments and defers concatenation until Sequence is
// called. Stored fragments are never modified; growth only replaces the
// slot array. A Builder must not be shared between goroutines.
//
// The zero value is an empty builder ready to use.
type Builder struct {
	fragments []*Sequence
	count     int
}

// NewBuilder returns an empty builder with the default capacity.
func NewBuilder() *Builder {
	return NewBuilderSize(DefaultBuilderCapacity)
}

// NewBuilderSize returns an empty builder with room for capacity fragments.
// Non-positive capacities fall back to the default.
func NewBuilderSize(capacity int) *Builder {
	if capacity < 1 {
		capacity = DefaultBuilderCapacity
	}
	return &Builder{fragments: make([]*Sequence, capacity)}
}

// NewBuilderFrom returns a builder seeded with s.
func NewBuilderFrom(s *Sequence) *Builder {
	return NewBuilder().Append(s)
}

// Append stores s as the next fragment. A nil s is ignored.
func (b *Builder) Append(s *Sequence) *Builder {
	if s == nil {
		return b
	}
	if b.count == len(b.fragments) {
		b.grow()
	}
	b.fragments[b.count] = s
	b.count++
	return b
}

// grow doubles the slot array, keeping existing fragment references in order.
func (b *Builder) grow() {
	size := len(b.fragments) * 2
	if size == 0 {
		size = DefaultBuilderCapacity
	}
	fragments := make([]*Sequence, size)
	copy(fragments, b.fragments[:b.count])
	b.fragments = fragments
}

// AppendBool appends "true" or "false".
func (b *Builder) AppendBool(v bool) *Builder {
	return b.Append(FormatBool(v))
}

// AppendChar appends a single code unit.
func (b *Builder) AppendChar(c uint16) *Builder {
	return b.Append(FormatChar(c))
}

// AppendInt appends the decimal representation of i.
func (b *Builder) AppendInt(i int) *Builder {
	return b.Append(FormatInt(i))
}

// AppendChars appends a copy of c.
func (b *Builder) AppendChars(c []uint16) *Builder {
	return b.Append(FromChars(c))
}

// AppendString appends the UTF-16 code units of s.
func (b *Builder) AppendString(s string) *Builder {
	return b.Append(FromString(s))
}

// AppendValue appends the text representation of v (see ValueOf).
func (b *Builder) AppendValue(v any) *Builder {
	return b.Append(ValueOf(v))
}

// Len returns the total number of code units across the stored fragments.
// Summation stops at the first empty slot.
func (b *Builder) Len() int {
	n := 0
	for i := 0; i < b.count; i++ {
		if b.fragments[i] == nil {
			return n
		}
		n += b.fragments[i].Len()
	}
	return n
}

// Count returns the number of stored fragments.
func (b *Builder) Count() int {
	return b.count
}

// Cap returns the number of fragment slots currently allocated.
func (b *Builder) Cap() int {
	return len(b.fragments)
}

// Reset drops all fragments but keeps the allocated slots.
func (b *Builder) Reset() {
	clear(b.fragments[:b.count])
	b.count = 0
}

// Sequence materializes the stored fragments into one new Sequence. The
// builder is left unchanged.
func (b *Builder) Sequence() *Sequence {
	return ConcatAll(b.fragments[:b.count]...)
}

// String materializes the builder and decodes it as a Go string.
func (b *Builder) String() string {
	return b.Sequence().String()
}
