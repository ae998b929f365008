// Package text provides an immutable UTF-16 code unit sequence and a
// builder that defers concatenation until the result is requested.
//
// Sequence values never change after construction and may be shared
// freely. Operations that report a position outside the sequence fail with
// errors matching codec.ErrOutOfBounds; searches that find nothing return
// NotFound instead of an error.
//
//	b := text.NewBuilder()
//	b.AppendString("id=").AppendInt(42).AppendChar(';')
//	s := b.Sequence() // "id=42;"
package text
