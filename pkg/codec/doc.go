// Package codec provides bounds-checked byte buffer primitives for charseq.
//
// The codec package packs and unpacks fixed-width integers, fills, copies
// and compares byte ranges, and renders bytes as hexadecimal text. It is the
// foundation for the text record format used by the text store.
//
// # Integer Encoding
//
// Integers are encoded into caller-supplied buffers at an explicit offset:
//
//	SetInt32 / GetInt32             4 bytes, big-endian
//	SetInt16 / GetInt16             2 bytes, big-endian
//	SetInt16Little / GetInt16Little 2 bytes, little-endian
//
// MakeInt32, MakeInt16 and MakeInt16Little compose the same values from
// standalone bytes. Every value is assembled byte by byte with explicit
// shifts and masks; no native multi-byte load is ever used.
//
// Field wraps these functions behind a width and byte order chosen at run
// time. A 32-bit little-endian field has no primitive and fails with
// ErrUnsupportedField.
//
// # Hex Dump Format
//
// ToHexString produces exactly two uppercase ASCII hex digits per input
// byte, most significant nibble first, with no separators or prefix:
//
//	{0x00, 0x0A, 0xFF} -> "000AFF"
//
// DecodeHex reverses it and accepts either case.
//
// # Record Format
//
// Text records are serialized with the following structure:
//
//	[CRC32(4)][UnitCount(4)][Unit(2)]...
//
// All fields are big-endian. The CRC32 (IEEE) covers everything after the
// CRC field itself.
//
// # Error Handling
//
// Every operation validates its arguments before writing anything, so a
// failed call never leaves a destination buffer partially modified:
//   - a nil buffer yields an error matching ErrNullReference
//   - an offset or length outside the buffer yields an error matching ErrOutOfBounds
//
// Use errors.Is to test for either kind. Nothing is silently clamped.
//
// # Thread Safety
//
// All functions are stateless. Buffers are owned by the caller and never
// retained past a single call.
package codec
