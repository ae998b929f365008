package codec

import (
	"hash/crc32"
	"math"

	"github.com/cockroachdb/errors"
)

// RecordHeaderSize is the size of the fixed record header: CRC32(4) + UnitCount(4).
const RecordHeaderSize = 8

// Record represents an encoded run of UTF-16 code units with an integrity checksum.
type Record struct {
	CRC32     uint32   // CRC32 checksum over UnitCount and Units
	UnitCount uint32   // Number of code units
	Units     []uint16 // Code units
}

// RecordCodec handles serialization and deserialization of text records
type RecordCodec struct{}

// NewRecordCodec creates a new record codec instance
func NewRecordCodec() *RecordCodec {
	return &RecordCodec{}
}

// NewRecord creates a record for the given code units. The units are
// referenced, not copied.
func NewRecord(units []uint16) (*Record, error) {
	if len(units) > math.MaxInt32 {
		return nil, errors.Newf("text too large: %d code units", len(units))
	}
	return &Record{
		UnitCount: uint32(len(units)),
		Units:     units,
	}, nil
}

// Encode serializes code units into the binary record format
// Format: [CRC32(4)][UnitCount(4)][Unit(2)]... all big-endian
func (c *RecordCodec) Encode(units []uint16) ([]byte, error) {
	r, err := NewRecord(units)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, r.Size())
	if err := r.putBody(buf); err != nil {
		return nil, err
	}
	r.CRC32 = crc32.ChecksumIEEE(buf[4:])

	if err := SetInt32(buf, 0, int32(r.CRC32)); err != nil {
		return nil, err
	}
	return buf, nil
}

// Decode deserializes a binary record into a Record struct. The checksum
// is not verified; call Validate for that.
func (c *RecordCodec) Decode(data []byte) (*Record, error) {
	if len(data) < RecordHeaderSize {
		return nil, errors.Wrapf(ErrCorruptRecord, "data too short for record header: %d bytes", len(data))
	}

	crc, err := GetInt32(data, 0)
	if err != nil {
		return nil, err
	}
	count, err := GetInt32(data, 4)
	if err != nil {
		return nil, err
	}

	r := &Record{CRC32: uint32(crc), UnitCount: uint32(count)}
	want := int64(RecordHeaderSize) + int64(r.UnitCount)*2
	if int64(len(data)) != want {
		return nil, errors.Wrapf(ErrCorruptRecord, "record length %d does not match unit count %d", len(data), r.UnitCount)
	}

	r.Units = make([]uint16, r.UnitCount)
	for i := range r.Units {
		u, err := GetInt16(data, RecordHeaderSize+i*2)
		if err != nil {
			return nil, err
		}
		r.Units[i] = uint16(u)
	}

	return r, nil
}

// Validate checks the integrity of a record using CRC32
func (r *Record) Validate() error {
	sum, err := r.calculateCRC32()
	if err != nil {
		return err
	}
	if r.CRC32 != sum {
		return errors.Wrapf(ErrCorruptRecord, "CRC32 mismatch: %d != %d", r.CRC32, sum)
	}
	return nil
}

// Size returns the total size of the record when encoded
func (r *Record) Size() int {
	return RecordHeaderSize + len(r.Units)*2
}

// putBody writes everything after the CRC field into buf.
func (r *Record) putBody(buf []byte) error {
	if err := SetInt32(buf, 4, int32(r.UnitCount)); err != nil {
		return err
	}
	for i, u := range r.Units {
		if err := SetInt16(buf, RecordHeaderSize+i*2, int16(u)); err != nil {
			return err
		}
	}
	return nil
}

// calculateCRC32 computes the checksum over UnitCount and Units (excluding the CRC field itself)
func (r *Record) calculateCRC32() (uint32, error) {
	buf := make([]byte, r.Size())
	if err := r.putBody(buf); err != nil {
		return 0, err
	}
	return crc32.ChecksumIEEE(buf[4:]), nil
}
