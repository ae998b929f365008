package codec

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt32_RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 255, 256, -256, 0x12345678, math.MaxInt32, math.MinInt32, -0x7F7F7F7F}

	for _, v := range values {
		for _, off := range []int{0, 3} {
			buf := make([]byte, off+4)
			require.NoError(t, SetInt32(buf, off, v))

			got, err := GetInt32(buf, off)
			require.NoError(t, err)
			assert.Equal(t, v, got, "value %d at offset %d", v, off)
		}
	}
}

func TestInt32_BigEndianLayout(t *testing.T) {
	buf := make([]byte, 4)
	require.NoError(t, SetInt32(buf, 0, 0x01020304))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)

	require.NoError(t, SetInt32(buf, 0, -2))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFE}, buf)
}

func TestGetInt32_NoSignExtension(t *testing.T) {
	got, err := GetInt32([]byte{0x00, 0x80, 0xFF, 0x01}, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0x0080FF01), got)
}

func TestMakeInt32_MatchesGetInt32(t *testing.T) {
	testCases := [][4]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0x12, 0x34, 0x56, 0x78},
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0x80, 0x00, 0x00, 0x01},
		{0x7F, 0xFE, 0x80, 0x81},
	}

	for _, b := range testCases {
		got, err := GetInt32(b[:], 0)
		require.NoError(t, err)
		assert.Equal(t, got, MakeInt32(b[0], b[1], b[2], b[3]))
	}
}

func TestInt16_RoundTrip(t *testing.T) {
	values := []int16{0, 1, -1, 0x7F, 0x80, -0x80, 0x1234, math.MaxInt16, math.MinInt16}

	for _, v := range values {
		buf := make([]byte, 3)

		require.NoError(t, SetInt16(buf, 1, v))
		got, err := GetInt16(buf, 1)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, v, MakeInt16(buf[1], buf[2]))

		require.NoError(t, SetInt16Little(buf, 1, v))
		got, err = GetInt16Little(buf, 1)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, v, MakeInt16Little(buf[1], buf[2]))
	}
}

func TestInt16_ByteOrder(t *testing.T) {
	buf := make([]byte, 2)

	require.NoError(t, SetInt16(buf, 0, 0x0102))
	assert.Equal(t, []byte{0x01, 0x02}, buf)

	require.NoError(t, SetInt16Little(buf, 0, 0x0102))
	assert.Equal(t, []byte{0x02, 0x01}, buf)

	assert.Equal(t, int16(-2), MakeInt16(0xFF, 0xFE))
	assert.Equal(t, int16(-2), MakeInt16Little(0xFE, 0xFF))
}

func TestInts_Bounds(t *testing.T) {
	short := []byte{0xAA, 0xBB, 0xCC}

	assert.True(t, errors.Is(SetInt32(short, 0, 1), ErrOutOfBounds))
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, short, "failed set must not write")

	_, err := GetInt32(short, 0)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	assert.True(t, errors.Is(SetInt16(short, 2, 1), ErrOutOfBounds))
	assert.True(t, errors.Is(SetInt16Little(short, -1, 1), ErrOutOfBounds))

	_, err = GetInt16(short, 2)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = GetInt16Little(short, 3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestInts_NilBuffer(t *testing.T) {
	assert.True(t, errors.Is(SetInt32(nil, 0, 1), ErrNullReference))
	assert.True(t, errors.Is(SetInt16(nil, 0, 1), ErrNullReference))
	assert.True(t, errors.Is(SetInt16Little(nil, 0, 1), ErrNullReference))

	_, err := GetInt32(nil, 0)
	assert.True(t, errors.Is(err, ErrNullReference))
	_, err = GetInt16(nil, 0)
	assert.True(t, errors.Is(err, ErrNullReference))
	_, err = GetInt16Little(nil, 0)
	assert.True(t, errors.Is(err, ErrNullReference))
}
