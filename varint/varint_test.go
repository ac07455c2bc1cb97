package varint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/varint"
)

func TestZigZagRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, 127, -128, 1 << 40, -(1 << 40), 1<<63 - 1, -(1 << 62)}
	for _, x := range values {
		u := varint.ZigZagEncode(x)
		assert.Equal(t, x, varint.ZigZagDecode(u))
	}
}

func TestZigZagBijection(t *testing.T) {
	seen := make(map[uint64]bool)
	for x := int64(-5000); x < 5000; x++ {
		u := varint.ZigZagEncode(x)
		assert.False(t, seen[u], "collision at zigzag(%d)=%d", x, u)
		seen[u] = true
	}
}

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 40, 1<<63 - 1}
	for _, u := range values {
		buf := varint.AppendUvarint(nil, u)
		got, n, err := varint.Uvarint(buf)
		require.NoError(t, err)
		assert.Equal(t, u, got)
		assert.Equal(t, len(buf), n)
		assert.LessOrEqual(t, len(buf), varint.MaxLen)
	}
}

func TestUvarintTruncated(t *testing.T) {
	buf := []byte{0x80, 0x80, 0x80}
	_, _, err := varint.Uvarint(buf)
	require.ErrorIs(t, err, errs.ErrTruncatedVarint)
}

func TestUvarintOverlong(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	buf[10] = 0x01
	_, _, err := varint.Uvarint(buf)
	require.ErrorIs(t, err, errs.ErrOverlong)
}

func TestZigZagAppendAndDecode(t *testing.T) {
	buf := varint.AppendZigZag(nil, -12345)
	x, n, err := varint.ZigZag(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(-12345), x)
	assert.Equal(t, len(buf), n)
}
