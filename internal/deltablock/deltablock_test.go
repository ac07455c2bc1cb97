package deltablock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcodec/star/internal/deltablock"
	"github.com/starcodec/star/internal/pool"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	deltas := [][]int64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
		{2, -2, 0},
		{5, 5, 5},
		{5, 5, 5},
	}

	buf := pool.Get()
	defer pool.Put(buf)
	deltablock.Encode(buf, deltas)

	var got [][]int64
	pos := 0
	for pos < buf.Len() {
		blk, next, err := deltablock.DecodeBlock(buf.Bytes(), pos, 3)
		require.NoError(t, err)
		for i := 0; i < blk.Run; i++ {
			got = append(got, blk.Delta)
		}
		pos = next
	}

	require.Len(t, got, len(deltas))
	for i := range deltas {
		assert.Equal(t, deltas[i], got[i])
	}
}

func TestEncodeEmptyRun(t *testing.T) {
	buf := pool.Get()
	defer pool.Put(buf)
	deltablock.Encode(buf, nil)
	assert.Equal(t, 0, buf.Len())
}

func TestThreeIdenticalZeroDeltasProduceOneRLEBlock(t *testing.T) {
	deltas := [][]int64{{0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0}}
	buf := pool.Get()
	defer pool.Put(buf)
	deltablock.Encode(buf, deltas)

	// tag(1) + run varint(1) + six zigzag-varint zero fields(1 each) = 8 bytes
	assert.Equal(t, 8, buf.Len())

	blk, next, err := deltablock.DecodeBlock(buf.Bytes(), 0, 6)
	require.NoError(t, err)
	assert.Equal(t, deltablock.TagRLE, blk.Tag)
	assert.Equal(t, 3, blk.Run)
	assert.Equal(t, buf.Len(), next)
}

func TestTwoIdenticalDeltasStayLiteral(t *testing.T) {
	deltas := [][]int64{{0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0}}
	buf := pool.Get()
	defer pool.Put(buf)
	deltablock.Encode(buf, deltas)

	pos := 0
	count := 0
	for pos < buf.Len() {
		blk, next, err := deltablock.DecodeBlock(buf.Bytes(), pos, 6)
		require.NoError(t, err)
		assert.Equal(t, deltablock.TagLiteral, blk.Tag)
		count++
		pos = next
	}
	assert.Equal(t, 2, count)
}
