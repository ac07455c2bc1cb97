package case01_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcodec/star/case01"
	"github.com/starcodec/star/format"
)

func TestEncodeEmpty(t *testing.T) {
	out := case01.Encode(nil, case01.DefaultPriceScale)
	assert.Equal(t, append([]byte("STAR1"), 0x00), out)

	bars, h, err := case01.Decode(out)
	require.NoError(t, err)
	assert.Empty(t, bars)
	assert.Equal(t, 0, h.N)
}

func TestThreeIdenticalRowsStayLiteral(t *testing.T) {
	bar := case01.Bar{Days: 0, Open: 100, High: 100, Low: 100, Close: 100, Vol: 0}
	bars := []case01.Bar{bar, bar, bar}

	out := case01.Encode(bars, 100)
	decoded, h, err := case01.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, bars, decoded)
	assert.Equal(t, 3, h.N)

	// two zero deltas (run 2 < 3): two literal blocks, tag 0x01 + six zero fields each
	assert.Equal(t, []byte{0x01, 0, 0, 0, 0, 0, 0, 0x01, 0, 0, 0, 0, 0, 0}, out[h.BodyOffset:])
}

func TestFourIdenticalRowsBecomeRLEBlock(t *testing.T) {
	bar := case01.Bar{Days: 0, Open: 100, High: 100, Low: 100, Close: 100, Vol: 0}
	bars := []case01.Bar{bar, bar, bar, bar}

	out := case01.Encode(bars, 100)
	decoded, h, err := case01.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, bars, decoded)

	// three zero deltas: one RLE block, tag 0x00 + run 3 + six zero fields = 8 bytes
	assert.Equal(t, []byte{0x00, 0x03, 0, 0, 0, 0, 0, 0}, out[h.BodyOffset:])
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bars := make([]case01.Bar, 500)
	days := int64(19000)
	o := int64(10000)
	for i := range bars {
		days += int64(rng.Intn(3))
		o += int64(rng.Intn(21) - 10)
		bars[i] = case01.Bar{
			Days: days, Open: o, High: o + int64(rng.Intn(50)),
			Low: o - int64(rng.Intn(50)), Close: o + int64(rng.Intn(20)-10),
			Vol: int64(rng.Intn(1_000_000)),
		}
	}

	out := case01.Encode(bars, 100)
	decoded, h, err := case01.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, bars, decoded)
	assert.Equal(t, len(bars), h.N)
}

func TestDispatchMagic(t *testing.T) {
	out := case01.Encode(nil, 100)
	assert.Equal(t, format.Case01, format.SniffMagic(out))
}

func TestIndexAnchorsLandOnTagBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	bars := make([]case01.Bar, 1024)
	days := int64(19000)
	for i := range bars {
		days += int64(rng.Intn(5))
		bars[i] = case01.Bar{Days: days, Open: int64(rng.Intn(1000)), High: int64(rng.Intn(1000)), Low: int64(rng.Intn(1000)), Close: int64(rng.Intn(1000)), Vol: int64(rng.Intn(1000))}
	}

	star := case01.Encode(bars, 100)
	idx, err := case01.BuildIndex(star, 128)
	require.NoError(t, err)

	for _, a := range idx.Anchors {
		if int(a.ByteOffset) >= len(star) {
			continue
		}
		tag := star[a.ByteOffset]
		assert.True(t, tag == 0x00 || tag == 0x01, "anchor at row %d points at non-tag byte %x", a.Row, tag)
	}

	decoded, _, err := case01.Decode(star)
	require.NoError(t, err)

	out, err := case01.Replay(star, idx, case01.ByRow(500), 10)
	require.NoError(t, err)
	assert.Equal(t, decoded[500:510], out)
}

func TestReplayByDate(t *testing.T) {
	bars := []case01.Bar{
		{Days: 100, Open: 10, High: 11, Low: 9, Close: 10, Vol: 5},
		{Days: 101, Open: 10, High: 11, Low: 9, Close: 10, Vol: 5},
		{Days: 105, Open: 12, High: 13, Low: 11, Close: 12, Vol: 7},
		{Days: 106, Open: 12, High: 13, Low: 11, Close: 12, Vol: 7},
	}
	star := case01.Encode(bars, 100)
	idx, err := case01.BuildIndex(star, 2)
	require.NoError(t, err)

	out, err := case01.Replay(star, idx, case01.ByDays(105), 2)
	require.NoError(t, err)
	assert.Equal(t, bars[2:4], out)
}
