package case02_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcodec/star/case02"
	"github.com/starcodec/star/format"
)

func TestEncodeEmpty(t *testing.T) {
	out := case02.Encode(nil)
	assert.Equal(t, append([]byte("STAR2A"), 0x00), out)

	ticks, h, err := case02.Decode(out)
	require.NoError(t, err)
	assert.Empty(t, ticks)
	assert.Equal(t, 0, h.N)
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ticks := make([]case02.Tick, 300)
	tmin := int64(1000)
	for i := range ticks {
		tmin += int64(rng.Intn(5))
		ticks[i] = case02.Tick{
			TMin: tmin, COx10: int64(rng.Intn(200)), C6H6x10: int64(rng.Intn(200)),
			NOx: int64(rng.Intn(500)), NO2: int64(rng.Intn(300)), Tx10: int64(rng.Intn(400) - 50),
			RHx10: int64(rng.Intn(1000)), AHx1000: int64(rng.Intn(2000)),
		}
	}

	out := case02.Encode(ticks)
	decoded, h, err := case02.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, ticks, decoded)
	assert.Equal(t, len(ticks), h.N)
}

func TestDispatchMagic(t *testing.T) {
	out := case02.Encode(nil)
	assert.Equal(t, format.Case02, format.SniffMagic(out))
}

func TestReadCSVDropsSentinelRows(t *testing.T) {
	csv := "Date;Time;CO(GT);C6H6(GT);NOx(GT);NO2(GT);T;RH;AH\n" +
		"10/03/2004;18.00.00;2,6;11,9;166;113;13,6;48,9;0,7578\n" +
		"10/03/2004;19.00.00;-200;11,9;166;113;13,6;48,9;0,7578\n"

	ticks, err := case02.ReadCSV(strings.NewReader(csv), -1)
	require.NoError(t, err)
	require.Len(t, ticks, 1)
	assert.Equal(t, int64(26), ticks[0].COx10)
}

func TestIndexReplayEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	ticks := make([]case02.Tick, 2000)
	tmin := int64(0)
	for i := range ticks {
		tmin += int64(rng.Intn(4))
		ticks[i] = case02.Tick{TMin: tmin, COx10: int64(rng.Intn(50)), C6H6x10: int64(rng.Intn(50)), NOx: int64(rng.Intn(50)), NO2: int64(rng.Intn(50)), Tx10: int64(rng.Intn(50)), RHx10: int64(rng.Intn(50)), AHx1000: int64(rng.Intn(50))}
	}

	star := case02.Encode(ticks)
	idx, err := case02.BuildIndex(star, 128)
	require.NoError(t, err)

	decoded, _, err := case02.Decode(star)
	require.NoError(t, err)

	out, err := case02.Replay(star, idx, 750, 15)
	require.NoError(t, err)
	assert.Equal(t, decoded[750:765], out)
}
