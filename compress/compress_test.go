package compress_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcodec/star/compress"
	"github.com/starcodec/star/format"
)

func payload() []byte {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, 8192)
	for i := range buf {
		buf[i] = byte(i % 17)
		if rng.Intn(10) == 0 {
			buf[i] = byte(rng.Intn(256))
		}
	}
	return buf
}

func TestAllCodecsRoundTrip(t *testing.T) {
	data := payload()

	for _, kind := range compress.AllKinds() {
		codec, err := compress.GetCodec(kind)
		require.NoError(t, err, kind.String())

		compressed, err := codec.Compress(data)
		require.NoError(t, err, kind.String())

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, kind.String())

		assert.True(t, bytes.Equal(data, decompressed), "%s round trip mismatch", kind)
	}
}

func TestCreateCodecUnknownKind(t *testing.T) {
	_, err := compress.CreateCodec(format.CompressionKind(99))
	require.Error(t, err)
}

func TestMeasureReportsSizes(t *testing.T) {
	data := payload()
	codec, err := compress.GetCodec(format.CompressionZlib)
	require.NoError(t, err)

	rep, err := compress.Measure(format.CompressionZlib, codec, data)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), rep.OriginalSize)
	assert.Greater(t, rep.CompressedSize, int64(0))
	assert.Greater(t, rep.Ratio(), 0.0)
}

func TestMeasureEmptyInputZeroRatio(t *testing.T) {
	codec, err := compress.GetCodec(format.CompressionLZ4)
	require.NoError(t, err)

	rep, err := compress.Measure(format.CompressionLZ4, codec, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.Ratio())
}
