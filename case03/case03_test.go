package case03_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcodec/star/case03"
	"github.com/starcodec/star/format"
)

func TestSplitLinesHandlesMixedTerminators(t *testing.T) {
	raw := []byte("a\r\nb\nc\rd")
	lines := case03.SplitLines(raw)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}, lines)
}

func TestReadLinesSplitsHeaderAndTruncates(t *testing.T) {
	raw := []byte("h\nr1\nr2\nr3\n")
	header, rows := case03.ReadLines(raw, 2)
	assert.Equal(t, []byte("h"), header)
	assert.Equal(t, [][]byte{[]byte("r1"), []byte("r2")}, rows)
}

func TestRoundTripFrontCoding(t *testing.T) {
	header := []byte("Date;Time;Power")
	lines := [][]byte{
		[]byte("16/12/2006;17:24:00;4.216"),
		[]byte("16/12/2006;17:25:00;5.360"),
		[]byte("16/12/2006;17:26:00;5.374"),
		[]byte("17/12/2006;00:00:00;1.200"),
	}

	out := case03.Encode(header, lines)
	assert.Equal(t, format.Case03, format.SniffMagic(out))

	gotHeader, gotLines, err := case03.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, header, gotHeader)
	assert.Equal(t, lines, gotLines)
}

func TestRoundTripEmptyDataLines(t *testing.T) {
	out := case03.Encode([]byte("only-header"), nil)
	header, lines, err := case03.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("only-header"), header)
	assert.Empty(t, lines)
}

func TestDecodeBadMagic(t *testing.T) {
	_, _, err := case03.Decode([]byte("not-a-star-blob"))
	require.Error(t, err)
}

func TestIndexReplayProjection(t *testing.T) {
	header := []byte("h")
	lines := make([][]byte, 2000)
	for i := range lines {
		lines[i] = []byte("row-data-that-does-not-matter")
	}

	star := case03.Encode(header, lines)
	idx := case03.BuildIndex(star, len(lines), 1, 128)

	row := uint32(750)
	out, err := case03.Replay(star, idx, case03.SeekRequest{SeekRow: &row, Rows: 5})
	require.NoError(t, err)
	require.Len(t, out, 5)
	assert.Equal(t, int64(750), out[0].Row)
	assert.Equal(t, int64(750), out[0].TMin)
	assert.Equal(t, int64(754), out[4].Row)
}

func TestIndexReplayBindingMismatch(t *testing.T) {
	star := case03.Encode([]byte("h"), [][]byte{[]byte("a")})
	idx := case03.BuildIndex(star, 1, 1, 128)

	tampered := append([]byte(nil), star...)
	tampered[len(tampered)-1] ^= 0xFF

	row := uint32(0)
	_, err := case03.Replay(tampered, idx, case03.SeekRequest{SeekRow: &row, Rows: 1})
	require.Error(t, err)
}

func TestSeekByTimeConvertsThroughCadence(t *testing.T) {
	lines := make([][]byte, 100)
	for i := range lines {
		lines[i] = []byte("x")
	}
	star := case03.Encode([]byte("h"), lines)
	idx := case03.BuildIndex(star, len(lines), 5, 16)

	tmin := int64(47)
	out, err := case03.Replay(star, idx, case03.SeekRequest{SeekTime: &tmin, Rows: 1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(9), out[0].Row)
}
