package compress

import (
	"fmt"

	"github.com/starcodec/star/format"
)

// Compressor compresses a byte slice and returns the compressed result.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's output.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Report is the size comparison the encode command prints for one
// compressor run over a given input.
type Report struct {
	Algorithm      format.CompressionKind
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns CompressedSize/OriginalSize; 0 for an empty input.
func (r Report) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.CompressedSize) / float64(r.OriginalSize)
}

// Measure compresses data with codec and returns the resulting Report.
func Measure(kind format.CompressionKind, codec Codec, data []byte) (Report, error) {
	compressed, err := codec.Compress(data)
	if err != nil {
		return Report{}, fmt.Errorf("compress: %s: %w", kind, err)
	}

	return Report{
		Algorithm:      kind,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}, nil
}

var builtinCodecs = map[format.CompressionKind]Codec{
	format.CompressionZlib: NewZlibCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionZstd: NewZstdCompressor(),
}

// CreateCodec is a factory function returning a fresh Codec for kind.
func CreateCodec(kind format.CompressionKind) (Codec, error) {
	switch kind {
	case format.CompressionZlib:
		return NewZlibCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("compress: invalid compression kind: %s", kind)
	}
}

// GetCodec retrieves a shared built-in Codec for kind.
func GetCodec(kind format.CompressionKind) (Codec, error) {
	if codec, ok := builtinCodecs[kind]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported compression kind: %s", kind)
}

// AllKinds lists every compression kind the encode command reports on, in
// the order zlib (mandatory baseline) first, then the comparison set.
func AllKinds() []format.CompressionKind {
	return []format.CompressionKind{
		format.CompressionZlib,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionZstd,
	}
}
