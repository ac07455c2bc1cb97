package compress

// ZstdCompressor gives the best compression ratio of the four reported
// compressors, at the highest CPU cost; the encode command's --bench
// comparison table lists it as one row alongside the others.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
