// Package compress provides the general-purpose compressors the encode
// command runs a packed STAR blob through for reporting purposes: zlib
// (the mandatory baseline artifact), S2, LZ4, and Zstandard.
//
// None of these algorithms are part of the STAR wire format itself. A STAR
// blob is self-describing and decodable on its own; compression here is a
// second, independent pass used only to measure how much further a
// general-purpose compressor can shrink the already-packed structural
// representation, for comparison against the same compressor run over the
// original raw input.
//
// # Algorithms
//
//   - Zlib: the mandatory secondary artifact (<out>.star.zlib), matching
//     the baseline metric computed over the raw input.
//   - S2: fast, moderate ratio, good default for repeated measurement runs.
//   - LZ4: fastest decompression, useful when the reporting pass itself
//     needs to be cheap.
//   - Zstd: best ratio, at higher CPU cost; the implementation here is
//     pure Go (no cgo dependency).
//
// All four implement the Codec interface (Compressor + Decompressor), and
// CreateCodec/GetCodec resolve a format.CompressionKind to a concrete
// implementation.
package compress
