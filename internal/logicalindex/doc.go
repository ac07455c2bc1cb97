// Package logicalindex implements the arithmetic anchor index shared by the
// two logical-projection codecs: a sparse row -> t_min mapping computed from
// a fixed per-row cadence, with a SHA-256 binding to the blob it indexes.
//
// Unlike the block-snapshot anchors used by the delta-block codecs, these
// anchors carry no decoder state and no resumable byte offset; the offset
// field is always zero. Replay over this index is a pure arithmetic
// projection, never a payload reconstruction.
package logicalindex
