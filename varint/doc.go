// Package varint provides the zigzag and unsigned LEB128 primitives shared by
// every STAR codec.
//
// The structural codecs build on two transforms: zigzag maps signed deltas
// onto small unsigned values, and varint packs those unsigned values into
// 1-10 bytes depending on magnitude. case01 and case02 use both; case03 and
// case04 use only the varint half, for lengths and dictionary codes.
// Keeping both in one leaf package means the block codecs in
// internal/deltablock and the per-case encoders never duplicate the bit
// manipulation.
package varint
