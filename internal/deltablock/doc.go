// Package deltablock implements the tag-0/tag-1 run-length block codec
// shared by case01 (6-wide OHLCV deltas) and case02 (8-wide air-quality
// deltas).
//
// A block covers one or more identical delta tuples: a run of 3 or more
// identical tuples is emitted as a single RLE block (tag 0x00 + run length +
// the tuple), and anything shorter is emitted as one literal block per tuple
// (tag 0x01 + the tuple). Runs are found with a single two-pointer forward
// scan, not a quadratic-worst-case lookahead.
package deltablock
