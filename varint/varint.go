package varint

import (
	"encoding/binary"

	"github.com/starcodec/star/errs"
)

// MaxLen is the maximum number of bytes a varint produced or accepted by this
// package occupies. 10 bytes covers the full 64-bit unsigned range (7 bits
// per byte), one more than strictly required for the 63-bit payloads STAR
// actually encodes.
const MaxLen = binary.MaxVarintLen64

// ZigZagEncode maps a signed 64-bit delta onto an unsigned value, placing
// small-magnitude values (positive and negative) at small unsigned values.
func ZigZagEncode(x int64) uint64 {
	return uint64((x << 1) ^ (x >> 63))
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// AppendUvarint appends the unsigned LEB128 encoding of u to dst and returns
// the extended slice.
func AppendUvarint(dst []byte, u uint64) []byte {
	var tmp [MaxLen]byte
	n := binary.PutUvarint(tmp[:], u)

	return append(dst, tmp[:n]...)
}

// AppendZigZag zigzag-encodes x and appends its varint form to dst.
func AppendZigZag(dst []byte, x int64) []byte {
	return AppendUvarint(dst, ZigZagEncode(x))
}

// Uvarint decodes a single unsigned LEB128 value starting at buf[0].
//
// It returns the decoded value and the number of bytes consumed. On failure
// the length is 0 and the error says why: errs.ErrTruncatedVarint when the
// buffer ended before a terminating byte was found, errs.ErrOverlong when the
// decoded shift would have exceeded 63 bits.
func Uvarint(buf []byte) (uint64, int, error) {
	var u uint64

	shift := uint(0)
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		u |= uint64(b&0x7F) << shift

		if b&0x80 == 0 {
			return u, i + 1, nil
		}

		shift += 7
		if shift > 63 {
			return 0, 0, errs.ErrOverlong
		}
	}

	return 0, 0, errs.ErrTruncatedVarint
}

// ZigZag decodes a zigzag+varint encoded signed value starting at buf[0],
// returning the decoded value and the number of bytes consumed.
func ZigZag(buf []byte) (int64, int, error) {
	u, n, err := Uvarint(buf)
	if err != nil {
		return 0, 0, err
	}

	return ZigZagDecode(u), n, nil
}
