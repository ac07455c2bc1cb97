package case01

import (
	"github.com/starcodec/star/format"
	"github.com/starcodec/star/internal/deltablock"
	"github.com/starcodec/star/internal/pool"
	"github.com/starcodec/star/varint"
)

// DefaultPriceScale is the integer multiplier applied to floating-point
// prices when price_scale is not otherwise specified.
const DefaultPriceScale = 100

// Encode builds a complete STAR1 blob from bars:
//
//	"STAR1" | varint(n) | varint(price_scale) | zz_varint(base fields x6) | body
//
// The body is empty when bars is empty (n=0, no base row, no blocks).
func Encode(bars []Bar, priceScale int64) []byte {
	buf := pool.Get()
	defer pool.Put(buf)

	buf.Write(format.MagicCase01)
	appendUvarint(buf, uint64(len(bars)))

	if len(bars) == 0 {
		out := make([]byte, buf.Len())
		copy(out, buf.Bytes())

		return out
	}

	appendUvarint(buf, uint64(priceScale))

	base := bars[0]
	for _, x := range base.fields() {
		appendZigZag(buf, x)
	}

	deltas := make([][]int64, 0, len(bars)-1)
	prev := base
	for _, b := range bars[1:] {
		deltas = append(deltas, subFields(b, prev))
		prev = b
	}

	deltablock.Encode(buf, deltas)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

func appendUvarint(buf *pool.Buffer, u uint64) {
	buf.Grow(varint.MaxLen)
	buf.B = varint.AppendUvarint(buf.B, u)
}

func appendZigZag(buf *pool.Buffer, x int64) {
	appendUvarint(buf, varint.ZigZagEncode(x))
}
