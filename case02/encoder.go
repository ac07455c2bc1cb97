package case02

import (
	"github.com/starcodec/star/format"
	"github.com/starcodec/star/internal/deltablock"
	"github.com/starcodec/star/internal/pool"
	"github.com/starcodec/star/varint"
)

// Encode builds a complete STAR2A blob from ticks:
//
//	"STAR2A" | varint(n) | zz_varint(base x8) | body
func Encode(ticks []Tick) []byte {
	buf := pool.Get()
	defer pool.Put(buf)

	buf.Write(format.MagicCase02)
	appendUvarint(buf, uint64(len(ticks)))

	if len(ticks) == 0 {
		out := make([]byte, buf.Len())
		copy(out, buf.Bytes())

		return out
	}

	base := ticks[0]
	for _, x := range base.fields() {
		appendZigZag(buf, x)
	}

	deltas := make([][]int64, 0, len(ticks)-1)
	prev := base
	for _, t := range ticks[1:] {
		deltas = append(deltas, subTickFields(t, prev))
		prev = t
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
