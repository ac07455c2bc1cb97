package deltablock

import (
	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/internal/pool"
	"github.com/starcodec/star/varint"
)

// MaxRun is the cap on how many identical consecutive delta tuples a single
// RLE block may cover.
const MaxRun = 10_000_000

// Tag byte values for the two block kinds.
const (
	TagRLE     byte = 0x00
	TagLiteral byte = 0x01
)

// Block is one decoded body block: either an RLE run of Run identical copies
// of Delta, or a single literal Delta (Run is always 1 for literals).
type Block struct {
	Tag   byte
	Run   int
	Delta []int64
}

func appendUvarint(buf *pool.Buffer, u uint64) {
	buf.Grow(varint.MaxLen)
	buf.B = varint.AppendUvarint(buf.B, u)
}

func appendZigZag(buf *pool.Buffer, x int64) {
	appendUvarint(buf, varint.ZigZagEncode(x))
}

func tuplesEqual(a, b []int64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Encode appends the greedy tag-0/tag-1 block encoding of deltas to buf.
//
// The scan is a two-pointer walk: for each position i, it extends a run
// while the next delta tuple is bit-identical to deltas[i] and the run has
// not hit MaxRun. Runs of length 3 or more become a single RLE block; any
// shorter run is emitted as that many literal blocks. Each tuple is visited
// exactly once across the whole walk, so this is O(n) rather than an
// O(n^2)-worst-case forward rescan.
func Encode(buf *pool.Buffer, deltas [][]int64) {
	i := 0
	for i < len(deltas) {
		tup := deltas[i]

		run := 1
		j := i + 1
		for j < len(deltas) && run < MaxRun && tuplesEqual(deltas[j], tup) {
			run++
			j++
		}

		if run >= 3 {
			buf.WriteByte(TagRLE)
			appendUvarint(buf, uint64(run))
			for _, x := range tup {
				appendZigZag(buf, x)
			}
		} else {
			for k := 0; k < run; k++ {
				buf.WriteByte(TagLiteral)
				for _, x := range tup {
					appendZigZag(buf, x)
				}
			}
		}

		i = j
	}
}

// DecodeBlock decodes one block starting at data[pos], returning the block
// and the offset immediately after it.
//
// pos must point at a tag byte (0x00 or 0x01); callers that resume replay
// from an anchor rely on anchors always landing on a tag byte boundary.
func DecodeBlock(data []byte, pos int, width int) (Block, int, error) {
	if pos >= len(data) {
		return Block{}, 0, errs.ErrTruncatedBody
	}

	tag := data[pos]
	pos++

	switch tag {
	case TagRLE:
		runU, n, err := varint.Uvarint(data[pos:])
		if err != nil {
			return Block{}, 0, err
		}
		pos += n

		delta, pos, err := decodeTuple(data, pos, width)
		if err != nil {
			return Block{}, 0, err
		}

		return Block{Tag: TagRLE, Run: int(runU), Delta: delta}, pos, nil

	case TagLiteral:
		delta, pos, err := decodeTuple(data, pos, width)
		if err != nil {
			return Block{}, 0, err
		}

		return Block{Tag: TagLiteral, Run: 1, Delta: delta}, pos, nil

	default:
		return Block{}, 0, errs.ErrBadTag
	}
}

func decodeTuple(data []byte, pos int, width int) ([]int64, int, error) {
	tup := make([]int64, width)
	for k := 0; k < width; k++ {
		x, n, err := varint.ZigZag(data[pos:])
		if err != nil {
			return nil, 0, err
		}
		tup[k] = x
		pos += n
	}

	return tup, pos, nil
}
