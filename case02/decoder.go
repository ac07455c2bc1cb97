package case02

import (
	"bytes"
	"fmt"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/format"
	"github.com/starcodec/star/internal/deltablock"
	"github.com/starcodec/star/varint"
)

// Header carries the fields parsed before a STAR2A body.
type Header struct {
	N          int
	Base       Tick
	BodyOffset int
}

// ParseHeader parses a STAR2A blob's header, validating the magic.
func ParseHeader(data []byte) (Header, error) {
	if !bytes.HasPrefix(data, format.MagicCase02) {
		return Header{}, fmt.Errorf("case02: %w", errs.ErrBadMagic)
	}

	pos := len(format.MagicCase02)

	n, adv, err := varint.Uvarint(data[pos:])
	if err != nil {
		return Header{}, fmt.Errorf("case02: row count: %w", err)
	}
	pos += adv

	if n == 0 {
		return Header{N: 0, BodyOffset: pos}, nil
	}

	fields := make([]int64, Width)
	for i := range fields {
		x, adv, err := varint.ZigZag(data[pos:])
		if err != nil {
			return Header{}, fmt.Errorf("case02: base row field %d: %w", i, err)
		}
		fields[i] = x
		pos += adv
	}

	return Header{N: int(n), Base: tickFromFields(fields), BodyOffset: pos}, nil
}

// Decode parses a complete STAR2A blob into its row sequence.
func Decode(data []byte) ([]Tick, Header, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, Header{}, err
	}

	if h.N == 0 {
		return []Tick{}, h, nil
	}

	ticks := make([]Tick, 1, h.N)
	ticks[0] = h.Base

	pos := h.BodyOffset
	cur := h.Base
	for len(ticks) < h.N {
		blk, next, err := deltablock.DecodeBlock(data, pos, Width)
		if err != nil {
			return nil, Header{}, fmt.Errorf("case02: %w", err)
		}
		pos = next

		for i := 0; i < blk.Run && len(ticks) < h.N; i++ {
			cur = addTickFields(cur, blk.Delta)
			ticks = append(ticks, cur)
		}
	}

	if len(ticks) != h.N {
		return nil, Header{}, fmt.Errorf("case02: %w", errs.ErrTruncatedBody)
	}

	return ticks, h, nil
}
