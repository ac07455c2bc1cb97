package case01

import (
	"bytes"
	"fmt"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/format"
	"github.com/starcodec/star/internal/deltablock"
	"github.com/starcodec/star/varint"
)

// Header carries the fields parsed before a STAR1 body: the row count, the
// price scale, the base row, and the byte offset where the body starts.
type Header struct {
	N          int
	PriceScale int64
	Base       Bar
	BodyOffset int
}

// ParseHeader parses a STAR1 blob's header, validating the magic.
func ParseHeader(data []byte) (Header, error) {
	if !bytes.HasPrefix(data, format.MagicCase01) {
		return Header{}, fmt.Errorf("case01: %w", errs.ErrBadMagic)
	}

	pos := len(format.MagicCase01)

	n, adv, err := varint.Uvarint(data[pos:])
	if err != nil {
		return Header{}, fmt.Errorf("case01: row count: %w", err)
	}
	pos += adv

	if n == 0 {
		return Header{N: 0, BodyOffset: pos}, nil
	}

	priceScale, adv, err := varint.Uvarint(data[pos:])
	if err != nil {
		return Header{}, fmt.Errorf("case01: price_scale: %w", err)
	}
	pos += adv

	fields := make([]int64, Width)
	for i := range fields {
		x, adv, err := varint.ZigZag(data[pos:])
		if err != nil {
			return Header{}, fmt.Errorf("case01: base row field %d: %w", i, err)
		}
		fields[i] = x
		pos += adv
	}

	return Header{
		N:          int(n),
		PriceScale: int64(priceScale),
		Base:       barFromFields(fields),
		BodyOffset: pos,
	}, nil
}

// Decode parses a complete STAR1 blob into its row sequence. The returned
// slice always has exactly N rows.
func Decode(data []byte) ([]Bar, Header, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, Header{}, err
	}

	if h.N == 0 {
		return []Bar{}, h, nil
	}

	bars := make([]Bar, 1, h.N)
	bars[0] = h.Base

	pos := h.BodyOffset
	cur := h.Base
	for len(bars) < h.N {
		blk, next, err := deltablock.DecodeBlock(data, pos, Width)
		if err != nil {
			return nil, Header{}, fmt.Errorf("case01: %w", err)
		}
		pos = next

		for i := 0; i < blk.Run && len(bars) < h.N; i++ {
			cur = addFields(cur, blk.Delta)
			bars = append(bars, cur)
		}
	}

	if len(bars) != h.N {
		return nil, Header{}, fmt.Errorf("case01: %w", errs.ErrTruncatedBody)
	}

	return bars, h, nil
}
