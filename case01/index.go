package case01

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/internal/deltablock"
)

// IndexMagic and CaseTag identify a Case01 index file (SIDX1/CASE01).
var (
	IndexMagic = []byte("SIDX1")
	CaseTag    = []byte("CASE01\x00")
)

// DefaultAnchorEvery is the default anchor spacing for case01 indices.
const DefaultAnchorEvery = 256

// Anchor binds a row number to a resumable decoder state: the byte offset
// of the next tag byte in the STAR body, and the full bar value at that row.
type Anchor struct {
	Row        uint32
	ByteOffset uint32
	State      Bar
}

// Index is the in-memory form of a SIDX1/CASE01 file.
type Index struct {
	AnchorEvery uint32
	NRows       uint32
	Anchors     []Anchor
}

// BuildIndex walks a STAR1 blob block by block, emitting an anchor at row 0
// and then at every block boundary whose row number is a multiple of
// anchorEvery (an RLE block that spans a multiple gets no anchor inside it),
// plus a trailing anchor at the final row. Anchors are only ever emitted between
// blocks, never mid-run, so every ByteOffset lands on a tag byte.
func BuildIndex(star []byte, anchorEvery uint32) (Index, error) {
	if anchorEvery == 0 {
		anchorEvery = DefaultAnchorEvery
	}

	h, err := ParseHeader(star)
	if err != nil {
		return Index{}, err
	}

	if h.N == 0 {
		return Index{
			AnchorEvery: anchorEvery,
			NRows:       0,
			Anchors:     []Anchor{{Row: 0, ByteOffset: uint32(h.BodyOffset), State: h.Base}},
		}, nil
	}

	anchors := []Anchor{{Row: 0, ByteOffset: uint32(h.BodyOffset), State: h.Base}}

	row := uint32(0)
	pos := h.BodyOffset
	cur := h.Base

	for int(row) < h.N-1 {
		if row != 0 && row%anchorEvery == 0 {
			anchors = append(anchors, Anchor{Row: row, ByteOffset: uint32(pos), State: cur})
		}

		blk, next, err := deltablock.DecodeBlock(star, pos, Width)
		if err != nil {
			return Index{}, fmt.Errorf("case01: index build: %w", err)
		}

		for i := 0; i < blk.Run; i++ {
			cur = addFields(cur, blk.Delta)
			row++
			if int(row) >= h.N {
				break
			}
		}

		pos = next
	}

	if anchors[len(anchors)-1].Row != row {
		anchors = append(anchors, Anchor{Row: row, ByteOffset: uint32(pos), State: cur})
	}

	return Index{AnchorEvery: anchorEvery, NRows: uint32(h.N), Anchors: anchors}, nil
}

// Bytes serializes the index to the SIDX1/CASE01 wire format:
//
//	"SIDX1" | "CASE01\0" | u32(anchor_every) | u32(n_rows) | u32(n_anchors) | anchors[]
//	anchor = u32(row) | u32(byte_offset) | i32(d_days) | i64(o) | i64(h) | i64(l) | i64(c) | i64(v)
func (idx Index) Bytes() []byte {
	buf := make([]byte, 0, len(IndexMagic)+len(CaseTag)+12+len(idx.Anchors)*44)
	buf = append(buf, IndexMagic...)
	buf = append(buf, CaseTag...)
	buf = binary.LittleEndian.AppendUint32(buf, idx.AnchorEvery)
	buf = binary.LittleEndian.AppendUint32(buf, idx.NRows)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(idx.Anchors)))

	for _, a := range idx.Anchors {
		buf = binary.LittleEndian.AppendUint32(buf, a.Row)
		buf = binary.LittleEndian.AppendUint32(buf, a.ByteOffset)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(a.State.Days)))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(a.State.Open))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(a.State.High))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(a.State.Low))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(a.State.Close))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(a.State.Vol))
	}

	return buf
}

// ParseIndex parses a SIDX1/CASE01 index file.
func ParseIndex(data []byte) (Index, error) {
	if !bytes.HasPrefix(data, IndexMagic) {
		return Index{}, fmt.Errorf("case01 index: %w", errs.ErrBadMagic)
	}
	pos := len(IndexMagic)

	if len(data) < pos+len(CaseTag) || !bytes.Equal(data[pos:pos+len(CaseTag)], CaseTag) {
		return Index{}, fmt.Errorf("case01 index: %w", errs.ErrBadMagic)
	}
	pos += len(CaseTag)

	anchorEvery := binary.LittleEndian.Uint32(data[pos:])
	pos += 4
	nRows := binary.LittleEndian.Uint32(data[pos:])
	pos += 4
	nAnchors := binary.LittleEndian.Uint32(data[pos:])
	pos += 4

	anchors := make([]Anchor, 0, nAnchors)
	for i := uint32(0); i < nAnchors; i++ {
		row := binary.LittleEndian.Uint32(data[pos:])
		pos += 4
		off := binary.LittleEndian.Uint32(data[pos:])
		pos += 4
		days := int32(binary.LittleEndian.Uint32(data[pos:]))
		pos += 4
		o := int64(binary.LittleEndian.Uint64(data[pos:]))
		pos += 8
		hgh := int64(binary.LittleEndian.Uint64(data[pos:]))
		pos += 8
		l := int64(binary.LittleEndian.Uint64(data[pos:]))
		pos += 8
		c := int64(binary.LittleEndian.Uint64(data[pos:]))
		pos += 8
		v := int64(binary.LittleEndian.Uint64(data[pos:]))
		pos += 8

		anchors = append(anchors, Anchor{
			Row:        row,
			ByteOffset: off,
			State:      Bar{Days: int64(days), Open: o, High: hgh, Low: l, Close: c, Vol: v},
		})
	}

	return Index{AnchorEvery: anchorEvery, NRows: nRows, Anchors: anchors}, nil
}
