package case02

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/internal/deltablock"
)

// IndexMagic identifies a Case02 index file (STARIDX2).
var IndexMagic = []byte("STARIDX2")

// IndexVersion is the only version this implementation writes and accepts.
const IndexVersion = 1

// DefaultAnchorEvery is the default anchor spacing for case02 indices.
const DefaultAnchorEvery = 1024

// Anchor binds a row number to a resumable decoder state.
type Anchor struct {
	Row        uint64
	ByteOffset uint64
	State      Tick
}

// Index is the in-memory form of a STARIDX2 file.
type Index struct {
	AnchorEvery uint32
	NRows       uint64
	Anchors     []Anchor
}

// BuildIndex walks a STAR2A blob block by block, emitting anchors at block
// boundaries exactly as case01.BuildIndex does, over 8-wide ticks instead of
// 6-wide bars.
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
			Anchors:     []Anchor{{Row: 0, ByteOffset: uint64(h.BodyOffset), State: h.Base}},
		}, nil
	}

	anchors := []Anchor{{Row: 0, ByteOffset: uint64(h.BodyOffset), State: h.Base}}

	row := uint64(0)
	pos := h.BodyOffset
	cur := h.Base

	for int(row) < h.N-1 {
		if row != 0 && row%uint64(anchorEvery) == 0 {
			anchors = append(anchors, Anchor{Row: row, ByteOffset: uint64(pos), State: cur})
		}

		blk, next, err := deltablock.DecodeBlock(star, pos, Width)
		if err != nil {
			return Index{}, fmt.Errorf("case02: index build: %w", err)
		}

		for i := 0; i < blk.Run; i++ {
			cur = addTickFields(cur, blk.Delta)
			row++
			if int(row) >= h.N {
				break
			}
		}

		pos = next
	}

	if anchors[len(anchors)-1].Row != row {
		anchors = append(anchors, Anchor{Row: row, ByteOffset: uint64(pos), State: cur})
	}

	return Index{AnchorEvery: anchorEvery, NRows: uint64(h.N), Anchors: anchors}, nil
}

// Bytes serializes the index to the STARIDX2 wire format:
//
//	"STARIDX2" | u8(version=1) | u32(anchor_every) | u64(n_rows) | u32(n_anchors) | anchors[]
//	anchor = u64(row) | u64(byte_offset) | i64 x 8 (snapshot)
func (idx Index) Bytes() []byte {
	buf := make([]byte, 0, len(IndexMagic)+1+4+8+4+len(idx.Anchors)*(16+8*8))
	buf = append(buf, IndexMagic...)
	buf = append(buf, byte(IndexVersion))
	buf = binary.LittleEndian.AppendUint32(buf, idx.AnchorEvery)
	buf = binary.LittleEndian.AppendUint64(buf, idx.NRows)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(idx.Anchors)))

	for _, a := range idx.Anchors {
		buf = binary.LittleEndian.AppendUint64(buf, a.Row)
		buf = binary.LittleEndian.AppendUint64(buf, a.ByteOffset)
		for _, x := range a.State.fields() {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(x))
		}
	}

	return buf
}

// ParseIndex parses a STARIDX2 index file.
func ParseIndex(data []byte) (Index, error) {
	if !bytes.HasPrefix(data, IndexMagic) {
		return Index{}, fmt.Errorf("case02 index: %w", errs.ErrBadMagic)
	}
	pos := len(IndexMagic)

	version := data[pos]
	pos++
	if version != IndexVersion {
		return Index{}, fmt.Errorf("case02 index: unsupported version %d: %w", version, errs.ErrBadMagic)
	}

	anchorEvery := binary.LittleEndian.Uint32(data[pos:])
	pos += 4
	nRows := binary.LittleEndian.Uint64(data[pos:])
	pos += 8
	nAnchors := binary.LittleEndian.Uint32(data[pos:])
	pos += 4

	anchors := make([]Anchor, 0, nAnchors)
	for i := uint32(0); i < nAnchors; i++ {
		row := binary.LittleEndian.Uint64(data[pos:])
		pos += 8
		off := binary.LittleEndian.Uint64(data[pos:])
		pos += 8

		fields := make([]int64, Width)
		for k := range fields {
			fields[k] = int64(binary.LittleEndian.Uint64(data[pos:]))
			pos += 8
		}

		anchors = append(anchors, Anchor{Row: row, ByteOffset: off, State: tickFromFields(fields)})
	}

	return Index{AnchorEvery: anchorEvery, NRows: nRows, Anchors: anchors}, nil
}
