package logicalindex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/internal/digest"
)

// Version is the only index version this implementation writes and reads.
const Version = 4

// FlagOffsetsPresent marks bit 0 of the flags word. This implementation
// never sets it: every anchor it writes carries a zero offset.
const FlagOffsetsPresent = 1

// Anchor binds a row number to its projected timestamp. Offset is always
// zero for indices this package builds, but is parsed and preserved for
// indices written by other tools.
type Anchor struct {
	Row    uint32
	TMin   int64
	Offset uint64
}

// Index is the in-memory form of an arithmetic anchor index.
type Index struct {
	Magic       []byte
	AnchorEvery uint32
	CadenceMin  int64
	Flags       uint32
	StarSHA256  [32]byte
	Anchors     []Anchor
}

// Build computes the arithmetic anchors for rows rows at the given cadence,
// spaced anchorEvery rows apart, with a trailing anchor at the last row.
func Build(rows int, cadenceMin int64, anchorEvery uint32) []Anchor {
	if anchorEvery == 0 {
		anchorEvery = 1
	}

	var anchors []Anchor
	for r := 0; r < rows; r += int(anchorEvery) {
		anchors = append(anchors, Anchor{Row: uint32(r), TMin: int64(r) * cadenceMin})
	}

	lastRow := rows - 1
	if len(anchors) > 0 && anchors[len(anchors)-1].Row != uint32(lastRow) {
		anchors = append(anchors, Anchor{Row: uint32(lastRow), TMin: int64(lastRow) * cadenceMin})
	}
	if len(anchors) == 0 && rows > 0 {
		anchors = append(anchors, Anchor{Row: 0, TMin: 0})
	}

	return anchors
}

// New builds a complete Index bound to star via its SHA-256 digest.
func New(magic []byte, star []byte, rows int, cadenceMin int64, anchorEvery uint32) Index {
	return Index{
		Magic:       magic,
		AnchorEvery: anchorEvery,
		CadenceMin:  cadenceMin,
		StarSHA256:  digest.SHA256(star),
		Anchors:     Build(rows, cadenceMin, anchorEvery),
	}
}

// Bytes serializes the index:
//
//	magic | u32(version=4) | u32(anchor_every) | u32(n_anchors) | u32(flags) |
//	i64(cadence_min) | sha256(32) | anchors[]
//	anchor = u32(row) | i64(t_min) | u64(offset)
func (idx Index) Bytes() []byte {
	buf := make([]byte, 0, len(idx.Magic)+20+32+len(idx.Anchors)*20)
	buf = append(buf, idx.Magic...)
	buf = binary.LittleEndian.AppendUint32(buf, Version)
	buf = binary.LittleEndian.AppendUint32(buf, idx.AnchorEvery)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(idx.Anchors)))
	buf = binary.LittleEndian.AppendUint32(buf, idx.Flags)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(idx.CadenceMin))
	buf = append(buf, idx.StarSHA256[:]...)

	for _, a := range idx.Anchors {
		buf = binary.LittleEndian.AppendUint32(buf, a.Row)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(a.TMin))
		buf = binary.LittleEndian.AppendUint64(buf, a.Offset)
	}

	return buf
}

// Parse parses an index file, accepting either the preferred magic (with a
// trailing NUL byte) or the bare, unterminated form tolerated for indices
// written by older encoders.
func Parse(data []byte, magicA, magicB []byte) (Index, error) {
	var magic []byte
	var pos int

	switch {
	case bytes.HasPrefix(data, magicA):
		magic, pos = magicA, len(magicA)
	case bytes.HasPrefix(data, magicB):
		magic, pos = magicB, len(magicB)
	default:
		return Index{}, errs.ErrBadMagic
	}

	if len(data) < pos+24+32 {
		return Index{}, errs.ErrTruncatedBody
	}

	version := binary.LittleEndian.Uint32(data[pos:])
	pos += 4
	if version != Version {
		return Index{}, fmt.Errorf("logicalindex: unsupported version %d: %w", version, errs.ErrBadMagic)
	}

	anchorEvery := binary.LittleEndian.Uint32(data[pos:])
	pos += 4
	n := binary.LittleEndian.Uint32(data[pos:])
	pos += 4
	flags := binary.LittleEndian.Uint32(data[pos:])
	pos += 4
	cadence := int64(binary.LittleEndian.Uint64(data[pos:]))
	pos += 8

	var sha [32]byte
	copy(sha[:], data[pos:pos+32])
	pos += 32

	anchors := make([]Anchor, 0, n)
	for i := uint32(0); i < n; i++ {
		if len(data) < pos+20 {
			return Index{}, errs.ErrTruncatedBody
		}
		row := binary.LittleEndian.Uint32(data[pos:])
		pos += 4
		tMin := int64(binary.LittleEndian.Uint64(data[pos:]))
		pos += 8
		off := binary.LittleEndian.Uint64(data[pos:])
		pos += 8
		anchors = append(anchors, Anchor{Row: row, TMin: tMin, Offset: off})
	}

	return Index{
		Magic:       magic,
		AnchorEvery: anchorEvery,
		CadenceMin:  cadence,
		Flags:       flags,
		StarSHA256:  sha,
		Anchors:     anchors,
	}, nil
}

// VerifyBinding reports whether star's SHA-256 digest matches the one bound
// into idx.
func (idx Index) VerifyBinding(star []byte) bool {
	return digest.SHA256(star) == idx.StarSHA256
}

// SeekRequest describes a logical-projection seek: either a target row or a
// target time (converted to a row via cadence), optionally clamped by a row
// count hint.
type SeekRequest struct {
	SeekRow  *uint32
	SeekTime *int64
	RowsHint *uint32
}

// ResolvedAnchor is the nearest anchor at or before the resolved target row.
type ResolvedAnchor struct {
	TargetRow int64
	Anchor    Anchor
}

// Resolve computes the target row for req and binary-searches the anchors
// (sorted by row) for the nearest one at or before it; a target before the
// first anchor resolves to the first anchor.
func Resolve(idx Index, cadenceMin int64, req SeekRequest) (ResolvedAnchor, error) {
	if len(idx.Anchors) == 0 {
		return ResolvedAnchor{}, errs.ErrEmptyIndex
	}

	var target int64
	if req.SeekTime != nil {
		if cadenceMin == 0 {
			return ResolvedAnchor{}, fmt.Errorf("logicalindex: resolve: %w", errs.ErrBadRow)
		}
		target = *req.SeekTime / cadenceMin
	} else if req.SeekRow != nil {
		target = int64(*req.SeekRow)
	} else {
		return ResolvedAnchor{}, errs.ErrNoSeekKey
	}

	if req.RowsHint != nil {
		maxRow := int64(*req.RowsHint) - 1
		if maxRow < 0 {
			maxRow = 0
		}
		if target < 0 {
			target = 0
		}
		if target > maxRow {
			target = maxRow
		}
	}

	j := sort.Search(len(idx.Anchors), func(i int) bool { return int64(idx.Anchors[i].Row) > target }) - 1
	if j < 0 {
		j = 0
	}

	return ResolvedAnchor{TargetRow: target, Anchor: idx.Anchors[j]}, nil
}

// Row is one projected (row, t_min) pair of a logical replay preview.
type Row struct {
	Row  int64
	TMin int64
}

// Project expands the resolved seek into up to rows entries, each the
// arithmetic projection row*cadenceMin, stopping early at rowsHint if set.
func Project(resolved ResolvedAnchor, cadenceMin int64, rows int, rowsHint *uint32) []Row {
	out := make([]Row, 0, rows)
	for i := 0; i < rows; i++ {
		r := resolved.TargetRow + int64(i)
		if rowsHint != nil && r >= int64(*rowsHint) {
			break
		}
		out = append(out, Row{Row: r, TMin: r * cadenceMin})
	}
	return out
}
