package case01

import (
	"fmt"
	"sort"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/internal/deltablock"
)

// SeekKey selects a replay starting point: either a row number or a
// calendar day count (mutually exclusive; exactly one must be set).
type SeekKey struct {
	Row     *uint32
	Days    *int64
	HasRow  bool
	HasDays bool
}

// ByRow builds a SeekKey that seeks to a row number.
func ByRow(row uint32) SeekKey {
	return SeekKey{Row: &row, HasRow: true}
}

// ByDays builds a SeekKey that seeks to the first row with d_days >= days.
func ByDays(days int64) SeekKey {
	return SeekKey{Days: &days, HasDays: true}
}

// Replay loads a STAR1 blob and its SIDX1/CASE01 index, finds the nearest
// anchor at or before the seek key, resumes block decoding from there, and
// returns up to maxRows rows starting at the seek target.
func Replay(star []byte, idx Index, key SeekKey, maxRows int) ([]Bar, error) {
	if !key.HasRow && !key.HasDays {
		return nil, errs.ErrNoSeekKey
	}

	h, err := ParseHeader(star)
	if err != nil {
		return nil, err
	}
	if idx.NRows != uint32(h.N) {
		return nil, fmt.Errorf("case01: replay: %w", errs.ErrIndexMismatch)
	}
	if len(idx.Anchors) == 0 {
		return nil, errs.ErrEmptyIndex
	}

	anchor := chooseAnchor(idx.Anchors, key)

	wantNow := func(row uint32, b Bar) bool {
		if key.HasRow {
			return row >= *key.Row
		}

		return b.Days >= *key.Days
	}

	row := anchor.Row
	pos := int(anchor.ByteOffset)
	cur := anchor.State

	var out []Bar
	if wantNow(row, cur) {
		out = append(out, cur)
	}

	for int(row) < h.N-1 && len(out) < maxRows {
		blk, next, err := deltablock.DecodeBlock(star, pos, Width)
		if err != nil {
			return nil, fmt.Errorf("case01: replay: %w", err)
		}
		pos = next

		for i := 0; i < blk.Run; i++ {
			cur = addFields(cur, blk.Delta)
			row++

			if wantNow(row, cur) {
				out = append(out, cur)
				if len(out) >= maxRows {
					break
				}
			}

			if int(row) >= h.N-1 {
				break
			}
		}
	}

	return out, nil
}

// chooseAnchor picks the rightmost anchor with row (or day count) <= the
// seek target. Anchors are stored in ascending row order, which is also
// ascending byte-offset order, so a single binary search over row suffices
// even for the time-seek case; day keys are assumed monotone non-decreasing
// with row (a documented precondition, not enforced here).
func chooseAnchor(anchors []Anchor, key SeekKey) Anchor {
	if key.HasRow {
		target := *key.Row
		j := sort.Search(len(anchors), func(i int) bool { return anchors[i].Row > target })
		j--
		if j < 0 {
			j = 0
		}

		return anchors[j]
	}

	target := *key.Days
	j := sort.Search(len(anchors), func(i int) bool { return anchors[i].State.Days > target })
	j--
	if j < 0 {
		j = 0
	}

	return anchors[j]
}
