package case02

import (
	"fmt"
	"sort"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/internal/deltablock"
)

// Replay loads a STAR2A blob and its STARIDX2 index, finds the nearest
// anchor at or before seekRow, resumes block decoding from there, and
// returns up to maxRows rows starting at seekRow.
//
// Case-02 only seeks by row number; callers that expose a generic
// --seek_time flag should treat it as an alias for the row number here.
func Replay(star []byte, idx Index, seekRow uint64, maxRows int) ([]Tick, error) {
	h, err := ParseHeader(star)
	if err != nil {
		return nil, err
	}
	if idx.NRows != uint64(h.N) {
		return nil, fmt.Errorf("case02: replay: %w", errs.ErrIndexMismatch)
	}
	if len(idx.Anchors) == 0 {
		return nil, errs.ErrEmptyIndex
	}

	j := sort.Search(len(idx.Anchors), func(i int) bool { return idx.Anchors[i].Row > seekRow }) - 1
	if j < 0 {
		j = 0
	}
	anchor := idx.Anchors[j]

	row := anchor.Row
	pos := int(anchor.ByteOffset)
	cur := anchor.State

	var out []Tick
	if row >= seekRow {
		out = append(out, cur)
	}

	for int(row) < h.N-1 && len(out) < maxRows {
		blk, next, err := deltablock.DecodeBlock(star, pos, Width)
		if err != nil {
			return nil, fmt.Errorf("case02: replay: %w", err)
		}
		pos = next

		for i := 0; i < blk.Run; i++ {
			cur = addTickFields(cur, blk.Delta)
			row++

			if row >= seekRow {
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
