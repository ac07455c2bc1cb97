package case04

import (
	"encoding/binary"
	"fmt"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/format"
	"github.com/starcodec/star/internal/logicalindex"
)

// DefaultAnchorEvery is the default anchor spacing for case04 indices.
const DefaultAnchorEvery = 256

// Index is a case04 arithmetic anchor index: row -> t_min, offsetless.
type Index = logicalindex.Index

// RowCount reads a STAR4 blob's row count directly from its fixed header,
// without decoding the rest of the blob.
func RowCount(star []byte) (int, error) {
	if len(star) < len(format.MagicCase04)+4 {
		return 0, fmt.Errorf("case04: row count: %w", errs.ErrTruncatedBody)
	}
	for i, b := range format.MagicCase04 {
		if star[i] != b {
			return 0, fmt.Errorf("case04: row count: %w", errs.ErrBadMagic)
		}
	}
	return int(binary.LittleEndian.Uint32(star[len(format.MagicCase04):])), nil
}

// BuildIndex computes an arithmetic anchor index over star's rows at the
// given per-row cadence (in minutes), bound to star via SHA-256.
func BuildIndex(star []byte, cadenceMin int64, anchorEvery uint32) (Index, error) {
	if anchorEvery == 0 {
		anchorEvery = DefaultAnchorEvery
	}

	rows, err := RowCount(star)
	if err != nil {
		return Index{}, err
	}

	return logicalindex.New(format.IndexMagicCase04, star, rows, cadenceMin, anchorEvery), nil
}

// ParseIndex parses a STARIDX04 index file, tolerating both the
// NUL-terminated magic and the bare form written by older encoders.
func ParseIndex(data []byte) (Index, error) {
	return logicalindex.Parse(data, format.IndexMagicCase04, format.IndexMagicCase04[:len(format.IndexMagicCase04)-1])
}
