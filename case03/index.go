package case03

import (
	"github.com/starcodec/star/format"
	"github.com/starcodec/star/internal/logicalindex"
)

// DefaultAnchorEvery is the default anchor spacing for case03 indices.
const DefaultAnchorEvery = 256

// Index is a case03 arithmetic anchor index: row -> t_min, offsetless.
type Index = logicalindex.Index

// BuildIndex computes an arithmetic anchor index over rows rows at the
// given per-row cadence (in minutes), bound to star via SHA-256. rows is
// supplied by the caller rather than recovered from star, since a STAR03
// blob carries no row count of its own.
func BuildIndex(star []byte, rows int, cadenceMin int64, anchorEvery uint32) Index {
	if anchorEvery == 0 {
		anchorEvery = DefaultAnchorEvery
	}
	return logicalindex.New(format.IndexMagicCase03, star, rows, cadenceMin, anchorEvery)
}

// ParseIndex parses a STARIDX03 index file, tolerating both the
// NUL-terminated magic and the bare form written by older encoders.
func ParseIndex(data []byte) (Index, error) {
	return logicalindex.Parse(data, format.IndexMagicCase03, format.IndexMagicCase03[:len(format.IndexMagicCase03)-1])
}
