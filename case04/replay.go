package case04

import (
	"fmt"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/internal/logicalindex"
)

// SeekRequest is a case04 replay request: either a target row or a target
// time (minutes, converted to a row via the index's cadence), optionally
// clamped by a row count hint, plus an optional cadence override.
type SeekRequest struct {
	SeekRow         *uint32
	SeekTime        *int64
	RowsHint        *uint32
	CadenceOverride *int64
	Rows            int
}

// LogicalRow is one projected (row, t_min) pair of a replay preview.
type LogicalRow = logicalindex.Row

// Replay verifies idx is bound to star, resolves req's seek key to a target
// row against idx's anchors, and projects up to req.Rows logical
// (row, t_min) pairs starting at the target row.
//
// Like case03's replay, this never decodes transaction payloads: the
// index's anchors are offsetless, so seeking resolves to a logical row and
// timestamp only.
func Replay(star []byte, idx Index, req SeekRequest) ([]LogicalRow, error) {
	if !idx.VerifyBinding(star) {
		return nil, errs.ErrBindingMismatch
	}

	cadence := idx.CadenceMin
	if req.CadenceOverride != nil {
		cadence = *req.CadenceOverride
	}

	resolved, err := logicalindex.Resolve(idx, cadence, logicalindex.SeekRequest{
		SeekRow:  req.SeekRow,
		SeekTime: req.SeekTime,
		RowsHint: req.RowsHint,
	})
	if err != nil {
		return nil, fmt.Errorf("case04: replay: %w", err)
	}

	return logicalindex.Project(resolved, cadence, req.Rows, req.RowsHint), nil
}
