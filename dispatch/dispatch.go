package dispatch

import (
	"fmt"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/format"
)

// Classify sniffs a STAR blob's leading bytes and returns the case it was
// written with, or errs.ErrUnknownMagic if no known case matches.
func Classify(data []byte) (format.Case, error) {
	head := data
	if len(head) > format.MaxMagicLen {
		head = head[:format.MaxMagicLen]
	}

	c := format.SniffMagic(head)
	if c == format.CaseUnknown {
		return format.CaseUnknown, errs.ErrUnknownMagic
	}

	return c, nil
}

// IndexMagicFor returns the companion index file's magic bytes for a case.
func IndexMagicFor(c format.Case) ([]byte, error) {
	switch c {
	case format.Case01:
		return format.IndexMagicCase01, nil
	case format.Case02:
		return format.IndexMagicCase02, nil
	case format.Case03:
		return format.IndexMagicCase03, nil
	case format.Case04:
		return format.IndexMagicCase04, nil
	default:
		return nil, fmt.Errorf("dispatch: %w", errs.ErrUnknownMagic)
	}
}
