// Package errs collects the sentinel errors shared across STAR's codecs,
// index builders, and replay engines.
//
// Call sites wrap a sentinel with fmt.Errorf("...: %w", errs.ErrX) so
// callers can keep using errors.Is against it regardless of how much
// context got added along the way.
package errs

import "errors"

var (
	// ErrBadMagic indicates the leading bytes of a STAR blob or index file
	// did not match the expected magic for the case being decoded.
	ErrBadMagic = errors.New("star: bad magic")

	// ErrTruncatedVarint indicates a varint's continuation chain ran off the
	// end of the buffer before a terminating byte was found.
	ErrTruncatedVarint = errors.New("star: truncated varint")

	// ErrOverlong indicates a varint decoded to more than 63 bits of payload.
	ErrOverlong = errors.New("star: overlong varint")

	// ErrTruncatedBody indicates the decoder ran out of bytes before
	// producing the row count promised by the header.
	ErrTruncatedBody = errors.New("star: truncated body")

	// ErrBadTag indicates a body block's tag byte was neither 0x00 nor 0x01.
	ErrBadTag = errors.New("star: bad block tag")

	// ErrRoundTripFailed indicates decode(encode(rows)) != rows, a codec bug.
	ErrRoundTripFailed = errors.New("star: round trip failed")

	// ErrBindingMismatch indicates an index's SHA-256 binding does not match
	// the STAR file it is paired with.
	ErrBindingMismatch = errors.New("star: index binding mismatch")

	// ErrIndexMismatch indicates an index's row count does not match the
	// STAR header's row count.
	ErrIndexMismatch = errors.New("star: index row count mismatch")

	// ErrBadRow indicates a row-level value that cannot be used: a case04
	// dictionary code outside its dictionary, or a time seek against a zero
	// cadence. It aborts the operation. The CSV readers skip rows that fail
	// type coercion or carry a sentinel without returning this error.
	ErrBadRow = errors.New("star: bad row")

	// ErrUnknownMagic indicates the dispatcher could not classify a STAR
	// file against any known case.
	ErrUnknownMagic = errors.New("star: unknown magic")

	// ErrNoSeekKey indicates a replay request supplied neither a row nor a
	// time seek key.
	ErrNoSeekKey = errors.New("star: no seek key provided")

	// ErrEmptyIndex indicates an index file carries zero anchors, which
	// should never happen for a non-empty STAR blob.
	ErrEmptyIndex = errors.New("star: index has no anchors")
)
